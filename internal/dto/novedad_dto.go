package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearNovedadRequest struct {
	FechaDelHecho   string  `json:"fechaDelHecho"   validate:"required"`
	HoraDelHecho    string  `json:"horaDelHecho"    validate:"required"`
	Calle           string  `json:"calle"           validate:"required"`
	Altura          *string `json:"altura"`
	EntreCalles     *string `json:"entreCalles"`
	Barrio          string  `json:"barrio"          validate:"required"`
	Coordenadas     string  `json:"coordenadas"     validate:"required"`
	EncuadreLegal   string  `json:"encuadreLegal"   validate:"required"`
	Victima         *string `json:"victima"`
	EdadVictima     *string `json:"edadVictima"`
	GeneroVictima   *string `json:"generoVictima"`
	Observaciones   *string `json:"observaciones"`
	Sumario         *string `json:"sumario"`
	Expediente      *string `json:"expediente"`
	Dependencia     string  `json:"dependencia"     validate:"required"`
	DetallesNovedad *string `json:"detallesNovedad"`
	Lugar           *string `json:"lugar"`
	BienAfectado    *string `json:"bienAfectado"`
	NombreImputado  *string `json:"nombreImputado"`
	Esclarecidos    *string `json:"esclarecidos"`
	FechaCreacion   *string `json:"fechaCreacion"`
	HoraCarga       *string `json:"horaCarga"`
}

// ActualizarNovedadRequest carries only the fields to overwrite; nil fields
// are left untouched. Required columns may be replaced but not blanked.
type ActualizarNovedadRequest struct {
	FechaDelHecho   *string `json:"fechaDelHecho"   validate:"omitempty,min=1"`
	HoraDelHecho    *string `json:"horaDelHecho"    validate:"omitempty,min=1"`
	Calle           *string `json:"calle"           validate:"omitempty,min=1"`
	Altura          *string `json:"altura"`
	EntreCalles     *string `json:"entreCalles"`
	Barrio          *string `json:"barrio"          validate:"omitempty,min=1"`
	Coordenadas     *string `json:"coordenadas"     validate:"omitempty,min=1"`
	EncuadreLegal   *string `json:"encuadreLegal"   validate:"omitempty,min=1"`
	Victima         *string `json:"victima"`
	EdadVictima     *string `json:"edadVictima"`
	GeneroVictima   *string `json:"generoVictima"`
	Observaciones   *string `json:"observaciones"`
	Sumario         *string `json:"sumario"`
	Expediente      *string `json:"expediente"`
	Dependencia     *string `json:"dependencia"     validate:"omitempty,min=1"`
	DetallesNovedad *string `json:"detallesNovedad"`
	Lugar           *string `json:"lugar"`
	BienAfectado    *string `json:"bienAfectado"`
	NombreImputado  *string `json:"nombreImputado"`
	Esclarecidos    *string `json:"esclarecidos"`
	FechaCreacion   *string `json:"fechaCreacion"`
	HoraCarga       *string `json:"horaCarga"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type NovedadResponse struct {
	ID              uuid.UUID `json:"id"`
	FechaDelHecho   string    `json:"fechaDelHecho"`
	HoraDelHecho    string    `json:"horaDelHecho"`
	Calle           string    `json:"calle"`
	Altura          *string   `json:"altura"`
	EntreCalles     *string   `json:"entreCalles"`
	Barrio          string    `json:"barrio"`
	Coordenadas     string    `json:"coordenadas"`
	EncuadreLegal   string    `json:"encuadreLegal"`
	Victima         *string   `json:"victima"`
	EdadVictima     *string   `json:"edadVictima"`
	GeneroVictima   *string   `json:"generoVictima"`
	Observaciones   *string   `json:"observaciones"`
	Sumario         *string   `json:"sumario"`
	Expediente      *string   `json:"expediente"`
	Dependencia     string    `json:"dependencia"`
	DetallesNovedad *string   `json:"detallesNovedad"`
	Lugar           *string   `json:"lugar"`
	BienAfectado    *string   `json:"bienAfectado"`
	NombreImputado  *string   `json:"nombreImputado"`
	Esclarecidos    *string   `json:"esclarecidos"`
	FechaCreacion   *string   `json:"fechaCreacion"`
	HoraCarga       *string   `json:"horaCarga"`
}
