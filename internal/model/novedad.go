package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Novedad is an incident report. Dependencia is the precinct or sub-precinct
// that owns the record and is the key for role-scoped visibility.
type Novedad struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	FechaDelHecho   string    `gorm:"column:fechaDelHecho;not null"`
	HoraDelHecho    string    `gorm:"column:horaDelHecho;not null"`
	Calle           string    `gorm:"column:calle;not null"`
	Altura          *string   `gorm:"column:altura"`
	EntreCalles     *string   `gorm:"column:entreCalles"`
	Barrio          string    `gorm:"column:barrio;not null"`
	Coordenadas     string    `gorm:"column:coordenadas;not null"`
	EncuadreLegal   string    `gorm:"column:encuadreLegal;not null"`
	Victima         *string   `gorm:"column:victima"`
	EdadVictima     *string   `gorm:"column:edadVictima"`
	GeneroVictima   *string   `gorm:"column:generoVictima"`
	Observaciones   *string   `gorm:"column:observaciones;type:text"`
	Sumario         *string   `gorm:"column:sumario"`
	Expediente      *string   `gorm:"column:expediente"`
	Dependencia     string    `gorm:"column:dependencia;not null;index"`
	DetallesNovedad *string   `gorm:"column:detallesNovedad;type:text"`
	Lugar           *string   `gorm:"column:lugar"`
	BienAfectado    *string   `gorm:"column:bienAfectado"`
	NombreImputado  *string   `gorm:"column:nombreImputado"`
	Esclarecidos    *string   `gorm:"column:esclarecidos"`
	FechaCreacion   *string   `gorm:"column:fechaCreacion"`
	HoraCarga       *string   `gorm:"column:horaCarga"`
}

// TableName keeps the existing table name.
func (Novedad) TableName() string { return "Novedads" }

// BeforeCreate assigns a random UUID; the id never changes afterwards.
func (n *Novedad) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
