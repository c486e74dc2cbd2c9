package service

//go:generate mockgen -source=novedad_service.go -destination=mocks/mock_novedad_service.go -package=mocks

import (
	"context"
	"errors"

	"distrital4/internal/access"
	"distrital4/internal/dto"
	"distrital4/internal/model"
	"distrital4/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Caller is the authenticated identity a request runs as.
type Caller struct {
	UserID   uint
	Username string
	Role     access.Role
}

// NovedadService runs novedad operations inside the caller's role scope.
// Records outside the scope are reported as not found so their existence
// does not leak.
type NovedadService interface {
	Listar(ctx context.Context, caller Caller) ([]dto.NovedadResponse, error)
	ObtenerPorID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.NovedadResponse, error)
	Crear(ctx context.Context, caller Caller, req dto.CrearNovedadRequest) (*dto.NovedadResponse, error)
	Actualizar(ctx context.Context, caller Caller, id uuid.UUID, req dto.ActualizarNovedadRequest) (*dto.NovedadResponse, error)
	Eliminar(ctx context.Context, caller Caller, id uuid.UUID) error
}

type novedadService struct {
	repo     repository.NovedadRepository
	resolver access.Resolver
}

func NewNovedadService(repo repository.NovedadRepository, resolver access.Resolver) NovedadService {
	return &novedadService{repo: repo, resolver: resolver}
}

func (s *novedadService) Listar(ctx context.Context, caller Caller) ([]dto.NovedadResponse, error) {
	scope := s.resolver.Resolve(caller.Role)
	list, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	result := make([]dto.NovedadResponse, 0, len(list))
	for _, n := range list {
		result = append(result, mapNovedad(n))
	}
	return result, nil
}

func (s *novedadService) ObtenerPorID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.NovedadResponse, error) {
	n, err := s.findInScope(ctx, s.resolver.Resolve(caller.Role), id)
	if err != nil {
		return nil, err
	}
	resp := mapNovedad(*n)
	return &resp, nil
}

func (s *novedadService) Crear(ctx context.Context, caller Caller, req dto.CrearNovedadRequest) (*dto.NovedadResponse, error) {
	scope := s.resolver.Resolve(caller.Role)
	if !scope.Allows(req.Dependencia) {
		return nil, ErrForbidden
	}

	n := &model.Novedad{
		FechaDelHecho:   req.FechaDelHecho,
		HoraDelHecho:    req.HoraDelHecho,
		Calle:           req.Calle,
		Altura:          req.Altura,
		EntreCalles:     req.EntreCalles,
		Barrio:          req.Barrio,
		Coordenadas:     req.Coordenadas,
		EncuadreLegal:   req.EncuadreLegal,
		Victima:         req.Victima,
		EdadVictima:     req.EdadVictima,
		GeneroVictima:   req.GeneroVictima,
		Observaciones:   req.Observaciones,
		Sumario:         req.Sumario,
		Expediente:      req.Expediente,
		Dependencia:     req.Dependencia,
		DetallesNovedad: req.DetallesNovedad,
		Lugar:           req.Lugar,
		BienAfectado:    req.BienAfectado,
		NombreImputado:  req.NombreImputado,
		Esclarecidos:    req.Esclarecidos,
		FechaCreacion:   req.FechaCreacion,
		HoraCarga:       req.HoraCarga,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, storeError(err)
	}
	log.Info().
		Str("novedad_id", n.ID.String()).
		Str("dependencia", n.Dependencia).
		Str("username", caller.Username).
		Msg("novedad creada")

	resp := mapNovedad(*n)
	return &resp, nil
}

func (s *novedadService) Actualizar(ctx context.Context, caller Caller, id uuid.UUID, req dto.ActualizarNovedadRequest) (*dto.NovedadResponse, error) {
	scope := s.resolver.Resolve(caller.Role)
	if _, err := s.findInScope(ctx, scope, id); err != nil {
		return nil, err
	}
	if req.Dependencia != nil && !scope.Allows(*req.Dependencia) {
		return nil, ErrForbidden
	}

	n, err := s.repo.Update(ctx, id, updateFields(req))
	if err != nil {
		return nil, storeError(err)
	}
	log.Info().Str("novedad_id", id.String()).Str("username", caller.Username).Msg("novedad actualizada")

	resp := mapNovedad(*n)
	return &resp, nil
}

func (s *novedadService) Eliminar(ctx context.Context, caller Caller, id uuid.UUID) error {
	if _, err := s.findInScope(ctx, s.resolver.Resolve(caller.Role), id); err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	log.Info().Str("novedad_id", id.String()).Str("username", caller.Username).Msg("novedad eliminada")
	return nil
}

func (s *novedadService) findInScope(ctx context.Context, scope access.Scope, id uuid.UUID) (*model.Novedad, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !scope.Allows(n.Dependencia) {
		return nil, ErrNotFound
	}
	return n, nil
}

// storeError converts repository failures into service outcomes.
func storeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var nn *repository.NotNullError
	if errors.As(err, &nn) {
		return &ValidationError{Fields: map[string]string{nn.Column: "required"}}
	}
	return err
}

// updateFields collects the supplied fields keyed by column name.
func updateFields(req dto.ActualizarNovedadRequest) map[string]any {
	fields := make(map[string]any)
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	set("fechaDelHecho", req.FechaDelHecho)
	set("horaDelHecho", req.HoraDelHecho)
	set("calle", req.Calle)
	set("altura", req.Altura)
	set("entreCalles", req.EntreCalles)
	set("barrio", req.Barrio)
	set("coordenadas", req.Coordenadas)
	set("encuadreLegal", req.EncuadreLegal)
	set("victima", req.Victima)
	set("edadVictima", req.EdadVictima)
	set("generoVictima", req.GeneroVictima)
	set("observaciones", req.Observaciones)
	set("sumario", req.Sumario)
	set("expediente", req.Expediente)
	set("dependencia", req.Dependencia)
	set("detallesNovedad", req.DetallesNovedad)
	set("lugar", req.Lugar)
	set("bienAfectado", req.BienAfectado)
	set("nombreImputado", req.NombreImputado)
	set("esclarecidos", req.Esclarecidos)
	set("fechaCreacion", req.FechaCreacion)
	set("horaCarga", req.HoraCarga)
	return fields
}

func mapNovedad(n model.Novedad) dto.NovedadResponse {
	return dto.NovedadResponse{
		ID:              n.ID,
		FechaDelHecho:   n.FechaDelHecho,
		HoraDelHecho:    n.HoraDelHecho,
		Calle:           n.Calle,
		Altura:          n.Altura,
		EntreCalles:     n.EntreCalles,
		Barrio:          n.Barrio,
		Coordenadas:     n.Coordenadas,
		EncuadreLegal:   n.EncuadreLegal,
		Victima:         n.Victima,
		EdadVictima:     n.EdadVictima,
		GeneroVictima:   n.GeneroVictima,
		Observaciones:   n.Observaciones,
		Sumario:         n.Sumario,
		Expediente:      n.Expediente,
		Dependencia:     n.Dependencia,
		DetallesNovedad: n.DetallesNovedad,
		Lugar:           n.Lugar,
		BienAfectado:    n.BienAfectado,
		NombreImputado:  n.NombreImputado,
		Esclarecidos:    n.Esclarecidos,
		FechaCreacion:   n.FechaCreacion,
		HoraCarga:       n.HoraCarga,
	}
}
