package handler

import (
	"net/http"

	"distrital4/internal/apierror"
	"distrital4/internal/dto"
	"distrital4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const novedadNoEncontrada = "Novedad no encontrada"

type NovedadesHandler struct{ svc service.NovedadService }

func NewNovedadesHandler(svc service.NovedadService) *NovedadesHandler {
	return &NovedadesHandler{svc: svc}
}

// Listar godoc
// @Summary Listar novedades visibles para el rol del usuario
// @Tags novedades
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.NovedadResponse
// @Router /novedades [get]
func (h *NovedadesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), callerFrom(c))
	if err != nil {
		respondError(c, err, novedadNoEncontrada)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /novedades/:id
func (h *NovedadesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		respondError(c, err, novedadNoEncontrada)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Crear novedad
// @Tags novedades
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CrearNovedadRequest true "Novedad"
// @Success 201 {object} dto.NovedadResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /novedades [post]
func (h *NovedadesHandler) Crear(c *gin.Context) {
	var req dto.CrearNovedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		respondError(c, err, novedadNoEncontrada)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary Actualizar novedad
// @Tags novedades
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID de novedad"
// @Param body body dto.ActualizarNovedadRequest true "Campos a modificar"
// @Success 200 {object} dto.NovedadResponse
// @Failure 404 {object} apierror.APIError
// @Router /novedades/{id} [put]
func (h *NovedadesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarNovedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), callerFrom(c), id, req)
	if err != nil {
		respondError(c, err, novedadNoEncontrada)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Eliminar novedad
// @Tags novedades
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID de novedad"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /novedades/{id} [delete]
func (h *NovedadesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), callerFrom(c), id); err != nil {
		respondError(c, err, novedadNoEncontrada)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Novedad eliminada exitosamente"})
}

// parseID reads :id as a UUID. A malformed id cannot name an existing
// novedad, so it is answered like a missing one.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(novedadNoEncontrada))
		return uuid.Nil, false
	}
	return id, true
}
