package handler

import (
	"net/http"
	"strconv"

	"distrital4/internal/apierror"
	"distrital4/internal/dto"
	"distrital4/internal/service"

	"github.com/gin-gonic/gin"
)

const missingCredentials = "Se requieren nombre de usuario y contraseña"

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Inicio de sesion
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindOrBadRequest(c, &req, missingCredentials) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Usuario no encontrado")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Registrar godoc
// @Summary Registrar usuario (admin)
// @Tags usuarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Usuario"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} apierror.APIError
// @Router /register [post]
func (h *UsuariosHandler) Registrar(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindOrBadRequest(c, &req, missingCredentials) {
		return
	}
	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Usuario no encontrado")
		return
	}
	c.JSON(http.StatusCreated, dto.RegisterResponse{Message: "Usuario registrado exitosamente", User: *user})
}

// Listar godoc
// @Summary Listar usuarios (admin)
// @Tags usuarios
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.UsuarioResponse
// @Router /users [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Usuario no encontrado")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Eliminar usuario (admin)
// @Tags usuarios
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID de usuario"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /users/{id} [delete]
func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err, "Usuario no encontrado")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado exitosamente"})
}
