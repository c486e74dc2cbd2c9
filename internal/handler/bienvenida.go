package handler

import (
	"fmt"
	"net/http"

	"distrital4/internal/dto"
	"distrital4/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Root answers the plain-text liveness probe at GET /.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Servidor backend funcionando!")
}

// Bienvenida returns a handler greeting the caller to the named section of
// the frontend (Parte de Novedades, Dashboard, ...).
func Bienvenida(seccion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := ""
		if claims := middleware.GetClaims(c); claims != nil {
			username = claims.Username
		}
		c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Bienvenido a %s, %s!", seccion, username)})
	}
}
