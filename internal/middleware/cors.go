package middleware

import (
	"net/http"
	"slices"

	"distrital4/internal/apierror"

	"github.com/gin-gonic/gin"
)

// CORS allows the origins listed in ALLOWED_ORIGINS ("*" allows any).
// Requests without an Origin header (curl, server-to-server) pass through.
func CORS(origins []string) gin.HandlerFunc {
	wildcard := slices.Contains(origins, "*")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if !wildcard && !slices.Contains(origins, origin) {
				c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Origen no permitido por CORS"))
				return
			}
			if wildcard {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
