package middleware

import (
	"errors"
	"net/http"
	"strings"

	"distrital4/internal/access"
	"distrital4/internal/apierror"
	"distrital4/internal/auth"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding the verified *auth.Claims.
const ClaimsKey = "claims"

// JWTAuth requires a valid Bearer session token. A missing token and a bad one
// are both 401 but carry different messages.
func JWTAuth(issuer *auth.SessionIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := issuer.Verify(bearerToken(c.GetHeader("Authorization")))
		switch {
		case errors.Is(err, auth.ErrUnauthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireRole lets through only sessions whose role is one of roles. It must
// run after JWTAuth.
func RequireRole(roles ...access.Role) gin.HandlerFunc {
	allowed := make(map[access.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Acceso denegado: rol insuficiente"))
			return
		}
		if _, ok := allowed[access.Role(claims.Role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Acceso denegado: rol insuficiente"))
			return
		}
		c.Next()
	}
}

// GetClaims returns the verified claims, or nil outside JWTAuth.
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
