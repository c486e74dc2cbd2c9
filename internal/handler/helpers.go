package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"distrital4/internal/access"
	"distrital4/internal/apierror"
	"distrital4/internal/middleware"
	"distrital4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report JSON field names (fechaDelHecho) instead of Go names (FechaDelHecho).
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			_ = c.Error(err)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindOrBadRequest is bindAndValidate for endpoints whose contract answers any
// invalid body with 400 and a single message.
func bindOrBadRequest(c *gin.Context, req interface{}, msg string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(msg))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(msg))
		return false
	}
	return true
}

// respondError maps service outcomes to HTTP replies. notFoundMsg is used for
// service.ErrNotFound. Unexpected errors are attached to the context so the
// ErrorHandler middleware logs them and answers 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ve.Fields))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(notFoundMsg))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.New("Acceso denegado: dependencia fuera de su alcance"))
	case errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, apierror.New("El nombre de usuario ya existe"))
	case errors.Is(err, service.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, apierror.New("La contraseña no puede superar los 72 bytes"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
	default:
		_ = c.Error(err)
	}
}

// callerFrom builds the service identity from the verified session claims.
func callerFrom(c *gin.Context) service.Caller {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return service.Caller{}
	}
	return service.Caller{UserID: claims.ID, Username: claims.Username, Role: access.Role(claims.Role)}
}
