package service

import (
	"errors"
	"sort"
	"strings"
)

// Expected outcomes that handlers translate into 4xx responses. Anything else
// returned by a service is a fault.
var (
	ErrInvalidCredentials = errors.New("credenciales invalidas")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya existe")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrPasswordTooLong    = errors.New("la contraseña supera 72 bytes")
)

// ValidationError lists the fields the store refused, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "error de validacion: " + strings.Join(names, ", ")
}
