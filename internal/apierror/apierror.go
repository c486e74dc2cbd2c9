// Package apierror defines the JSON bodies of error replies. Clients only ever
// see a message, plus the failing fields on validation errors.
package apierror

// ValidationMessage heads every 422 body.
const ValidationMessage = "Error de validacion"

// APIError is the body of 4xx/5xx replies.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError { return &APIError{Message: msg} }

// ValidationError is the 422 body. Fields maps JSON field names to the rule
// that failed ("required", "min", ...).
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: ValidationMessage, Fields: fields}
}
