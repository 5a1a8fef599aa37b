package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// Tipos de error del dominio. Los adapters y services devuelven estos sentinels
// (directo o envueltos en *Error) y los handlers los traducen a HTTP.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidEntity          = errors.New("invalid entity")
	ErrOutOfWindow            = errors.New("out of window")
	ErrDuplicateRequest       = errors.New("duplicate request")
	ErrMissingContactInfo     = errors.New("missing contact info")
	ErrConstraintViolation    = errors.New("constraint violation")
	ErrInUse                  = errors.New("in use")
	ErrSynchronizationFailure = errors.New("synchronization failure")
)

// Error agrega detalle a un sentinel.
// Field vacío = error de formulario (no atado a un input).
type Error struct {
	Kind    error
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	}
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap expone kind y causa para que errors.Is funcione con ambos.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// Field construye un error atado a un campo.
func Field(kind error, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// Form construye un error de formulario (sin campo).
func Form(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap asocia una causa técnica a un kind.
func Wrap(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Status mapea un error a código HTTP.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrSynchronizationFailure):
		return http.StatusInternalServerError
	case errors.Is(err, ErrDuplicateRequest),
		errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrInUse):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidEntity),
		errors.Is(err, ErrOutOfWindow),
		errors.Is(err, ErrMissingContactInfo):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Code devuelve el identificador estable que viaja en el body de error.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrSynchronizationFailure):
		return "synchronization_failure"
	case errors.Is(err, ErrDuplicateRequest):
		return "duplicate_request"
	case errors.Is(err, ErrConstraintViolation):
		return "constraint_violation"
	case errors.Is(err, ErrInUse):
		return "in_use"
	case errors.Is(err, ErrOutOfWindow):
		return "out_of_window"
	case errors.Is(err, ErrMissingContactInfo):
		return "missing_contact_info"
	case errors.Is(err, ErrInvalidEntity):
		return "invalid_entity"
	default:
		return "internal"
	}
}

// Detail es el objeto "error" de las respuestas JSON.
type Detail struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Body es el envoltorio de respuesta de error.
type Body struct {
	Error Detail `json:"error"`
}

// ToBody arma el body sin filtrar detalles de errores internos.
func ToBody(err error) Body {
	d := Detail{Code: Code(err)}

	if Status(err) == http.StatusInternalServerError {
		d.Message = "internal error"
		if errors.Is(err, ErrSynchronizationFailure) {
			d.Message = "could not update the animal status"
		}
		return Body{Error: d}
	}

	var ae *Error
	if errors.As(err, &ae) {
		d.Field = ae.Field
		d.Message = ae.Message
	}
	if d.Message == "" {
		d.Message = rootKind(err).Error()
	}
	return Body{Error: d}
}

func rootKind(err error) error {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != nil {
		return ae.Kind
	}
	return err
}
