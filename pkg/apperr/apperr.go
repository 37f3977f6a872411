package apperr

import "net/http"

// Code is a machine-readable error code exposed in the response envelope.
type Code string

const (
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeInternal     Code = "INTERNAL"
)

// FieldError describes a single violated field in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a domain error tagged with a Code. Handlers push these into the
// Gin error list and a single translator middleware maps them to HTTP
// status and response body; nothing else inspects error identity.
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	Err     error // wrapped cause, never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error code to an HTTP status.
func (e *Error) Status() int {
	switch e.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400 error carrying per-field violations.
func Validation(message string, fields []FieldError) *Error {
	return &Error{Code: CodeBadRequest, Message: message, Fields: fields}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged by the
// translator but never leaks into a production response.
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "internal server error", Err: err}
}
