package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken is returned by authenticated calls made before Login.
	ErrNoToken = errors.New("not logged in")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	StatusCode int

	// Message is the server's "message" (or "error") field, or the raw body
	// when the body is not JSON.
	Message string

	// Issues lists field validation failures, if any.
	Issues []models.ValidationIssue

	kind error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

// Unwrap returns the sentinel matching the status code, or nil for codes
// without one.
func (e *ResponseError) Unwrap() error {
	return e.kind
}

// NewResponseError builds the error for a response with the given status.
// The sentinel it unwraps to is picked from the status code.
func NewResponseError(statusCode int, message string, issues []models.ValidationIssue) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Message:    message,
		Issues:     issues,
		kind:       statusErrors[statusCode],
	}
}
