package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors. Callers test for them with errors.Is; the GraphQL error
// presenter maps each one to an extensions.code.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream unavailable")
)

// FieldError names the argument that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists rejected arguments. It matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UpstreamError is a non-2xx SWS response. It matches the sentinel for its
// status: 404 ErrNotFound, 401 ErrUnauthorized, 403 ErrForbidden, anything
// else ErrUpstream.
type UpstreamError struct {
	Resource string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("sws: GET %s: status %d", e.Resource, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return ErrUpstream
	}
}
