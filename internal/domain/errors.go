package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped by a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is missing, malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when a request carries no valid identity.
	ErrUnauthorized = errors.New("unauthorized operation")

	// ErrForbidden is returned when an identity lacks the role an operation requires.
	ErrForbidden = errors.New("forbidden operation")
)

// ValidationError describes a single rule violation on a named field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Field, e.Message)
}

// Unwrap supports errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
