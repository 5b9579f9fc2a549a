package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is always wrapped in a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes a single field that failed its rule. The API layer
// only ever checks errors.Is(err, ErrValidation); the kind and field are kept
// for logging.
type ValidationError struct {
	Kind  Kind
	Field string
	Err   error
}

// NewValidationError creates a ValidationError for the given kind and field.
// The resulting error matches ErrValidation with errors.Is.
func NewValidationError(kind Kind, field string, cause error) *ValidationError {
	if cause == nil {
		cause = ErrValidation
	} else if !errors.Is(cause, ErrValidation) {
		cause = fmt.Errorf("%w: %v", ErrValidation, cause)
	}
	return &ValidationError{Kind: kind, Field: field, Err: cause}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Kind, e.Field, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
