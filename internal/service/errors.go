package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/store"
)

// ErrMissingDependency is returned by constructors when a required store is nil.
var ErrMissingDependency = errors.New("missing dependency")

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "hero_service")
	Service string
	// Operation is the operation that failed (e.g., "create_hero_power")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err with context. Errors the API maps to a client
// response (not found, validation, invalid entity) are returned unchanged.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) ||
		store.IsInvalidEntityError(err) ||
		errors.Is(err, domain.ErrValidation) {
		return err
	}
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
