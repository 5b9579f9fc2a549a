package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrHeroNotFound, ErrVendorSweetNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity cannot be stored because it
	// breaks referential integrity (a reference to a missing row, or a
	// required reference left unset).
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	ErrHeroNotFound        = fmt.Errorf("%w: hero", ErrNotFound)
	ErrPowerNotFound       = fmt.Errorf("%w: power", ErrNotFound)
	ErrHeroPowerNotFound   = fmt.Errorf("%w: hero power", ErrNotFound)
	ErrVendorNotFound      = fmt.Errorf("%w: vendor", ErrNotFound)
	ErrSweetNotFound       = fmt.Errorf("%w: sweet", ErrNotFound)
	ErrVendorSweetNotFound = fmt.Errorf("%w: vendor sweet", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// All entity-specific errors wrap ErrNotFound, so one check covers them.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidEntityError checks if the error reports a referential failure.
func IsInvalidEntityError(err error) bool {
	return errors.Is(err, ErrInvalidEntity)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "hero_power", "vendor_sweet")
	Operation string // The operation that failed (e.g., "create", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
