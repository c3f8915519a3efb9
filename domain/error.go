// Package domain defines error types for the pizza store.
package domain

import (
	"errors"
	"fmt"
)

// UnknownStoreError is returned when no factory is registered for the given kind
type UnknownStoreError struct {
	Kind string
}

// Error implements the error interface for UnknownStoreError
func (e *UnknownStoreError) Error() string {
	return fmt.Sprintf("unknown store kind: %s", e.Kind)
}

// Is allows proper error type checking with errors.Is()
func (e *UnknownStoreError) Is(target error) bool {
	_, ok := target.(*UnknownStoreError)
	return ok
}

// NewUnknownStoreError creates a new UnknownStoreError
func NewUnknownStoreError(kind string) error {
	return &UnknownStoreError{Kind: kind}
}

// IsUnknownStoreError checks if an error is an UnknownStoreError
func IsUnknownStoreError(err error) bool {
	var use *UnknownStoreError
	return errors.As(err, &use)
}
