// Package service provides application-level services for managing places and users.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrCreatorNotFound indicates the user named as creator of a place does
	// not exist. API layer should map this to HTTP 404 Not Found.
	ErrCreatorNotFound = errors.New("creator not found")
)

// PlaceServiceError wraps an underlying error with operation context so logs
// and API responses can name what failed without losing the sentinel chain.
type PlaceServiceError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *PlaceServiceError) Error() string {
	return fmt.Sprintf("place service %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As checks.
func (e *PlaceServiceError) Unwrap() error {
	return e.Err
}

// NewPlaceServiceError creates a PlaceServiceError for the given operation.
func NewPlaceServiceError(operation string, err error) *PlaceServiceError {
	return &PlaceServiceError{Operation: operation, Err: err}
}
