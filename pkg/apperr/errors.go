package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is the single answer to every failed admin login,
// regardless of which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError means the caller sent bad input. Surfaced as-is, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}
