package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies application errors so transport layers can map
// them to protocol-level responses.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindForbidden    ErrorKind = "forbidden"
	KindUnauthorized ErrorKind = "unauthorized"
	KindPersistence  ErrorKind = "persistence"
)

// AppError is the shared error type carried across service boundaries.
type AppError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewValidationError creates an error for malformed or invalid input.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates an error for a missing entity.
func NewNotFoundError(entity, id string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewConflictError creates an error for a state conflict (duplicate row,
// concurrent modification).
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewForbiddenError creates an error for an operation the caller may not perform.
func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

// NewUnauthorizedError creates an error for missing or invalid credentials.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// NewInvalidStateError creates an error for a disallowed state transition.
func NewInvalidStateError(from, to string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: fmt.Sprintf("invalid state transition from %s to %s", from, to),
	}
}

// NewPersistenceError wraps a storage-layer failure.
func NewPersistenceError(message string, cause error) *AppError {
	return &AppError{Kind: KindPersistence, Message: message, cause: cause}
}

// KindOf returns the ErrorKind of err, or KindPersistence for untyped errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// IsNotFound reports whether err is a not-found application error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err is a conflict application error.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
