// Package errors carries the editor's error taxonomy. Validation and
// not-found errors describe conditions a caller can act on; invariant errors
// mean clipboard data stopped holding its own guarantees and the operation
// must abort; everything else classifies as internal.
package errors

import (
	"fmt"
)

// ErrorType names a taxonomy class
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeInvariant  ErrorType = "INVARIANT"
	ErrorTypeInternal   ErrorType = "INTERNAL"
)

// AppError is the error type every editor operation surfaces
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInvariant creates an invariant violation error.
// These indicate a programming defect, never a user-facing condition.
func NewInvariant(message string) error {
	return &AppError{
		Type:    ErrorTypeInvariant,
		Message: message,
	}
}

// Wrap adds context to an error. A taxonomy error keeps its class through
// any number of wraps; a plain error enters the taxonomy as internal.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}

	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf reports the taxonomy class of err. Errors from outside the
// taxonomy classify as internal.
func TypeOf(err error) ErrorType {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == ErrorTypeValidation
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == ErrorTypeNotFound
}

// IsInvariant checks if an error is an invariant violation
func IsInvariant(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == ErrorTypeInvariant
}
