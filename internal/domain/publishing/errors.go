package publishing

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidArgument indicates that a field assignment violated a type
	// or length constraint. Every *ValidationError unwraps to this sentinel.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field
// failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap makes every validation error match ErrInvalidArgument with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
