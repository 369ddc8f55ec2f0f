package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the threadpool library

var (
	// ErrPoolConstruction indicates that a pool could not be constructed
	ErrPoolConstruction = errors.New("pool construction failed")

	// ErrTaskSubmission indicates that a task could not be submitted
	ErrTaskSubmission = errors.New("task submission failed")

	// ErrPoolClosed indicates that an operation was attempted on a pool
	// that has been shut down
	ErrPoolClosed = errors.New("pool is closed")

	// ErrNilTask indicates that a nil callable was submitted
	ErrNilTask = errors.New("task is nil")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ValidationError describes a rejected configuration parameter.
// It unwraps to ErrInvalidConfiguration so callers can test with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint to the error.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s %s (got %v)", e.Module, e.Field, e.Reason, e.Value)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
