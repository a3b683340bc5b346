package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrCannotCancel is returned when cancellation is attempted on a
	// delivered or already cancelled order.
	ErrCannotCancel = errors.New("order cannot be cancelled")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a persistence failure. Callers surface it as a generic
// server-side error without leaking the underlying detail.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageFailed(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
