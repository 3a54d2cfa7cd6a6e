// Package validate defines the structured validation failure returned by
// the submission and settings services. Callers distinguish it from
// transient storage errors with errors.As: validation failures are never
// retried and never persisted.
package validate

import (
	"errors"
	"fmt"
)

// Error describes a rejected input field.
type Error struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Failf builds a validation error for the given field.
func Failf(field, format string, args ...any) error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
