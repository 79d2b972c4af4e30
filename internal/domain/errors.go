package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports an unknown listing id.
	ErrNotFound = errors.New("listing not found")
	// ErrForbidden reports an ownership mismatch. The transport layer folds it
	// into a 404 so callers cannot probe for listings they do not own.
	ErrForbidden = errors.New("listing not owned by caller")
	// ErrUnauthenticated reports a mutating call without a caller identity.
	ErrUnauthenticated = errors.New("authentication required")
)

// Violation is one rejected field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a violation was recorded for field.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// ErrValidation builds a ValidationError with a single violation.
func ErrValidation(field, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Message: message}}}
}

// StorageError wraps a failure of the backing medium. The operation may or
// may not have reached storage; callers must not assume success.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err wraps a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
