package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the resource services. The transport layer
// maps each to a distinct, independently observable HTTP outcome.
var (
	// ErrNotFound means the identity has no visible record.
	ErrNotFound = errors.New("record not found")

	// ErrVersionRequired means a mutating request omitted the version token.
	// This is a malformed request, not a conflict.
	ErrVersionRequired = errors.New("version is required")

	// ErrVersionConflict means the supplied version does not match the
	// stored version; the write was rejected without mutating state.
	ErrVersionConflict = errors.New("version mismatch")
)

// ValidationError reports a request payload field that violates the
// resource contract (missing, too long, negative price, unparseable).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
