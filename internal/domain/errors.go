package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrStore       = errors.New("store error")
	ErrReadBack    = errors.New("stored row unreadable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError reports a backend or transport failure for a store operation.
// It matches both ErrStore and the underlying cause, so callers can test for
// errors.Is(err, ErrStore) as well as errors.Is(err, ErrConflict).
type StoreError struct {
	Op   string
	Kind string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Kind, ErrStore.Error(), e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}

// ReadBackError reports a write that committed but whose stored row could
// not be decoded. It matches ErrReadBack only, never the decode cause, so a
// committed write is not mistaken for rejected input.
type ReadBackError struct {
	Op   string
	Kind string
	ID   string
	Err  error
}

func (e *ReadBackError) Error() string {
	return fmt.Sprintf("%s %s %q: %s: %v", e.Op, e.Kind, e.ID, ErrReadBack.Error(), e.Err)
}

func (e *ReadBackError) Unwrap() error {
	return ErrReadBack
}

// NotFound wraps ErrNotFound with the entity kind and identifier that failed
// to resolve. An optional cause is kept in the chain for logging.
func NotFound(kind, id string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("%s %q: %w: %w", kind, id, ErrNotFound, cause)
}
