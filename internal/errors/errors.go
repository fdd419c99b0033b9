// Package errors provides centralized error definitions and helpers
// for the boardwalk codebase. It defines domain sentinels, semantic
// error types with context, and classification helpers, and re-exports
// the standard library entry points so callers import one package.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewNotFoundError("theme", "synthwave")
//	err := errors.NewValidationError("people out of range").WithField("people").WithValue(9)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrEmptyBoard) { ... }
//
//	var nf *errors.NotFoundError
//	if errors.As(err, &nf) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo Severity = iota
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Sentinel errors.
var (
	// ErrEmptyBoard indicates an export was requested with no projects.
	ErrEmptyBoard = New("board has no projects")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrNotTerminal indicates stdout is not an interactive terminal.
	ErrNotTerminal = New("not attached to a terminal")
)

// baseError carries the context shared by semantic error types.
type baseError struct {
	message    string
	severity   Severity
	userFacing bool
	cause      error
}

func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) UserFacing() bool   { return e.userFacing }
func (e *baseError) Unwrap() error      { return e.cause }

// NotFoundError indicates a named resource does not exist.
type NotFoundError struct {
	baseError
	Resource string
	ID       string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			severity:   SeverityWarning,
			userFacing: true,
		},
		Resource: resource,
		ID:       id,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %q not found: %v", e.Resource, e.ID, e.cause)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is reports a match against any *NotFoundError target.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError indicates invalid input or state.
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.message)
	}
	return fmt.Sprintf("validation failed: %s", e.message)
}

// Is reports a match against ErrInvalidInput or any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// IsUserFacing reports whether err is safe to show to the user as-is.
// Sentinels defined in this package are considered user facing.
func IsUserFacing(err error) bool {
	var b interface{ UserFacing() bool }
	if As(err, &b) {
		return b.UserFacing()
	}
	switch {
	case Is(err, ErrEmptyBoard), Is(err, ErrInvalidInput), Is(err, ErrNotTerminal):
		return true
	}
	return false
}

// GetSeverity returns the severity classification of err, defaulting
// to SeverityError for plain errors.
func GetSeverity(err error) Severity {
	var b interface{ Severity() Severity }
	if As(err, &b) {
		return b.Severity()
	}
	return SeverityError
}
