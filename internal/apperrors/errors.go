package apperrors

import (
	"errors"
	"fmt"
)

// Error represents a typed planner error. Code identifies the failure class;
// Message is meant for the person at the terminal.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error with the same code, so clones of the predefined
// values below satisfy errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors.
var (
	ErrValidation        = New("VALIDATION_ERROR", "validation failed")
	ErrNotFound          = New("NOT_FOUND", "not found")
	ErrConflict          = New("CONFLICT", "already exists")
	ErrNoSubjects        = New("NO_SUBJECTS", "no subjects available")
	ErrWindowTooShort    = New("WINDOW_TOO_SHORT", "availability window too short")
	ErrNothingToSchedule = New("NOTHING_TO_SCHEDULE", "all subjects complete or exams passed")
	ErrPersistence       = New("PERSISTENCE_FAILED", "changes applied but could not be saved")
	ErrInternal          = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// IsUserError reports whether err stems from input or scheduling
// feasibility rather than the environment.
func IsUserError(err error) bool {
	for _, target := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrNoSubjects, ErrWindowTooShort, ErrNothingToSchedule} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
