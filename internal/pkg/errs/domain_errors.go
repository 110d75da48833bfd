package errs

import "errors"

// Caller-facing categories. Every domain or use case sentinel unwraps to exactly one of these.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{e.Err, ErrValidation}
}

// Invalid attaches the offending field to a domain sentinel.
func Invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

// Validation declares a sentinel that is also an ErrValidation.
func Validation(msg string) error { return &categorized{msg: msg, category: ErrValidation} }

// NotFound declares a sentinel that is also an ErrNotFound.
func NotFound(msg string) error { return &categorized{msg: msg, category: ErrNotFound} }

// Conflict declares a sentinel that is also an ErrConflict.
func Conflict(msg string) error { return &categorized{msg: msg, category: ErrConflict} }

// Forbidden declares a sentinel that is also an ErrForbidden.
func Forbidden(msg string) error { return &categorized{msg: msg, category: ErrForbidden} }
