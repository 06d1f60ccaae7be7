package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// SourceError marks a failure that originated at a named external data
// source (upstream transport error, invalid payload, or timeout). The
// refresh flow uses this marker to report service-unavailable semantics
// instead of a generic internal error.
type SourceError struct {
	// Source is the upstream host the failure originated from,
	// e.g. "restcountries.com".
	Source string
	// Timeout is true when the call did not complete within its bound.
	Timeout bool
	Err     error
}

func (e *SourceError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s request timeout", e.Source)
	}
	return fmt.Sprintf("could not fetch data from %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceUnavailable wraps err as a non-timeout failure of the named source.
func NewSourceUnavailable(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewSourceTimeout marks a timed-out call to the named source.
func NewSourceTimeout(source string, err error) *SourceError {
	return &SourceError{Source: source, Timeout: true, Err: err}
}

// IsExternalSource reports whether err (or anything it wraps) originated
// from an external data source.
func IsExternalSource(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}
