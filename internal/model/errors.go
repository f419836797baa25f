package model

import (
	"errors"
	"fmt"
)

// DomainError reports invalid input to one of the core routines:
// non-positive speed, zero-or-negative increment, zero capacity with a
// non-zero target, unknown operation key, and so on.
//
// Infeasibility is NOT a DomainError; it is a legitimate outcome carried
// as a status on the result types.
type DomainError struct {
	Field  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewDomainError builds a DomainError for the given field.
func NewDomainError(field, format string, args ...any) *DomainError {
	return &DomainError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func newDomainError(field, format string, args ...any) *DomainError {
	return NewDomainError(field, format, args...)
}

// IsDomainError reports whether err (or anything it wraps) is a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
