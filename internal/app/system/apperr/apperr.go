// internal/app/system/apperr/apperr.go
//
// Shared error taxonomy for the store boundary. Every store translates
// driver errors into one of these kinds exactly once; handlers map kinds
// to HTTP status codes in webjson and never see raw driver errors.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// Validation is malformed or missing required input.
	Validation Kind = iota
	// Conflict is a uniqueness violation (duplicate collaborator email,
	// duplicate registration).
	Conflict
	// NotFound means an id did not resolve.
	NotFound
	// ReferentialIntegrity means a delete was blocked by live references.
	ReferentialIntegrity
	// DataAccess is any other backing-store failure.
	DataAccess
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case NotFound:
		return "not_found"
	case ReferentialIntegrity:
		return "referential_integrity"
	default:
		return "data_access"
	}
}

// Error is a typed application error. Field is set for field-level
// validation detail; Err wraps the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf builds an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Invalid builds a validation error with field-level detail.
func Invalid(field, msg string) *Error {
	return &Error{Kind: Validation, Message: msg, Field: field}
}

// Wrap builds a DataAccess error around an underlying store failure.
func Wrap(msg string, err error) *Error {
	return &Error{Kind: DataAccess, Message: msg, Err: err}
}

// KindOf returns the kind of err, or DataAccess if err is not an
// application error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return DataAccess
}

// Is reports whether err is an application error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
