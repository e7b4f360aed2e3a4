package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure. The set is closed: workflows and the
// presentation layer switch on kinds, never on message text.
type ErrorKind string

const (
	KindInvalidArgument     ErrorKind = "INVALID_ARGUMENT"
	KindInvalidState        ErrorKind = "INVALID_STATE"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindResourceUnavailable ErrorKind = "RESOURCE_UNAVAILABLE"
	KindBusinessRule        ErrorKind = "BUSINESS_RULE"
)

// Error is the single error type produced by entities, value objects and
// workflow guards.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ErrInvalidArgument(format string, args ...any) *Error {
	return newError(KindInvalidArgument, format, args...)
}

func ErrInvalidState(format string, args ...any) *Error {
	return newError(KindInvalidState, format, args...)
}

func ErrNotFound(resource, id string) *Error {
	return newError(KindNotFound, "%s %q not found", resource, id)
}

func ErrResourceUnavailable(format string, args ...any) *Error {
	return newError(KindResourceUnavailable, format, args...)
}

func ErrBusinessRule(format string, args ...any) *Error {
	return newError(KindBusinessRule, format, args...)
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
