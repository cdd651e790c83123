// Package errors provides typed errors for the pmsp solver.
//
// Every failure the solver can surface belongs to one of a small set of
// kinds, so callers (CLI, HTTP layer) can map errors to exit codes or
// status codes without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	// KindUnknown is the zero value; errors from outside the solver.
	KindUnknown Kind = iota
	// KindInvalidInstance marks malformed problem data: dimension
	// mismatches, negative times, missing fields. Fatal to any core call.
	KindInvalidInstance
	// KindDegenerateInstance marks instances the core handles with a
	// deterministic fallback rather than a failure (zero jobs, a job with
	// no defined outgoing setups). It exists for callers that want to
	// report the fallback; the core itself never returns it.
	KindDegenerateInstance
	// KindConfiguration marks solver parameters rejected before the
	// search loop starts.
	KindConfiguration
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInstance:
		return "invalid_instance"
	case KindDegenerateInstance:
		return "degenerate_instance"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error is an error with a Kind and optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// E creates a new error of the given kind.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Ef creates a new error of the given kind with a formatted message.
func Ef(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an existing error.
// Returns nil if err is nil.
func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
