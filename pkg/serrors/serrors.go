// Package serrors defines the semantic error taxonomy services answer with.
// Stores return plain errors (plus a couple of sentinels like ErrDuplicate);
// services classify them into kinds here, and the transport layer maps kinds
// to status codes without ever seeing raw store errors.
package serrors

import (
	"errors"
	"fmt"
)

// Kind marks a semantic error category. Kinds are comparable sentinels and
// match through errors.Is/As via the Error wrapper below.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new sentinel kind with the given name.
func NewKind(name string) Kind { return kind{s: name} }

// The kinds the platform answers with. Conflicts cover duplicate emails,
// double applications and double saves; not-found deliberately also covers
// rows the caller does not own, so existence of other users' records never
// leaks through error kinds.
var (
	// ErrNotFound means the row is missing or not the caller's.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized means missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden means the caller is authenticated but may not do this.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest means the input failed validation.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict means a uniqueness invariant would break: email already
	// registered, already applied, job already saved.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal means an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout means the operation ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable means a transient store or dependency fault; the caller
	// may retry.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// Matching semantics:
//   - errors.Is(err, target) matches either the kind sentinel or the
//     wrapped cause.
//   - errors.As(err, target) likewise succeeds for either.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped cause (optional)
	msg  string
}

// With constructs a semantic error from a kind and a human-readable message,
// e.g. With(ErrConflict, "already applied to this job"). Use Wrap to also
// carry a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error that classifies an underlying cause,
// keeping it reachable through errors.Is/As.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause so errors.Unwrap/Is/As can traverse it.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches target against the kind sentinel and the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
