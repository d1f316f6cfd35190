// Package apperr defines the error taxonomy shared by every feature.
// Handlers translate a Kind into an HTTP status; usecases only pick the Kind.
package apperr

import "errors"

// Kind classifies an error for the transport layer.
type Kind int

const (
	// KindInternal is the zero value so unclassified errors end up as 500.
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a classified error with a message that is safe to show to callers.
// Callers add context with fmt.Errorf and %w; KindOf and Message still find it.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// New returns a classified error. Values returned by New are meant to be
// package-level sentinels compared with errors.Is.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Validation returns an ad-hoc validation error.
func Validation(msg string) *Error { return New(KindValidation, msg) }

// NotFound returns an ad-hoc not-found error.
func NotFound(msg string) *Error { return New(KindNotFound, msg) }

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the caller-facing message of the first *Error in err's
// chain. Internal errors never expose their text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Msg
	}
	return "internal server error"
}
