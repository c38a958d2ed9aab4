// Package uuiderr defines the error kinds shared by every guuid package.
//
// Each concrete error returned by the library belongs to exactly one kind, so
// callers can branch with errors.Is on either the concrete sentinel or its kind.
package uuiderr

import "errors"

var (
	// ErrInvalidArgument is the kind of every malformed-input failure:
	// bad strings, wrong byte lengths, non-hex or non-digit characters.
	ErrInvalidArgument = errors.New("guuid: invalid argument")

	// ErrUnsupportedOperation is the kind of calling a version-specific
	// accessor on a UUID whose version does not support it.
	ErrUnsupportedOperation = errors.New("guuid: unsupported operation")

	// ErrUnsatisfiedDependency is the kind of operations that need a
	// collaborator which is not configured, such as a big-integer backend.
	ErrUnsatisfiedDependency = errors.New("guuid: unsatisfied dependency")

	// ErrNoSuitableBuilder is returned when every builder of a fallback
	// chain rejected the input.
	ErrNoSuitableBuilder = errors.New("guuid: could not find a suitable builder for the provided codec and fields")
)

// Error is a sentinel error tagged with its kind.
type Error struct {
	kind error
	msg  string
}

// New returns a sentinel error of the given kind.
func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return "guuid: " + e.msg
}

// Unwrap returns the kind of the error.
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the kind the error belongs to.
func (e *Error) Kind() error {
	return e.kind
}
