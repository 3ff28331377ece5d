package gostecc

import (
	"errors"
	"fmt"

	"github.com/mahdiidarabi/gost-ecc/internal/retry"
)

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrSigFormat indicates signature text of the wrong length or with
	// non-hex characters.
	ErrSigFormat = ErrorKind("ErrSigFormat")

	// ErrRetryExhausted indicates a rejection-sampling loop did not converge
	// within its attempt cap. Errors of this kind also match
	// retry.ErrExhausted.
	ErrRetryExhausted = ErrorKind("ErrRetryExhausted")

	// ErrInvalidParams indicates domain parameters that do not describe a
	// usable curve and subgroup.
	ErrInvalidParams = ErrorKind("ErrInvalidParams")

	// ErrInvalidKey indicates a private scalar outside [1, n-1] or a bad
	// key-generation request.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrPointNotOnCurve indicates an encoded point that does not decode to a
	// point on the curve.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrUnknownHash indicates a digest name missing from the hash registry.
	ErrUnknownHash = ErrorKind("ErrUnknownHash")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to signing, verification or parameter
// handling. It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

func makeErrorf(kind ErrorKind, format string, args ...any) Error {
	return makeError(kind, fmt.Sprintf(format, args...))
}

// exhausted tags a retry.ErrExhausted failure with ErrRetryExhausted and
// passes any other error through unchanged.
func exhausted(op string, err error) error {
	if errors.Is(err, retry.ErrExhausted) {
		return fmt.Errorf("%w: %s: %w", ErrRetryExhausted, op, err)
	}
	return err
}
