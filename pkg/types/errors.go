package types

import "github.com/zeebo/errs"

var (
	// ErrInvalidAccess tags errors raised when a Result payload is read
	// against the wrong discriminant.
	ErrInvalidAccess = errs.Class("invalid access")

	// ErrOutOfBounds tags errors raised when a View index falls outside
	// [0, Len()).
	ErrOutOfBounds = errs.Class("out of bounds")
)

// IsInvalidAccess reports whether err, usually recovered from Unwrap or
// UnwrapFailure, is an invalid-access error.
func IsInvalidAccess(err error) bool {
	return ErrInvalidAccess.Has(err)
}

// IsOutOfBounds reports whether err is an out-of-bounds error.
func IsOutOfBounds(err error) bool {
	return ErrOutOfBounds.Has(err)
}

// Errors flattens err into its constituent errors, unwrapping the joined
// errors produced by errors.Join. A nil err yields nil.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
