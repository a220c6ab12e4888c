package types

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of
// type E, never both. Build one with Success, Failure or FailureMsg; the
// zero value behaves like Failure with E's zero value and carries no
// provenance (IsZero reports the difference).
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	msg       string
	hasMsg    bool
	ok        bool
}

// Success returns a Result holding value on the success side.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		ok:        true,
	}
}

// Failure returns a Result holding failure on the failure side.
func Failure[T, E any](failure E) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		failure:   failure,
	}
}

// FailureMsg is Failure with a diagnostic message attached. The message is
// advisory only and never affects the discriminant.
func FailureMsg[T, E any](failure E, msg string) Result[T, E] {
	r := Failure[T, E](failure)
	r.msg = msg
	r.hasMsg = true
	return r
}

// FailureFrom carries the failure payload, diagnostic and provenance of
// from into a Result with success type Out. It panics with an
// ErrInvalidAccess error when from holds a success.
func FailureFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	if from.ok {
		panic(ErrInvalidAccess.New("FailureFrom called on success Result"))
	}
	return Result[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		failure:   from.failure,
		msg:       from.msg,
		hasMsg:    from.hasMsg,
	}
}

// IsSuccess reports whether the success side is populated.
func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the failure side is populated.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// IsZero reports whether r was never built by a constructor.
func (r Result[T, E]) IsZero() bool {
	return r.id == uuid.Nil
}

// Unwrap returns the success value. It panics with an ErrInvalidAccess
// error when r holds a failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(ErrInvalidAccess.New("Unwrap called on failure Result"))
	}
	return r.value
}

// UnwrapFailure returns the failure value. It panics with an
// ErrInvalidAccess error when r holds a success.
func (r Result[T, E]) UnwrapFailure() E {
	if r.ok {
		panic(ErrInvalidAccess.New("UnwrapFailure called on success Result"))
	}
	return r.failure
}

// Get returns the success value and true, or T's zero value and false.
func (r Result[T, E]) Get() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetFailure returns the failure value and true, or E's zero value and
// false.
func (r Result[T, E]) GetFailure() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.failure, true
}

// Message returns the diagnostic attached by FailureMsg, if any.
func (r Result[T, E]) Message() (string, bool) {
	return r.msg, r.hasMsg
}

// ID returns the identifier stamped at construction.
func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time in UTC.
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// FromTuple lifts Go's (value, err) convention into a Result. A non-nil
// err wins over the value.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](value)
}

// ToTuple lowers a Result back into Go's (value, err) convention.
func ToTuple[T any](r Result[T, error]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.failure
	}
	return r.value, nil
}
