package chain

import (
	"github.com/mk-55/typekit/pkg/types"
	"github.com/mk-55/typekit/pkg/types/solo"
)

type Chain[T, E any] struct {
	res types.Result[T, E]
}

func Start[T, E any](r types.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(types.Success[T, E](v))
}

func (c Chain[T, E]) Result() types.Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[T, E]) Then(onSuccess func(t T) types.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Unwrap())}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: types.Success[T, E](onSuccess(c.res.Unwrap()))}
}

// Validate short-circuits to failure when check rejects the current value
func (c Chain[T, E]) Validate(check func(t T) (valid bool, failure E)) Chain[T, E] {
	return Chain[T, E]{res: solo.AndValidate(c.res, check)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(t T), onFailure func(failure E)) Chain[T, E] {
	if c.res.IsSuccess() {
		if onSuccess != nil {
			onSuccess(c.res.Unwrap())
		}
	} else if onFailure != nil {
		onFailure(c.res.UnwrapFailure())
	}
	return c
}

// Or keeps c when it succeeded, otherwise the alternative
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// And keeps the first failure of the pair, otherwise the required chain
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

func (c Chain[T, E]) While(onSuccess func(t T) types.Result[T, E],
	while func(t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.res.Unwrap()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(t T) types.Result[T, E],
	until func(t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.res.Unwrap()) {
			return c
		}
	}
}

// Then composes a function that moves the chain to a new success type
func Then[T, U, E any](c Chain[T, E],
	onSuccess func(t T) types.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: solo.Switch(c.res, onSuccess)}
}

// Map transforms the successful value to a new success type
func Map[T, U, E any](c Chain[T, E], onSuccess func(t T) U) Chain[U, E] {
	return Chain[U, E]{res: solo.Map(c.res, onSuccess)}
}

// Try composes a function that returns (U, error), converting the error
// to a failure
func Try[T, U any](c Chain[T, error],
	try func(t T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: solo.Try(c.res, try)}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, U, E any](c Chain[T, E],
	onSuccess func(t T) U,
	onFailure func(failure E) U) U {
	return solo.Finally(c.res, onSuccess, onFailure)
}
