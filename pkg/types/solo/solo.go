package solo

import (
	"errors"

	"github.com/mk-55/typekit/pkg/types"
)

func Succeed[T, E any](input T) types.Result[T, E] {
	return types.Success[T, E](input)
}

func Fail[T, E any](failure E) types.Result[T, E] {
	return types.Failure[T, E](failure)
}

func FailMsg[T, E any](failure E, msg string) types.Result[T, E] {
	return types.FailureMsg[T, E](failure, msg)
}

func Validate[T, E any](input T,
	validate func(in T) (valid bool, failure E)) types.Result[T, E] {
	return AndValidate(Succeed[T, E](input), validate)
}

func AndValidate[T, E any](input types.Result[T, E],
	validate func(in T) (valid bool, failure E)) types.Result[T, E] {

	if input.IsSuccess() {
		if valid, failure := validate(input.Unwrap()); !valid {
			return types.Failure[T, E](failure)
		}
	}
	return input
}

func ValidateAll[T any](input types.Result[T, error],
	breakOnFailure bool, // exit on first failure
	checks ...func(in T) (valid bool, failure error)) types.Result[T, error] {

	if input.IsFailure() {
		return input
	}

	var all []error
	for _, check := range checks {
		if valid, failure := check(input.Unwrap()); !valid {
			all = append(all, failure)
			if breakOnFailure {
				break
			}
		}
	}

	if len(all) == 0 {
		return input
	}
	return types.Failure[T, error](errors.Join(all...))
}

func FailWhen[T, E any](input types.Result[T, E],
	maybeFail func(in T) (failure E, failed bool)) types.Result[T, E] {

	if input.IsSuccess() {
		if failure, failed := maybeFail(input.Unwrap()); failed {
			return types.Failure[T, E](failure)
		}
	}
	return input
}

func Switch[In, Out, E any](input types.Result[In, E],
	onSuccess func(r In) types.Result[Out, E]) types.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Unwrap())
	}
	return types.FailureFrom[Out](input)
}

func Map[In, Out, E any](input types.Result[In, E],
	onSuccess func(r In) Out) types.Result[Out, E] {

	if input.IsSuccess() {
		return types.Success[Out, E](onSuccess(input.Unwrap()))
	}
	return types.FailureFrom[Out](input)
}

func MapFailure[T, E, F any](input types.Result[T, E],
	onFailure func(failure E) F) types.Result[T, F] {

	if input.IsSuccess() {
		return types.Success[T, F](input.Unwrap())
	}

	mapped := onFailure(input.UnwrapFailure())
	if msg, ok := input.Message(); ok {
		return types.FailureMsg[T, F](mapped, msg)
	}
	return types.Failure[T, F](mapped)
}

func Try[In, Out any](input types.Result[In, error],
	onTryExecute func(r In) (Out, error)) types.Result[Out, error] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Unwrap())
		if err != nil {
			return types.Failure[Out, error](err)
		}

		return types.Success[Out, error](out)
	}

	return types.FailureFrom[Out](input)
}

func Tee[T, E any](input types.Result[T, E],
	onSuccess func(r T)) types.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Unwrap())
	}

	return input
}

func TeeIf[T, E any](input types.Result[T, E],
	condition func(r T) bool,
	onSuccessAndCondition func(r T)) types.Result[T, E] {

	if input.IsSuccess() {
		if condition(input.Unwrap()) {
			onSuccessAndCondition(input.Unwrap())
		}
	}

	return input
}

func DoubleTee[T, E any](input types.Result[T, E],
	onSuccess func(r T),
	onFailure func(failure E)) types.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Unwrap())
	} else {
		onFailure(input.UnwrapFailure())
	}

	return input
}

func Finally[In, Out, E any](input types.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(failure E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Unwrap())
	}
	return onFailure(input.UnwrapFailure())
}

func Join[T, E any](input types.Result[T, E],
	breakOnFailure bool, // exit on first failure
	concat func(current types.Result[T, E]) types.Result[T, E],
	steps ...func(in types.Result[T, E]) types.Result[T, E]) types.Result[T, E] {

	if len(steps) == 0 || concat == nil {
		return input
	}

	final := concat(steps[0](input))

	if final.IsSuccess() || !breakOnFailure {
		for _, step := range steps[1:] {

			next := concat(step(final))
			if next.IsFailure() && breakOnFailure {
				return next
			}
			final = next
		}
	}
	return final
}
