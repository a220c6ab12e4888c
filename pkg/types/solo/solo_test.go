package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mk-55/typekit/pkg/types"
)

func TestSucceed(t *testing.T) {
	t.Parallel()
	r := Succeed[int, string](5)
	if !r.IsSuccess() || r.Unwrap() != 5 {
		t.Fatalf("expected success with 5, got: success=%v", r.IsSuccess())
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	r := Fail[int]("boom")
	if !r.IsFailure() || r.UnwrapFailure() != "boom" {
		t.Fatalf("expected failure with boom, got: failure=%v", r.IsFailure())
	}
}

func TestFailMsg(t *testing.T) {
	t.Parallel()
	r := FailMsg[int]("boom", "stage two gave up")
	if msg, ok := r.Message(); !ok || msg != "stage two gave up" {
		t.Fatalf("expected attached message, got: (%q, %v)", msg, ok)
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	r := Validate(5, func(in int) (bool, string) {
		return in > 0, "must be positive"
	})
	if !r.IsSuccess() || r.Unwrap() != 5 {
		t.Fatalf("expected success with 5, got: success=%v", r.IsSuccess())
	}
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()
	r := Validate(-5, func(in int) (bool, string) {
		return in > 0, "must be positive"
	})
	if !r.IsFailure() || r.UnwrapFailure() != "must be positive" {
		t.Fatalf("expected validation failure, got: failure=%v", r.IsFailure())
	}
}

func TestAndValidate_SkipsFailureInput(t *testing.T) {
	t.Parallel()
	called := false
	input := FailMsg[int]("upstream", "already broken")

	r := AndValidate(input, func(in int) (bool, string) {
		called = true
		return true, ""
	})

	if called {
		t.Fatalf("validator must not run on failure input")
	}
	if r.UnwrapFailure() != "upstream" {
		t.Fatalf("expected upstream failure preserved, got: %q", r.UnwrapFailure())
	}
	if msg, ok := r.Message(); !ok || msg != "already broken" {
		t.Fatalf("expected upstream message preserved, got: (%q, %v)", msg, ok)
	}
}

func TestValidateAll_AllPass(t *testing.T) {
	t.Parallel()
	input := Succeed[int, error](5)

	r := ValidateAll(input, false,
		func(in int) (bool, error) { return in > 0, errors.New("not positive") },
		func(in int) (bool, error) { return in < 10, errors.New("too large") },
	)

	if !r.IsSuccess() {
		t.Fatalf("expected success, got failure: %v", r.UnwrapFailure())
	}
	if r.ID() != input.ID() {
		t.Fatalf("expected passing validation to keep the input result")
	}
}

func TestValidateAll_CollectsFailures(t *testing.T) {
	t.Parallel()
	eNeg := errors.New("not positive")
	eBig := errors.New("too large")

	r := ValidateAll(Succeed[int, error](50), false,
		func(in int) (bool, error) { return in < 0, eNeg },
		func(in int) (bool, error) { return in < 10, eBig },
	)

	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	joined := r.UnwrapFailure()
	if !errors.Is(joined, eNeg) || !errors.Is(joined, eBig) {
		t.Fatalf("expected both failures joined, got: %v", joined)
	}
	if got := types.Errors(joined); len(got) != 2 {
		t.Fatalf("expected two joined errors, got: %v", got)
	}
}

func TestValidateAll_BreaksOnFirstFailure(t *testing.T) {
	t.Parallel()
	eNeg := errors.New("not positive")
	secondRan := false

	r := ValidateAll(Succeed[int, error](50), true,
		func(in int) (bool, error) { return in < 0, eNeg },
		func(in int) (bool, error) {
			secondRan = true
			return false, errors.New("too large")
		},
	)

	if secondRan {
		t.Fatalf("expected validation to stop at the first failure")
	}
	if got := types.Errors(r.UnwrapFailure()); len(got) != 1 || !errors.Is(got[0], eNeg) {
		t.Fatalf("expected only the first failure, got: %v", got)
	}
}

func TestFailWhen(t *testing.T) {
	t.Parallel()

	pass := FailWhen(Succeed[int, string](5), func(in int) (string, bool) {
		return "", false
	})
	if !pass.IsSuccess() {
		t.Fatalf("expected success to pass through")
	}

	stop := FailWhen(Succeed[int, string](5), func(in int) (string, bool) {
		return "flagged", true
	})
	if !stop.IsFailure() || stop.UnwrapFailure() != "flagged" {
		t.Fatalf("expected detected condition to fail, got: failure=%v", stop.IsFailure())
	}
}

func TestSwitch_Success(t *testing.T) {
	t.Parallel()
	r := Switch(Succeed[int, string](5), func(r int) types.Result[string, string] {
		return Succeed[string, string](strconv.Itoa(r))
	})
	if !r.IsSuccess() || r.Unwrap() != "5" {
		t.Fatalf("expected success with %q, got: success=%v", "5", r.IsSuccess())
	}
}

func TestSwitch_CarriesFailure(t *testing.T) {
	t.Parallel()
	called := false
	input := FailMsg[int]("boom", "details")

	r := Switch(input, func(r int) types.Result[string, string] {
		called = true
		return Succeed[string, string]("unused")
	})

	if called {
		t.Fatalf("onSuccess must not run on failure input")
	}
	if r.UnwrapFailure() != "boom" {
		t.Fatalf("expected carried failure, got: %q", r.UnwrapFailure())
	}
	if msg, ok := r.Message(); !ok || msg != "details" {
		t.Fatalf("expected carried message, got: (%q, %v)", msg, ok)
	}
	if r.ID() != input.ID() {
		t.Fatalf("expected carried provenance across the type change")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	r := Map(Succeed[int, string](5), func(r int) int { return r * 2 })
	if !r.IsSuccess() || r.Unwrap() != 10 {
		t.Fatalf("expected success with 10, got: success=%v", r.IsSuccess())
	}

	f := Map(Fail[int]("boom"), func(r int) int { return r * 2 })
	if !f.IsFailure() || f.UnwrapFailure() != "boom" {
		t.Fatalf("expected failure carried, got: failure=%v", f.IsFailure())
	}
}

func TestMapFailure(t *testing.T) {
	t.Parallel()

	s := MapFailure(Succeed[int, string](5), func(failure string) int { return -1 })
	if !s.IsSuccess() || s.Unwrap() != 5 {
		t.Fatalf("expected success untouched, got: success=%v", s.IsSuccess())
	}

	f := MapFailure(FailMsg[int]("boom", "ctx"), func(failure string) int {
		return len(failure)
	})
	if !f.IsFailure() || f.UnwrapFailure() != 4 {
		t.Fatalf("expected mapped failure 4, got: failure=%v", f.IsFailure())
	}
	if msg, ok := f.Message(); !ok || msg != "ctx" {
		t.Fatalf("expected message preserved across failure map, got: (%q, %v)", msg, ok)
	}
}

func TestTry_Success(t *testing.T) {
	t.Parallel()
	r := Try(Succeed[string, error]("17"), strconv.Atoi)
	if !r.IsSuccess() || r.Unwrap() != 17 {
		t.Fatalf("expected parsed 17, got: success=%v", r.IsSuccess())
	}
}

func TestTry_Error(t *testing.T) {
	t.Parallel()
	r := Try(Succeed[string, error]("x7"), strconv.Atoi)
	if !r.IsFailure() {
		t.Fatalf("expected parse failure")
	}
	var numErr *strconv.NumError
	if !errors.As(r.UnwrapFailure(), &numErr) {
		t.Fatalf("expected the original error carried, got: %v", r.UnwrapFailure())
	}
}

func TestTry_SkipsFailureInput(t *testing.T) {
	t.Parallel()
	called := false
	boom := errors.New("boom")

	r := Try(Fail[string](boom), func(r string) (int, error) {
		called = true
		return 0, nil
	})

	if called {
		t.Fatalf("onTryExecute must not run on failure input")
	}
	if !errors.Is(r.UnwrapFailure(), boom) {
		t.Fatalf("expected carried failure, got: %v", r.UnwrapFailure())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	seen := 0

	r := Tee(Succeed[int, string](5), func(r int) { seen = r })
	if seen != 5 || !r.IsSuccess() {
		t.Fatalf("expected side effect with 5 and untouched result, got: seen=%d", seen)
	}

	seen = 0
	Tee(Fail[int]("boom"), func(r int) { seen = r })
	if seen != 0 {
		t.Fatalf("side effect must not run on failure")
	}
}

func TestTeeIf(t *testing.T) {
	t.Parallel()
	seen := 0

	TeeIf(Succeed[int, string](5),
		func(r int) bool { return r > 3 },
		func(r int) { seen = r })
	if seen != 5 {
		t.Fatalf("expected side effect when condition holds, got: %d", seen)
	}

	seen = 0
	TeeIf(Succeed[int, string](2),
		func(r int) bool { return r > 3 },
		func(r int) { seen = r })
	if seen != 0 {
		t.Fatalf("side effect must not run when condition fails")
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	var onOK, onFail int

	DoubleTee(Succeed[int, string](5),
		func(r int) { onOK++ },
		func(failure string) { onFail++ })
	if onOK != 1 || onFail != 0 {
		t.Fatalf("expected only the success effect, got: ok=%d, fail=%d", onOK, onFail)
	}

	DoubleTee(Fail[int]("boom"),
		func(r int) { onOK++ },
		func(failure string) { onFail++ })
	if onOK != 1 || onFail != 1 {
		t.Fatalf("expected exactly one effect per result, got: ok=%d, fail=%d", onOK, onFail)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := Finally(Succeed[int, string](5),
		func(r int) string { return strconv.Itoa(r) },
		func(failure string) string { return "failed: " + failure })
	if got != "5" {
		t.Fatalf("expected %q, got: %q", "5", got)
	}

	got = Finally(Fail[int]("boom"),
		func(r int) string { return strconv.Itoa(r) },
		func(failure string) string { return "failed: " + failure })
	if got != "failed: boom" {
		t.Fatalf("expected %q, got: %q", "failed: boom", got)
	}
}

func keepFailures(step func(in int) types.Result[int, string]) func(types.Result[int, string]) types.Result[int, string] {
	return func(in types.Result[int, string]) types.Result[int, string] {
		if in.IsFailure() {
			return in
		}
		return step(in.Unwrap())
	}
}

func TestJoin_FoldsSteps(t *testing.T) {
	t.Parallel()

	r := Join(Succeed[int, string](1), true,
		func(current types.Result[int, string]) types.Result[int, string] { return current },
		keepFailures(func(in int) types.Result[int, string] { return Succeed[int, string](in + 1) }),
		keepFailures(func(in int) types.Result[int, string] { return Succeed[int, string](in * 10) }),
	)

	if !r.IsSuccess() || r.Unwrap() != 20 {
		t.Fatalf("expected folded 20, got: success=%v", r.IsSuccess())
	}
}

func TestJoin_BreakOnFailure(t *testing.T) {
	t.Parallel()
	thirdRan := false

	r := Join(Succeed[int, string](1), true,
		func(current types.Result[int, string]) types.Result[int, string] { return current },
		keepFailures(func(in int) types.Result[int, string] { return Succeed[int, string](in + 1) }),
		keepFailures(func(in int) types.Result[int, string] { return Fail[int]("dead") }),
		func(in types.Result[int, string]) types.Result[int, string] {
			thirdRan = true
			return in
		},
	)

	if thirdRan {
		t.Fatalf("expected fold to stop at the failure")
	}
	if !r.IsFailure() || r.UnwrapFailure() != "dead" {
		t.Fatalf("expected failure %q, got: failure=%v", "dead", r.IsFailure())
	}
}

func TestJoin_ContinuePastFailure(t *testing.T) {
	t.Parallel()

	r := Join(Succeed[int, string](1), false,
		func(current types.Result[int, string]) types.Result[int, string] { return current },
		keepFailures(func(in int) types.Result[int, string] { return Fail[int]("dead") }),
		func(in types.Result[int, string]) types.Result[int, string] {
			// Recovery step: replace any failure with a fallback value.
			if in.IsFailure() {
				return Succeed[int, string](0)
			}
			return in
		},
	)

	if !r.IsSuccess() || r.Unwrap() != 0 {
		t.Fatalf("expected recovered 0, got: success=%v", r.IsSuccess())
	}
}

func TestJoin_DegenerateInputs(t *testing.T) {
	t.Parallel()
	input := Succeed[int, string](1)

	if r := Join(input, true, func(c types.Result[int, string]) types.Result[int, string] { return c }); r.ID() != input.ID() {
		t.Fatalf("expected input back when there are no steps")
	}
	if r := Join(input, true, nil, keepFailures(func(in int) types.Result[int, string] { return Succeed[int, string](in) })); r.ID() != input.ID() {
		t.Fatalf("expected input back when concat is nil")
	}
}
