// Package solo contains single-value, synchronous primitives that operate
// on Result[T, E]. These functions form the core building blocks for
// failure-aware pipelines.
//
// Highlights:
// - Succeed/Fail/FailMsg: construct Result[T, E]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - FailWhen: turn a detected condition into a failure
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapFailure: transform the success or the failure side
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Join: fold a result through a sequence of steps with a concat policy
package solo
