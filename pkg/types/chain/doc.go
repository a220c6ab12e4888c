// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous failure-aware chains using solo primitives.
//
// It composes functions like Switch, Map, Try and Finally behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: compose a function that already returns a Result
// - Map: transform the successful value in place
// - Validate: short-circuit to failure when a check rejects the value
// - Ensure: run side effects without changing the result
// - Or/And: pick between two finished chains
// - While/RepeatUntil: loop a step while the chain stays successful
// - Finally: collapse the chain into a final value via handlers
//
// Methods keep the success type fixed; the package-level Then, Map and
// Try change it.
package chain
