package types

// Unit is the success payload for operations that produce no value, as in
// Result[Unit, E].
type Unit struct{}

// Nothing is the canonical Unit value.
var Nothing Unit
