package core

import "github.com/solverkit/admmgraph/weight"

// Minimizer is a factor's local objective. Given buf prefilled with the
// incoming weighted message for each of the factor's declared edges, in
// declaration order, it writes the outgoing weighted message into each
// slot in place.
//
// Minimizers must be pure with respect to any state other than buf — the
// core relies on this to run the factor sweep in parallel (spec.md §4.3).
// A Minimizer that panics propagates out of Iterate; the graph must then
// be considered poisoned (spec.md §7).
type Minimizer func(buf []weight.Value)

// factorState is the per-factor state of spec.md §3: its ordered incident
// edges, its opaque Minimizer, and whether it currently participates in
// the factor sweep.
type factorState struct {
	edges     []EdgeRef
	minimizer Minimizer
	enabled   bool
}
