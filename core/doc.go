// Package core implements the bipartite factor graph itself: Edge,
// Variable and Factor storage, the pooled per-factor exchange buffer, and
// Graph — the construction API, the two-phase parallel iteration
// scheduler, convergence detection, and factor enable/disable bookkeeping
// (spec.md §3, §4.1, §4.3–§4.6).
//
// Graph owns three parallel, append-only slices (variables, factors,
// edges) indexed by dense VariableRef/EdgeRef/FactorRef — there is no
// pointer graph to walk or cycles to break (spec.md §9). Variables and
// factors are only ever created before the first call to Iterate; after
// that, the only structural mutation allowed is factor enable/disable
// (spec.md §3's lifecycle section).
//
// # Algorithm binding
//
// The algorithm (ADMM or TWA) is resolved once, in New, into a bound
// equality.Rule stored on the Graph; Iterate's hot path never branches on
// it again beyond a single admm-or-not flag used to normalize weight
// writes under ADMM (see DESIGN.md's "ADMM weight storage specialization"
// entry).
//
// # Errors
//
//	ErrUnknownAlgorithm — New was given an Algorithm other than ADMM/TWA.
//	ErrGraphBusy        — a structural mutation (SetFactorEnabled,
//	                       SetLearningRate) was attempted while Iterate is
//	                       running its sweeps or convergence check, i.e.
//	                       outside the onIterate callbacks (spec.md §7's
//	                       debug guard).
//
// A faulting Minimizer, or a TWA strict-mode INF conflict, panics out of
// Iterate instead of returning an error — see DESIGN.md's Open Question
// log for why.
package core
