// Package equality implements the variable-side consensus step of the
// solver in package core: given the weighted messages-to-variable of a
// variable's enabled edges, produce one (newZ, newWeight) broadcast back to
// every enabled edge.
//
// Two rules are provided, selected once at graph construction and never
// branched on again per iteration (core.Graph binds a single Rule at
// core.New and calls it from the hot path):
//
//   - ADMM: newZ is the mean of the incoming values; newWeight is always
//     Std. An empty message set is the caller's responsibility to skip —
//     Evaluate is never called with zero messages.
//   - TWA: an INF message dominates. In non-strict mode (the default) the
//     first INF message seen short-circuits the scan and is returned
//     immediately — callers must guarantee conflicting INF messages never
//     occur; if they do, the first one encountered silently wins. In
//     strict mode the scan never short-circuits: every message is
//     inspected, and a second INF message disagreeing with the first is
//     reported (optionally logged) as ErrConflictingINF instead of being
//     silently resolved by encounter order.
package equality
