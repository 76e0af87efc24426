// Package weight defines MessageWeight, the three-valued confidence tag
// carried by every message exchanged across an edge, and Value, the
// (scalar, confidence) pair that edges, the factor exchange buffer, and the
// equality rules all pass around.
//
// MessageWeight is one of:
//
//	ZERO — no information; the message contributes nothing to a consensus.
//	STD  — standard weight, numeric 1.0; an ordinary ADMM-style message.
//	INF  — certainty; numeric +Inf. An INF message on one side of an edge
//	       short-circuits the dual accumulator u to zero, and in TWA it
//	       dominates every other incident message.
//
// The tag, not its numeric projection, is the sole source of truth for the
// equality rules in package equality; Numeric is provided only for clients
// that need the float64 form (e.g. diagnostics, or a factor that wants to
// weight its own internal computation by confidence).
package weight
