package equality

import "github.com/solverkit/admmgraph/weight"

// Rule computes the variable-side consensus (newZ, newWeight) from the
// weighted messages-to-variable of a variable's enabled edges. Callers
// must never call Evaluate with an empty slice — an empty enabled-edge set
// is a core.Graph-level no-op (spec.md §4.2, §7), not a Rule concern.
//
// Implementations must be pure: Evaluate may not retain or mutate msgs.
type Rule interface {
	Evaluate(msgs []weight.Value) (weight.Value, error)
}
