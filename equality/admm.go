package equality

import "github.com/solverkit/admmgraph/weight"

// admmRule implements the ADMM variable-side consensus: the mean of the
// incoming values, broadcast with weight Std.
type admmRule struct{}

// NewADMM returns the ADMM equality Rule.
// Complexity: O(1) to construct; Evaluate is O(len(msgs)).
func NewADMM() Rule {
	return admmRule{}
}

// Evaluate computes the mean of msgs[i].X and always returns weight Std.
// Precondition: len(msgs) > 0 (enforced by core.Graph before calling).
func (admmRule) Evaluate(msgs []weight.Value) (weight.Value, error) {
	var sum float64
	for _, m := range msgs {
		sum += m.X
	}

	return weight.Value{X: sum / float64(len(msgs)), W: weight.Std}, nil
}
