package equality

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/solverkit/admmgraph/weight"
)

// twaRule implements the Three-Weight Algorithm variable-side consensus.
type twaRule struct {
	strict bool
	logger *log.Logger
}

// NewTWA returns the TWA equality Rule. When strict is false (the default
// posture spec.md describes), Evaluate short-circuits on the first INF
// message it sees — conflicting INF messages are resolved by encounter
// order, per spec.md §4.2/§7. When strict is true, Evaluate fully scans
// every message and returns ErrConflictingINF on disagreement instead;
// logger, if non-nil, additionally receives a structured warning before
// the error is returned. logger is ignored when strict is false.
func NewTWA(strict bool, logger *log.Logger) Rule {
	return &twaRule{strict: strict, logger: logger}
}

// Evaluate implements the three-step TWA rule (spec.md §4.2):
//  1. non-strict: the first INF message wins immediately.
//     strict: every message is scanned; a disagreeing second INF errors.
//  2. failing that, the mean over every non-ZERO message.
//  3. failing that (every message is ZERO), the mean over every message.
//
// Precondition: len(msgs) > 0 (enforced by core.Graph before calling).
func (r *twaRule) Evaluate(msgs []weight.Value) (weight.Value, error) {
	if !r.strict {
		for _, m := range msgs {
			if m.W == weight.Inf {
				return m, nil
			}
		}
	} else {
		first, sawINF, err := r.scanForINF(msgs)
		if err != nil {
			return weight.Value{}, err
		}
		if sawINF {
			return first, nil
		}
	}

	var nzSum, allSum float64
	var nzCount int
	for _, m := range msgs {
		allSum += m.X
		if m.W != weight.Zero {
			nzSum += m.X
			nzCount++
		}
	}
	if nzCount > 0 {
		return weight.Value{X: nzSum / float64(nzCount), W: weight.Std}, nil
	}

	return weight.Value{X: allSum / float64(len(msgs)), W: weight.Std}, nil
}

// scanForINF scans the full message set for INF messages without
// short-circuiting, returning the first one seen and an error if a later
// one disagrees with it.
func (r *twaRule) scanForINF(msgs []weight.Value) (weight.Value, bool, error) {
	var first weight.Value
	sawINF := false
	for _, m := range msgs {
		if m.W != weight.Inf {
			continue
		}
		if !sawINF {
			first = m
			sawINF = true
			continue
		}
		if m.X != first.X {
			if r.logger != nil {
				r.logger.Warn("conflicting INF messages on TWA variable",
					"first", first.X, "second", m.X)
			}

			return weight.Value{}, false, fmt.Errorf("equality: %w", ErrConflictingINF)
		}
	}

	return first, sawINF, nil
}
