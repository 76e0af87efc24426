package core

import (
	"math"

	"github.com/solverkit/admmgraph/weight"
)

// edgeState is the per-edge state of spec.md §3: x (last value written by
// the factor), z (last value written by the variable), u (the ADMM scaled
// dual accumulator), the two directional weights, enabled, and the
// previous-message bookkeeping used to compute msgDiff for convergence.
//
// Both weight fields are always present (the "union at construction"
// choice spec.md §9 permits); under the ADMM algorithm every write to them
// is normalized to weight.Std (by the two absorption methods and
// resetForReinit below, and by Graph.CreateEdge; resetForEnable always
// writes weight.Std), so they are never observably anything else (the "ADMM weight invariance"
// testable property of spec.md §8).
type edgeState struct {
	variable VariableRef
	factor   FactorRef

	x, z, u float64

	weightToLeft  weight.MessageWeight // paired with n = z-u, the message to the factor
	weightToRight weight.MessageWeight // paired with m = x+u, the message to the variable

	enabled bool

	oldMsg    float64
	hasOldMsg bool

	msgDiff    float64
	hasMsgDiff bool
}

// n is the message to the factor: z - u.
func (e *edgeState) n() float64 {
	return e.z - e.u
}

// m is the message to the variable: x + u.
func (e *edgeState) m() float64 {
	return e.x + e.u
}

// factorAbsorb implements the factor-side absorption of spec.md §4.1:
// after a factor's minimizer writes (value, w) into this edge's exchange
// slot, the edge stores x/weightToRight, samples msgDiff against the
// outgoing message-to-factor computed from the *current* z/u (unaffected
// by this write), and zeroes u if the newly-written weight is Inf.
//
// admm forces w to weight.Std regardless of what the minimizer wrote,
// implementing the ADMM weight-storage specialization.
func (e *edgeState) factorAbsorb(value float64, w weight.MessageWeight, admm bool) {
	e.x = value
	if admm {
		w = weight.Std
	}
	e.weightToRight = w

	n := e.n()
	if e.hasOldMsg {
		e.msgDiff = math.Abs(n - e.oldMsg)
		e.hasMsgDiff = true
	}
	e.oldMsg = n
	e.hasOldMsg = true

	if e.weightToRight == weight.Inf {
		e.u = 0
	}
}

// variableAbsorb implements the variable-side absorption of spec.md §4.1:
// after the variable's equality rule writes (newZ, w) for this edge, the
// edge stores z/weightToLeft, then either zeroes u (if the new weight is
// Inf) or advances it by the ADMM dual update alpha*(x-z).
//
// admm forces w to weight.Std, as in factorAbsorb.
func (e *edgeState) variableAbsorb(newZ float64, w weight.MessageWeight, alpha float64, admm bool) {
	e.z = newZ
	if admm {
		w = weight.Std
	}
	e.weightToLeft = w

	if e.weightToLeft == weight.Inf {
		e.u = 0
	} else {
		e.u += alpha * (e.x - e.z)
	}
}

// resetForEnable restores this edge to the state spec.md §4.5 prescribes
// when its owning factor transitions disabled→enabled: value and weight
// both sides set from the variable's current value, weight.Std, with u,
// oldMsg and msgDiff cleared.
func (e *edgeState) resetForEnable(currentValue float64) {
	e.x = currentValue
	e.z = currentValue
	e.weightToLeft = weight.Std
	e.weightToRight = weight.Std
	e.u = 0
	e.hasOldMsg = false
	e.hasMsgDiff = false
	e.enabled = true
}

// resetForReinit restores this edge to its as-constructed state: value and
// weight from the owning variable's initial (value, weight), u/oldMsg/msgDiff
// cleared, enabled set.
//
// admm forces the restored weight to weight.Std, as factorAbsorb and
// variableAbsorb do, so a reinitialized ADMM edge never observably carries
// a non-Std weight even for the instant before its first absorption.
func (e *edgeState) resetForReinit(initialValue float64, initialWeight weight.MessageWeight, admm bool) {
	if admm {
		initialWeight = weight.Std
	}
	e.x = initialValue
	e.z = initialValue
	e.weightToLeft = initialWeight
	e.weightToRight = initialWeight
	e.u = 0
	e.hasOldMsg = false
	e.hasMsgDiff = false
	e.enabled = true
}
