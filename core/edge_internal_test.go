package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverkit/admmgraph/weight"
)

func newTestEdge(initialValue float64, w weight.MessageWeight) *edgeState {
	return &edgeState{
		x:             initialValue,
		z:             initialValue,
		weightToLeft:  w,
		weightToRight: w,
	}
}

// TestEdgeArithmeticSequence reproduces the single-edge microtest sequence
// of spec.md §8, starting from z=5.0, weightLeft=STD, α=0.1. The sequence
// exercises the edge's absorption/message accounting directly, the way a
// minimizer-free unit would.
func TestEdgeArithmeticSequence(t *testing.T) {
	const alpha = 0.1
	e := newTestEdge(5.0, weight.Std)

	require.Equal(t, 5.0, e.n(), "messageToFactor before any absorption")
	require.Equal(t, 5.0, e.m(), "messageToVariable before any absorption")

	e.factorAbsorb(3.0, weight.Std, false)
	require.Equal(t, 3.0, e.m(), "messageToVariable after first factor absorb")
	require.Equal(t, 5.0, e.n(), "messageToFactor unchanged until the edge flips")

	e.factorAbsorb(10.0, weight.Std, false)
	e.variableAbsorb(10.0, weight.Std, alpha, false)
	require.InDelta(t, 10.0, e.m(), 1e-10, "messageToVariable == x + alpha*(x-z)")
	require.Equal(t, 0.0, e.u, "dual accumulator unchanged when x == newZ")

	e.factorAbsorb(3.0, weight.Std, false)
	require.InDelta(t, 3.0, e.m(), 1e-10, "messageToVariable after the further factor absorb")

	// The edge flips: the variable side re-delivers z=10, so
	// u = 0.1*(3-10) = -0.7.
	e.variableAbsorb(10.0, weight.Std, alpha, false)
	require.InDelta(t, 2.3, e.m(), 1e-10, "messageToVariable after the flip")
	require.InDelta(t, 10.7, e.n(), 1e-10, "messageToFactor after the flip")
}

func TestEdgeFactorAbsorbSamplesMsgDiffOncePerIteration(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)

	e.factorAbsorb(3.0, weight.Std, false)
	require.False(t, e.hasMsgDiff, "no msgDiff until a second message-to-factor exists")

	e.factorAbsorb(4.0, weight.Std, false)
	require.True(t, e.hasMsgDiff)
	require.InDelta(t, 0.0, e.msgDiff, 1e-10, "z and u unchanged between the two absorbs")
}

func TestEdgeFactorAbsorbINFZeroesU(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)
	e.u = 2.5

	e.factorAbsorb(3.0, weight.Inf, false)

	require.Equal(t, 0.0, e.u)
	require.Equal(t, weight.Inf, e.weightToRight)
}

func TestEdgeVariableAbsorbINFZeroesU(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)
	e.x = 3.0
	e.u = 2.5

	e.variableAbsorb(8.0, weight.Inf, 0.1, false)

	require.Equal(t, 0.0, e.u)
	require.Equal(t, weight.Inf, e.weightToLeft)
}

func TestEdgeVariableAbsorbAdvancesDual(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)
	e.x = 8.0

	e.variableAbsorb(5.0, weight.Std, 0.1, false)

	require.InDelta(t, 0.1*(8.0-5.0), e.u, 1e-10)
}

func TestEdgeADMMWeightInvariance(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)

	e.factorAbsorb(3.0, weight.Zero, true)
	require.Equal(t, weight.Std, e.weightToRight, "ADMM forces factor-side weight to Std")

	e.variableAbsorb(4.0, weight.Inf, 0.1, true)
	require.Equal(t, weight.Std, e.weightToLeft, "ADMM forces variable-side weight to Std")
}

func TestEdgeTWAWeightPassthrough(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)

	e.factorAbsorb(3.0, weight.Zero, false)
	require.Equal(t, weight.Zero, e.weightToRight)

	e.variableAbsorb(4.0, weight.Inf, 0.1, false)
	require.Equal(t, weight.Inf, e.weightToLeft)
}

func TestEdgeResetForEnable(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)
	e.x, e.z, e.u = 9.0, 9.0, 3.5
	e.hasOldMsg, e.hasMsgDiff = true, true
	e.weightToLeft, e.weightToRight = weight.Zero, weight.Inf

	e.resetForEnable(2.0)

	require.Equal(t, 2.0, e.x)
	require.Equal(t, 2.0, e.z)
	require.Equal(t, 0.0, e.u)
	require.Equal(t, weight.Std, e.weightToLeft)
	require.Equal(t, weight.Std, e.weightToRight)
	require.False(t, e.hasOldMsg)
	require.False(t, e.hasMsgDiff)
	require.True(t, e.enabled)
}

func TestEdgeResetForReinit(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)
	e.x, e.z, e.u = 9.0, 9.0, 3.5
	e.hasOldMsg, e.hasMsgDiff = true, true

	e.resetForReinit(1.5, weight.Inf, false)

	require.Equal(t, 1.5, e.x)
	require.Equal(t, 1.5, e.z)
	require.Equal(t, 0.0, e.u)
	require.Equal(t, weight.Inf, e.weightToLeft)
	require.Equal(t, weight.Inf, e.weightToRight)
	require.False(t, e.hasOldMsg)
	require.False(t, e.hasMsgDiff)
}

func TestEdgeResetForReinitADMMForcesStd(t *testing.T) {
	e := newTestEdge(5.0, weight.Std)

	e.resetForReinit(1.5, weight.Inf, true)

	require.Equal(t, weight.Std, e.weightToLeft, "ADMM forces the restored weight to Std")
	require.Equal(t, weight.Std, e.weightToRight, "ADMM forces the restored weight to Std")
}
