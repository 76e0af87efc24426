package equality_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/admmgraph/equality"
	"github.com/solverkit/admmgraph/weight"
)

// TestTWA_OneINF covers spec.md §8's "TWA: one INF": output equals that
// edge's value with weight INF.
func TestTWA_OneINF(t *testing.T) {
	rule := equality.NewTWA(false, nil)

	msgs := []weight.Value{
		{X: 1, W: weight.Std},
		{X: 42, W: weight.Inf},
		{X: 3, W: weight.Zero},
	}

	out, err := rule.Evaluate(msgs)
	require.NoError(t, err)
	require.Equal(t, 42.0, out.X)
	require.Equal(t, weight.Inf, out.W)
}

// TestTWA_MixedZeroStd covers spec.md §8's "TWA: no INF, mixed ZERO/STD":
// output equals the mean over the non-ZERO edges.
func TestTWA_MixedZeroStd(t *testing.T) {
	rule := equality.NewTWA(false, nil)

	msgs := []weight.Value{
		{X: 10, W: weight.Std},
		{X: 20, W: weight.Std},
		{X: 999, W: weight.Zero},
	}

	out, err := rule.Evaluate(msgs)
	require.NoError(t, err)
	require.Equal(t, 15.0, out.X)
	require.Equal(t, weight.Std, out.W)
}

// TestTWA_AllZero covers spec.md §8's "If all are ZERO, output equals mean
// over all with STD."
func TestTWA_AllZero(t *testing.T) {
	rule := equality.NewTWA(false, nil)

	msgs := []weight.Value{
		{X: 4, W: weight.Zero},
		{X: 6, W: weight.Zero},
	}

	out, err := rule.Evaluate(msgs)
	require.NoError(t, err)
	require.Equal(t, 5.0, out.X)
	require.Equal(t, weight.Std, out.W)
}

// TestTWA_NonStrictConflictingINF_FirstWins documents the nondeterminism
// spec.md §4.2/§7 calls out under client misuse: non-strict mode resolves
// conflicting INF messages by encounter order, silently.
func TestTWA_NonStrictConflictingINF_FirstWins(t *testing.T) {
	rule := equality.NewTWA(false, nil)

	msgs := []weight.Value{
		{X: 1, W: weight.Inf},
		{X: 2, W: weight.Inf},
	}

	out, err := rule.Evaluate(msgs)
	require.NoError(t, err)
	require.Equal(t, 1.0, out.X)
	require.Equal(t, weight.Inf, out.W)
}

// TestTWA_StrictConflictingINF_Errors covers the optional debug-mode
// assertion spec.md §4.2/§9 describes.
func TestTWA_StrictConflictingINF_Errors(t *testing.T) {
	rule := equality.NewTWA(true, nil)

	msgs := []weight.Value{
		{X: 1, W: weight.Inf},
		{X: 2, W: weight.Inf},
	}

	_, err := rule.Evaluate(msgs)
	require.Error(t, err)
	require.True(t, errors.Is(err, equality.ErrConflictingINF))
}

// TestTWA_StrictConflictingINF_LogsWarning verifies the non-nil logger
// passed to NewTWA actually receives the conflict diagnostic, not just
// compiles against the *log.Logger type.
func TestTWA_StrictConflictingINF_LogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	rule := equality.NewTWA(true, logger)

	msgs := []weight.Value{
		{X: 1, W: weight.Inf},
		{X: 2, W: weight.Inf},
	}

	_, err := rule.Evaluate(msgs)
	require.True(t, errors.Is(err, equality.ErrConflictingINF))
	require.Contains(t, buf.String(), "conflicting INF messages")
}

// TestTWA_StrictAgreeingINF_NoError ensures strict mode does not
// false-positive when every INF message agrees.
func TestTWA_StrictAgreeingINF_NoError(t *testing.T) {
	rule := equality.NewTWA(true, nil)

	msgs := []weight.Value{
		{X: 7, W: weight.Inf},
		{X: 1, W: weight.Std},
		{X: 7, W: weight.Inf},
	}

	out, err := rule.Evaluate(msgs)
	require.NoError(t, err)
	require.Equal(t, 7.0, out.X)
	require.Equal(t, weight.Inf, out.W)
}
