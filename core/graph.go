package core

import (
	"fmt"

	"github.com/solverkit/admmgraph/equality"
	"github.com/solverkit/admmgraph/sweep"
	"github.com/solverkit/admmgraph/weight"
)

// denseThreshold is the enabledFactors/totalFactors ratio at or above
// which the factor sweep walks every factor index and skips disabled ones
// inline, rather than enumerating the enabled-index set (spec.md §4.4).
const denseThreshold = 0.15

// Graph is the bipartite factor graph: construction API, the two-phase
// parallel iteration scheduler, convergence detection, and factor
// enable/disable bookkeeping. Variables, factors and edges live in three
// parallel, append-only slices indexed by VariableRef/FactorRef/EdgeRef.
type Graph struct {
	algorithm Algorithm
	admm      bool
	alpha     float64
	delta     float64
	parallel  bool
	rule      equality.Rule

	variables []variableState
	factors   []factorState
	edges     []edgeState

	enabledFactors *factorSet

	iterations int
	converged  bool

	onIterate []func()
	onReinit  []func()

	busy bool
}

// New constructs a Graph bound to algorithm with the given ADMM learning
// rate α. The equality rule is resolved once here; Iterate's hot path
// never branches on algorithm again. Returns ErrUnknownAlgorithm if
// algorithm is neither ADMM nor TWA.
func New(algorithm Algorithm, learningRate float64, opts ...Option) (*Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var rule equality.Rule
	admm := false
	switch algorithm {
	case ADMM:
		rule = equality.NewADMM()
		admm = true
	case TWA:
		rule = equality.NewTWA(cfg.strictTWA, cfg.logger)
	default:
		return nil, fmt.Errorf("core: New(%v): %w", algorithm, ErrUnknownAlgorithm)
	}

	return &Graph{
		algorithm:      algorithm,
		admm:           admm,
		alpha:          learningRate,
		delta:          cfg.delta,
		parallel:       cfg.parallel,
		rule:           rule,
		enabledFactors: newFactorSet(),
	}, nil
}

// CreateVariable adds a variable with the given initial (value, weight)
// and returns its stable reference. Only valid before the first Iterate
// call that depends on it, though the core does not itself enforce that —
// see spec.md §3's lifecycle note.
func (g *Graph) CreateVariable(initialValue float64, initialWeight weight.MessageWeight) VariableRef {
	g.variables = append(g.variables, variableState{
		value:         initialValue,
		initialValue:  initialValue,
		initialWeight: initialWeight,
	})
	return VariableRef(len(g.variables) - 1)
}

// CreateEdge attaches a new edge to v, seeded from v's current initial
// (value, weight). The edge remains disabled until bound to a factor via
// CreateFactor.
func (g *Graph) CreateEdge(v VariableRef) EdgeRef {
	vs := &g.variables[v]
	w := vs.initialWeight
	if g.admm {
		w = weight.Std
	}
	g.edges = append(g.edges, edgeState{
		variable:      v,
		x:             vs.initialValue,
		z:             vs.initialValue,
		weightToLeft:  w,
		weightToRight: w,
		enabled:       false,
	})
	ref := EdgeRef(len(g.edges) - 1)
	vs.edges = append(vs.edges, ref)
	return ref
}

// CreateFactor binds edges (in the order minimizer expects to see them)
// to a new factor, enabling each of them, and returns the factor's stable
// reference. The new factor starts enabled.
func (g *Graph) CreateFactor(edges []EdgeRef, minimizer Minimizer) FactorRef {
	owned := append([]EdgeRef(nil), edges...)
	g.factors = append(g.factors, factorState{
		edges:     owned,
		minimizer: minimizer,
		enabled:   true,
	})
	fr := FactorRef(len(g.factors) - 1)
	g.enabledFactors.add(fr)

	for _, ref := range owned {
		e := &g.edges[ref]
		e.factor = fr
		e.enabled = true
		g.variables[e.variable].markDirty()
	}

	return fr
}

// Value returns v's current value; meaningful only after v's first
// equality sweep — before that, the initial value is returned.
func (g *Graph) Value(v VariableRef) float64 {
	return g.variables[v].value
}

// FactorEnabled reports whether f currently participates in the factor
// sweep.
func (g *Graph) FactorEnabled(f FactorRef) bool {
	return g.factors[f].enabled
}

// SetFactorEnabled enables or disables f. Panics with ErrGraphBusy if
// called while Iterate is running its sweeps or convergence check; calls
// from an onIterate callback are allowed.
func (g *Graph) SetFactorEnabled(f FactorRef, enabled bool) {
	if g.busy {
		panic(ErrGraphBusy)
	}
	if enabled {
		g.enableFactor(f)
	} else {
		g.disableFactor(f)
	}
}

// NumVariables, NumFactors and NumEdges return the graph's static sizes.
func (g *Graph) NumVariables() int { return len(g.variables) }
func (g *Graph) NumFactors() int   { return len(g.factors) }
func (g *Graph) NumEdges() int     { return len(g.edges) }

// NumEnabledFactors returns the size of the enabled-factor set.
func (g *Graph) NumEnabledFactors() int {
	return g.enabledFactors.len()
}

// NumEnabledEdges counts currently-enabled edges. O(numEdges).
func (g *Graph) NumEnabledEdges() int {
	n := 0
	for i := range g.edges {
		if g.edges[i].enabled {
			n++
		}
	}
	return n
}

// LearningRate returns the current ADMM learning rate α.
func (g *Graph) LearningRate() float64 {
	return g.alpha
}

// SetLearningRate updates α. Panics with ErrGraphBusy if called while
// Iterate is running its sweeps or convergence check; calls from an
// onIterate callback are allowed.
func (g *Graph) SetLearningRate(alpha float64) {
	if g.busy {
		panic(ErrGraphBusy)
	}
	g.alpha = alpha
}

// Iterations returns the number of completed Iterate calls since
// construction or the last Reinitialize.
func (g *Graph) Iterations() int {
	return g.iterations
}

// Converged reports whether the most recent Iterate call found every
// enabled edge's message-to-factor had moved by at most δ.
func (g *Graph) Converged() bool {
	return g.converged
}

// OnIterate registers fn to run, on the driver goroutine, after every
// Iterate call that actually performs a sweep (not the converged no-op).
func (g *Graph) OnIterate(fn func()) {
	g.onIterate = append(g.onIterate, fn)
}

// OnReinit registers fn to run after every Reinitialize call.
func (g *Graph) OnReinit(fn func()) {
	g.onReinit = append(g.onReinit, fn)
}

// Iterate drives one factor sweep, one variable sweep, convergence
// detection, and the onIterate callbacks, then returns the resulting
// Converged(). Calling Iterate on an already-converged graph is a no-op
// that returns true and fires no callbacks.
func (g *Graph) Iterate() bool {
	if g.converged {
		return true
	}

	g.busy = true
	g.factorSweep()
	g.variableSweep()
	g.iterations++
	g.converged = g.checkConvergence()
	g.busy = false

	for _, cb := range g.onIterate {
		cb()
	}

	return g.converged
}

// Reinitialize restores every variable and edge to its as-constructed
// (value, weight), re-enables every factor, clears accumulated dual state
// and message history, resets iterations/converged, then fires the
// onReinit callbacks.
func (g *Graph) Reinitialize() {
	if g.busy {
		panic(ErrGraphBusy)
	}

	for i := range g.variables {
		g.variables[i].value = g.variables[i].initialValue
	}

	g.enabledFactors = newFactorSet()
	for i := range g.factors {
		g.factors[i].enabled = true
		g.enabledFactors.add(FactorRef(i))
	}

	for i := range g.edges {
		v := &g.variables[g.edges[i].variable]
		g.edges[i].resetForReinit(v.initialValue, v.initialWeight, g.admm)
	}

	for i := range g.variables {
		g.variables[i].rebuildEnabledEdges(g.edges)
	}

	g.iterations = 0
	g.converged = false

	for _, cb := range g.onReinit {
		cb()
	}
}

// factorSweep runs the minimizer of every enabled factor, choosing the
// dense or sparse dispatch strategy by the current enabled/total ratio.
func (g *Graph) factorSweep() {
	total := len(g.factors)
	if total == 0 {
		return
	}

	ratio := float64(g.enabledFactors.len()) / float64(total)
	if ratio >= denseThreshold {
		sweep.For(total, g.parallel, func(i int) {
			if !g.factors[i].enabled {
				return
			}
			g.runFactor(FactorRef(i))
		})
		return
	}

	sweep.For(g.enabledFactors.len(), g.parallel, func(i int) {
		g.runFactor(g.enabledFactors.items[i])
	})
}

// runFactor fills f's exchange buffer with per-edge (n, weightToLeft),
// runs its minimizer, and applies factor-side absorption to every slot.
func (g *Graph) runFactor(f FactorRef) {
	fs := &g.factors[f]

	buf := getExchange(len(fs.edges))
	defer putExchange(buf)

	for i, ref := range fs.edges {
		e := &g.edges[ref]
		buf.slots[i] = weight.Value{X: e.n(), W: e.weightToLeft}
	}

	fs.minimizer(buf.slots)

	for i, ref := range fs.edges {
		e := &g.edges[ref]
		e.factorAbsorb(buf.slots[i].X, buf.slots[i].W, g.admm)
	}
}

// variableSweep evaluates the bound equality rule for every variable and
// applies variable-side absorption to its enabled edges.
func (g *Graph) variableSweep() {
	sweep.For(len(g.variables), g.parallel, func(i int) {
		g.runVariable(VariableRef(i))
	})
}

// runVariable rebuilds v's enabled-edge cache if dirty, evaluates the
// bound equality rule over the messages-to-variable of those edges, and
// applies variable-side absorption to each. An empty enabled-edge set is
// a no-op (spec.md §7).
func (g *Graph) runVariable(v VariableRef) {
	vs := &g.variables[v]

	if vs.enabledNeedsUpdate {
		vs.rebuildEnabledEdges(g.edges)
	}
	if len(vs.enabledEdges) == 0 {
		return
	}

	msgs := vs.scratch[:0]
	for _, ref := range vs.enabledEdges {
		e := &g.edges[ref]
		msgs = append(msgs, weight.Value{X: e.m(), W: e.weightToRight})
	}
	vs.scratch = msgs

	result, err := g.rule.Evaluate(msgs)
	if err != nil {
		panic(err)
	}
	vs.value = result.X

	for _, ref := range vs.enabledEdges {
		g.edges[ref].variableAbsorb(result.X, result.W, g.alpha, g.admm)
	}
}

// checkConvergence scans every enabled edge; the graph has converged when
// every one has a recorded msgDiff that is at most δ.
func (g *Graph) checkConvergence() bool {
	for i := range g.edges {
		e := &g.edges[i]
		if !e.enabled {
			continue
		}
		if !e.hasMsgDiff || e.msgDiff > g.delta {
			return false
		}
	}
	return true
}

// enableFactor implements spec.md §4.5's enable path: idempotent, resets
// f's edges to (variable.currentValue, STD) with cleared dual/message
// state, and appends each directly to its variable's enabledEdges rather
// than forcing a full rebuild.
func (g *Graph) enableFactor(f FactorRef) bool {
	fs := &g.factors[f]
	if fs.enabled {
		return false
	}
	fs.enabled = true
	g.enabledFactors.add(f)

	for _, ref := range fs.edges {
		e := &g.edges[ref]
		v := &g.variables[e.variable]
		e.resetForEnable(v.value)
		e.enabled = true
		v.appendEnabledEdge(ref)
	}

	return true
}

// disableFactor implements spec.md §4.5's disable path: idempotent, marks
// f's edges disabled and their owning variables dirty for lazy rebuild.
func (g *Graph) disableFactor(f FactorRef) bool {
	fs := &g.factors[f]
	if !fs.enabled {
		return false
	}
	fs.enabled = false
	g.enabledFactors.remove(f)

	for _, ref := range fs.edges {
		e := &g.edges[ref]
		e.enabled = false
		g.variables[e.variable].markDirty()
	}

	return true
}
