package core

import "github.com/solverkit/admmgraph/weight"

// variableState is the per-variable state of spec.md §3: its current
// value, the full ordered list of incident edges, a cached subset of the
// edges whose owning factor is currently enabled, and a dirty flag that
// defers rebuilding that subset until it is actually needed.
type variableState struct {
	value float64

	initialValue  float64
	initialWeight weight.MessageWeight

	edges []EdgeRef

	enabledEdges       []EdgeRef
	enabledNeedsUpdate bool

	// scratch is reused across sweeps to avoid allocating the
	// equality.Rule input slice on every variable sweep; safe because
	// each variable is touched by exactly one goroutine per sweep.
	scratch []weight.Value
}

// markDirty sets enabledNeedsUpdate; the next variable sweep rebuilds
// enabledEdges from scratch before reading it (spec.md §4.4, step 2).
func (v *variableState) markDirty() {
	v.enabledNeedsUpdate = true
}

// rebuildEnabledEdges recomputes enabledEdges from the full edge list,
// filtering on each edge's enabled flag. The variable sweep calls it
// lazily, at most once per sweep, and only when enabledNeedsUpdate is set;
// Graph.Reinitialize calls it for every variable unconditionally.
func (v *variableState) rebuildEnabledEdges(edges []edgeState) {
	v.enabledEdges = v.enabledEdges[:0]
	for _, ref := range v.edges {
		if edges[ref].enabled {
			v.enabledEdges = append(v.enabledEdges, ref)
		}
	}
	v.enabledNeedsUpdate = false
}

// appendEnabledEdge appends ref directly to enabledEdges, the O(1)
// alternative rebuildEnabledEdges avoids paying when a single factor
// enables (spec.md §4.5). Safe even if enabledNeedsUpdate is already set:
// the next lazy rebuild recomputes from ground truth and discards this
// append if it was redundant.
func (v *variableState) appendEnabledEdge(ref EdgeRef) {
	v.enabledEdges = append(v.enabledEdges, ref)
}
