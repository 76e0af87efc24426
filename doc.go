// Package admmgraph is a message-passing solver over a bipartite factor
// graph, minimizing a sum of local objectives via ADMM (Alternating
// Direction Method of Multipliers) or TWA (the Three-Weight Algorithm, an
// ADMM variant admitting zero/standard/infinite edge confidence).
//
// 🧩 What is admmgraph?
//
//	A dependency-light library that brings together:
//		• weight  — the {ZERO, STD, INF} message confidence tag and its numeric projection
//		• equality — the ADMM / TWA variable-side consensus rules
//		• sweep   — the fork-join parallel-for used by the two per-iteration sweeps
//		• core    — Edge/Variable/Factor storage and the Graph scheduler itself
//
// ✨ Why choose admmgraph?
//
//   - Built for constraint-satisfaction and combinatorial problems expressed
//     as graphs of variables and factors — Sudoku, circle packing, and
//     anything else a client can express as a local minimizer per factor.
//   - Dense integer refs (VariableRef/EdgeRef/FactorRef) — no pointer graph,
//     no GC pressure from node objects.
//   - Algorithm choice (ADMM vs TWA) is bound once at construction; the
//     per-iteration hot path carries no algorithm-selection branch.
//   - Enabling or disabling a factor costs time proportional to that
//     factor's own edges, with a lazy enabled-edge rebuild per variable
//     rather than a full-graph scan.
//
// Under the hood, everything is organized under four subpackages:
//
//	weight/    — MessageWeight tag + numeric projection + the (value, weight) pair
//	equality/  — ADMM and TWA variable-side equality rules
//	sweep/     — serial/parallel fork-join iteration over a contiguous range
//	core/      — Edge/Variable/Factor storage, the Graph construction API and scheduler
//
// Quick usage:
//
//	g, _ := core.New(core.ADMM, 0.1)
//	a := g.CreateVariable(0, weight.Std)
//	b := g.CreateVariable(0, weight.Std)
//	eA := g.CreateEdge(a)
//	eB := g.CreateEdge(b)
//	g.CreateFactor([]core.EdgeRef{eA, eB}, func(buf []weight.Value) {
//	    mean := (buf[0].X + buf[1].X) / 2
//	    buf[0] = weight.Value{X: mean, W: weight.Std}
//	    buf[1] = weight.Value{X: mean, W: weight.Std}
//	})
//	for !g.Iterate() {
//	}
//
// See cmd/sudoku and cmd/circlepacking for end-to-end clients, and
// DESIGN.md / SPEC_FULL.md for the grounding behind every design decision.
package admmgraph
