// Command circlepacking demonstrates packing equal-radius circles into a
// unit square without overlap by driving core.Graph with one variable per
// circle center coordinate and one intersection factor per circle pair.
//
// Scenario:
//
//	n circles of fixed radius r are seeded at random (deterministic, seed
//	controlled) positions inside the unit square. Each pair of circles
//	gets a factor over its four edges (both circles' x and y coordinates)
//	that pushes the pair apart along the line joining their centers
//	whenever they overlap, and leaves them alone otherwise. No factor
//	keeps the centers inside the square; only the starting positions are
//	drawn from it.
//
// This is a reference client of core.Graph, not a production packing
// solver: the intersection factor is a simple separating-axis nudge, not
// a true proximal operator for the hard-overlap constraint.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/solverkit/admmgraph/core"
	"github.com/solverkit/admmgraph/weight"
)

const (
	numCircles = 100
	radius     = 0.0504
	rngSeed    = 777
	alpha      = 0.07
	delta      = 1e-5
)

type circleVars struct {
	x, y core.VariableRef
}

// intersectionFactor returns a Minimizer over four edges (x1, y1, x2, y2)
// that separates the two circles along their center line by half the
// overlap whenever their distance is less than 2*radius.
func intersectionFactor() core.Minimizer {
	return func(buf []weight.Value) {
		x1, y1, x2, y2 := buf[0].X, buf[1].X, buf[2].X, buf[3].X

		dx, dy := x2-x1, y2-y1
		dist := math.Hypot(dx, dy)
		overlap := 2*radius - dist
		if overlap <= 0 || dist < 1e-12 {
			buf[0] = weight.Value{X: x1, W: weight.Std}
			buf[1] = weight.Value{X: y1, W: weight.Std}
			buf[2] = weight.Value{X: x2, W: weight.Std}
			buf[3] = weight.Value{X: y2, W: weight.Std}
			return
		}

		ux, uy := dx/dist, dy/dist
		push := overlap / 2

		buf[0] = weight.Value{X: x1 - ux*push, W: weight.Std}
		buf[1] = weight.Value{X: y1 - uy*push, W: weight.Std}
		buf[2] = weight.Value{X: x2 + ux*push, W: weight.Std}
		buf[3] = weight.Value{X: y2 + uy*push, W: weight.Std}
	}
}

func maxOverlap(g *core.Graph, circles []circleVars) float64 {
	worst := 0.0
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			dx := g.Value(circles[j].x) - g.Value(circles[i].x)
			dy := g.Value(circles[j].y) - g.Value(circles[i].y)
			overlap := 2*radius - math.Hypot(dx, dy)
			if overlap > worst {
				worst = overlap
			}
		}
	}
	return worst
}

func main() {
	g, err := core.New(core.TWA, alpha, core.WithConvergenceDelta(delta))
	if err != nil {
		log.Fatalf("circlepacking: %v", err)
	}

	rng := rand.New(rand.NewSource(rngSeed))

	circles := make([]circleVars, numCircles)
	for i := range circles {
		x := rng.Float64()
		y := rng.Float64()
		circles[i] = circleVars{
			x: g.CreateVariable(x, weight.Std),
			y: g.CreateVariable(y, weight.Std),
		}
	}

	for i := 0; i < numCircles; i++ {
		for j := i + 1; j < numCircles; j++ {
			edges := []core.EdgeRef{
				g.CreateEdge(circles[i].x),
				g.CreateEdge(circles[i].y),
				g.CreateEdge(circles[j].x),
				g.CreateEdge(circles[j].y),
			}
			g.CreateFactor(edges, intersectionFactor())
		}
	}

	const maxIterations = 25000
	for iter := 0; iter < maxIterations; iter++ {
		if g.Iterate() {
			break
		}
	}

	fmt.Printf("converged=%v after %d iterations, maxOverlap=%.6f\n",
		g.Converged(), g.Iterations(), maxOverlap(g, circles))
}
