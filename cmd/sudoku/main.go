// Command sudoku demonstrates solving a 4x4 Sudoku (two 2x2 boxes per row
// and column) by one-hot encoding it as a bipartite factor graph and
// driving core.Graph to convergence.
//
// Scenario:
//
//	Each of the 16 cells gets one continuous [0,1] variable per candidate
//	digit (64 variables total). A "one-hot" factor forces a group of
//	variables to sum to 1 by least-squares projection onto that hyperplane:
//	  - one cell factor per cell, over its 4 digit-candidates;
//	  - one row factor per (row, digit), over the 4 cells of that row;
//	  - one column factor per (column, digit), over the 4 cells of that
//	    column;
//	  - one box factor per (box, digit), over the 4 cells of that box.
//	Given clues are pinned via a single-edge factor that always reports
//	the clue's candidate as certain.
//
// The demo prints the decoded grid (argmax digit per cell) once the graph
// converges, along with the iteration count.
package main

import (
	"fmt"
	"log"

	"github.com/solverkit/admmgraph/core"
	"github.com/solverkit/admmgraph/weight"
)

const (
	size   = 4
	digits = 4
)

// puzzle uses 0 for an empty cell, 1..digits for a clue.
var puzzle = [size][size]int{
	{1, 0, 0, 4},
	{0, 0, 1, 0},
	{0, 4, 0, 0},
	{3, 0, 0, 2},
}

// cellDigit indexes the 64 one-hot variables.
func cellDigit(row, col, digit int) int {
	return (row*size+col)*digits + digit
}

// projectToSimplex is the least-squares projection of a group of incoming
// messages onto the hyperplane "these values sum to 1": shift every
// coordinate by the same amount so the group sums to exactly one.
func projectToSimplex(buf []weight.Value) {
	var sum float64
	for _, v := range buf {
		sum += v.X
	}
	shift := (1 - sum) / float64(len(buf))
	for i := range buf {
		buf[i] = weight.Value{X: buf[i].X + shift, W: weight.Std}
	}
}

func main() {
	g, err := core.New(core.TWA, 0.2, core.WithConvergenceDelta(1e-4))
	if err != nil {
		log.Fatalf("sudoku: %v", err)
	}

	variables := make([]core.VariableRef, size*size*digits)
	edges := make([]core.EdgeRef, size*size*digits)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for d := 0; d < digits; d++ {
				idx := cellDigit(row, col, d)
				variables[idx] = g.CreateVariable(1.0/float64(digits), weight.Std)
				edges[idx] = g.CreateEdge(variables[idx])
			}
		}
	}

	// Cell factors: exactly one digit per cell.
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			group := make([]core.EdgeRef, 0, digits)
			for d := 0; d < digits; d++ {
				group = append(group, edges[cellDigit(row, col, d)])
			}
			g.CreateFactor(group, projectToSimplex)
		}
	}

	// Row factors: exactly one cell per (row, digit).
	for row := 0; row < size; row++ {
		for d := 0; d < digits; d++ {
			group := make([]core.EdgeRef, 0, size)
			for col := 0; col < size; col++ {
				group = append(group, edges[cellDigit(row, col, d)])
			}
			g.CreateFactor(group, projectToSimplex)
		}
	}

	// Column factors: exactly one cell per (column, digit).
	for col := 0; col < size; col++ {
		for d := 0; d < digits; d++ {
			group := make([]core.EdgeRef, 0, size)
			for row := 0; row < size; row++ {
				group = append(group, edges[cellDigit(row, col, d)])
			}
			g.CreateFactor(group, projectToSimplex)
		}
	}

	// Box factors: exactly one cell per (2x2 box, digit).
	boxSize := 2
	for boxRow := 0; boxRow < size/boxSize; boxRow++ {
		for boxCol := 0; boxCol < size/boxSize; boxCol++ {
			for d := 0; d < digits; d++ {
				group := make([]core.EdgeRef, 0, boxSize*boxSize)
				for r := 0; r < boxSize; r++ {
					for c := 0; c < boxSize; c++ {
						row := boxRow*boxSize + r
						col := boxCol*boxSize + c
						group = append(group, edges[cellDigit(row, col, d)])
					}
				}
				g.CreateFactor(group, projectToSimplex)
			}
		}
	}

	// Clue pins: a single-edge factor that always asserts certainty.
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			clue := puzzle[row][col]
			if clue == 0 {
				continue
			}
			clueDigit := clue - 1
			edge := edges[cellDigit(row, col, clueDigit)]
			g.CreateFactor([]core.EdgeRef{edge}, func(buf []weight.Value) {
				buf[0] = weight.Value{X: 1.0, W: weight.Inf}
			})
		}
	}

	const maxIterations = 5000
	iter := 0
	for ; iter < maxIterations; iter++ {
		if g.Iterate() {
			break
		}
	}

	fmt.Printf("converged=%v after %d iterations\n", g.Converged(), g.Iterations())
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			best, bestDigit := -1.0, 0
			for d := 0; d < digits; d++ {
				v := g.Value(variables[cellDigit(row, col, d)])
				if v > best {
					best, bestDigit = v, d
				}
			}
			fmt.Printf("%d ", bestDigit+1)
		}
		fmt.Println()
	}
}
