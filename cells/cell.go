// Package cells holds the benchmark cells: independent comparisons of two or
// more equivalent implementations of a common numeric idiom. Each cell owns
// its example inputs; cells share no state and can run in any order.
package cells

import (
	"fmt"

	"numbench/harness"
)

// Cell is one isolated comparison. Check verifies that every candidate
// produces numerically equivalent results on the cell's example input;
// Candidates are the closures handed to the harness.
type Cell struct {
	Name       string
	Detail     string
	Candidates []harness.Candidate
	Check      func() error
}

// All returns the cells in document order. Each call constructs fresh cells
// with independent buffers.
func All() []Cell {
	return []Cell{
		ArithCell(4096),
		CallsCell(4096),
		SeqCell(4096),
		PolyEvalCell(4096),
		FrameCell(2048, 8),
		ODECell(),
		HECell(),
	}
}

// ByName looks up a single cell from All.
func ByName(name string) (Cell, error) {
	for _, c := range All() {
		if c.Name == name {
			return c, nil
		}
	}
	return Cell{}, fmt.Errorf("unknown cell %q", name)
}
