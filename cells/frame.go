package cells

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"numbench/harness"
)

// FrameCell compares ways of extracting one column from a small synthetic
// table of rows x ncols values: a per-row map lookup into a column store, the
// same store with the column slice hoisted out of the loop, and two gonum
// mat.Dense accessors. The matrix library is a black box here; the cell only
// calls and times it. Every variant yields the identical column vector.
func FrameCell(rows, ncols int) Cell {
	cols := make(map[string][]float64, ncols)
	names := make([]string, ncols)
	dense := mat.NewDense(rows, ncols, nil)
	for j := 0; j < ncols; j++ {
		name := fmt.Sprintf("c%d", j)
		names[j] = name
		col := randVec(rows, -10, 10)
		cols[name] = col
		dense.SetCol(j, col)
	}
	target := names[ncols/2]
	targetIdx := ncols / 2

	mapOut := make([]float64, rows)
	hoistedOut := make([]float64, rows)
	colviewOut := make([]float64, rows)
	matcolOut := make([]float64, rows)

	cands := []harness.Candidate{
		{Name: "map-lookup", Fn: func() {
			for i := 0; i < rows; i++ {
				mapOut[i] = cols[target][i]
			}
		}},
		{Name: "hoisted-slice", Fn: func() {
			col := cols[target]
			for i := 0; i < rows; i++ {
				hoistedOut[i] = col[i]
			}
		}},
		{Name: "mat-colview", Fn: func() {
			cv := dense.ColView(targetIdx)
			for i := 0; i < rows; i++ {
				colviewOut[i] = cv.AtVec(i)
			}
		}},
		{Name: "mat-col", Fn: func() {
			mat.Col(matcolOut, targetIdx, dense)
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		for _, got := range []struct {
			name string
			vec  []float64
		}{
			{"hoisted-slice", hoistedOut},
			{"mat-colview", colviewOut},
			{"mat-col", matcolOut},
		} {
			if !floats.Equal(mapOut, got.vec) {
				return fmt.Errorf("frame: %s column differs from map-lookup", got.name)
			}
		}
		return nil
	}

	return Cell{
		Name:       "frame",
		Detail:     fmt.Sprintf("extract column %q from a %dx%d table", target, rows, ncols),
		Candidates: cands,
		Check:      check,
	}
}
