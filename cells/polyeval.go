package cells

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"numbench/harness"
)

// polyCoeffs are the example polynomial's coefficients, lowest degree first.
var polyCoeffs = []float64{0.5, -1.25, 2.0, 0.75, -0.5, 1.5, -0.25, 0.125}

// PolyEvalCell compares three strategies for evaluating a fixed degree-7
// polynomial over a vector: naive power expansion via math.Pow, Horner's
// rule, and an iteratively updated running power. cmd/sweep reuses this
// constructor across input sizes.
func PolyEvalCell(n int) Cell {
	x := randVec(n, -1, 1)

	naiveOut := make([]float64, n)
	hornerOut := make([]float64, n)
	powersOut := make([]float64, n)

	cands := []harness.Candidate{
		{Name: "naive-pow", Fn: func() {
			for i, v := range x {
				s := 0.0
				for k, c := range polyCoeffs {
					s += c * math.Pow(v, float64(k))
				}
				naiveOut[i] = s
			}
		}},
		{Name: "horner", Fn: func() {
			for i, v := range x {
				s := polyCoeffs[len(polyCoeffs)-1]
				for k := len(polyCoeffs) - 2; k >= 0; k-- {
					s = s*v + polyCoeffs[k]
				}
				hornerOut[i] = s
			}
		}},
		{Name: "running-power", Fn: func() {
			for i, v := range x {
				s := 0.0
				p := 1.0
				for _, c := range polyCoeffs {
					s += c * p
					p *= v
				}
				powersOut[i] = s
			}
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		if !floats.EqualApprox(naiveOut, hornerOut, 1e-9) {
			return fmt.Errorf("polyeval: naive-pow and horner disagree")
		}
		if !floats.EqualApprox(naiveOut, powersOut, 1e-9) {
			return fmt.Errorf("polyeval: naive-pow and running-power disagree")
		}
		return nil
	}

	return Cell{
		Name:       "polyeval",
		Detail:     fmt.Sprintf("degree-%d polynomial over %d values", len(polyCoeffs)-1, n),
		Candidates: cands,
		Check:      check,
	}
}
