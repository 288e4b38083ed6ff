package cells

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"numbench/harness"
)

// ArithCell compares three ways of evaluating the elementwise quadratic
// a*x^2 + b*x + c over a vector: math.Pow, factored multiplication, and
// fused gonum vector ops. All three compute the same values.
func ArithCell(n int) Cell {
	const a, b, c = 2.0, -3.0, 0.5
	x := randVec(n, -1, 1)

	powOut := make([]float64, n)
	factoredOut := make([]float64, n)
	floatsOut := make([]float64, n)

	cands := []harness.Candidate{
		{Name: "pow", Fn: func() {
			for i, v := range x {
				powOut[i] = a*math.Pow(v, 2) + b*v + c
			}
		}},
		{Name: "factored", Fn: func() {
			for i, v := range x {
				factoredOut[i] = v*(a*v+b) + c
			}
		}},
		{Name: "floats-fused", Fn: func() {
			floats.MulTo(floatsOut, x, x)
			floats.Scale(a, floatsOut)
			floats.AddScaled(floatsOut, b, x)
			floats.AddConst(c, floatsOut)
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		if !floats.EqualApprox(powOut, factoredOut, 1e-9) {
			return fmt.Errorf("arith: pow and factored disagree")
		}
		if !floats.EqualApprox(powOut, floatsOut, 1e-9) {
			return fmt.Errorf("arith: pow and floats-fused disagree")
		}
		return nil
	}

	return Cell{
		Name:       "arith",
		Detail:     fmt.Sprintf("elementwise quadratic over %d values", n),
		Candidates: cands,
		Check:      check,
	}
}
