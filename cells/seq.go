package cells

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"numbench/harness"
)

// SeqCell compares three ways of constructing the evenly spaced sequence
// 0, h, 2h, ..., (n-1)h: append growth from a nil slice, a preallocated
// index write, and floats.Span. All three yield the identical sequence.
func SeqCell(n int) Cell {
	const h = 0.25
	upper := float64(n-1) * h

	var appendOut, preallocOut, spanOut []float64

	cands := []harness.Candidate{
		{Name: "append-grow", Fn: func() {
			var s []float64
			for i := 0; i < n; i++ {
				s = append(s, float64(i)*h)
			}
			appendOut = s
		}},
		{Name: "prealloc", Fn: func() {
			s := make([]float64, n)
			for i := range s {
				s[i] = float64(i) * h
			}
			preallocOut = s
		}},
		{Name: "floats-span", Fn: func() {
			s := make([]float64, n)
			floats.Span(s, 0, upper)
			spanOut = s
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		if !floats.Equal(appendOut, preallocOut) {
			return fmt.Errorf("seq: append-grow and prealloc disagree")
		}
		// Span divides the interval rather than multiplying the step, so the
		// interior points may differ in the last ulp.
		if !floats.EqualApprox(appendOut, spanOut, 1e-12) {
			return fmt.Errorf("seq: append-grow and floats-span disagree")
		}
		return nil
	}

	return Cell{
		Name:       "seq",
		Detail:     fmt.Sprintf("construct %d-element arithmetic sequence", n),
		Candidates: cands,
		Check:      check,
	}
}
