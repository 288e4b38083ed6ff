package cells

import (
	"fmt"
	"math"

	"numbench/harness"
)

// affine is the per-element transform used by every call variant: 2v+1.
func affine(v float64) float64 { return 2*v + 1 }

type transformer interface {
	apply(float64) float64
}

type affineTransformer struct{ a, b float64 }

func (t affineTransformer) apply(v float64) float64 { return t.a*v + t.b }

// CallsCell compares the cost of the same reduction written with an inline
// loop body, a named function, a closure, and an interface method call.
// All four accumulate the identical sum.
func CallsCell(n int) Cell {
	x := randVec(n, 0, 1)

	closure := func(v float64) float64 { return 2*v + 1 }
	var iface transformer = affineTransformer{a: 2, b: 1}

	// One result slot per candidate; Check compares them after a fresh run.
	var inlineSum, namedSum, closureSum, ifaceSum float64

	cands := []harness.Candidate{
		{Name: "inline", Fn: func() {
			s := 0.0
			for _, v := range x {
				s += 2*v + 1
			}
			inlineSum = s
		}},
		{Name: "named-func", Fn: func() {
			s := 0.0
			for _, v := range x {
				s += affine(v)
			}
			namedSum = s
		}},
		{Name: "closure", Fn: func() {
			s := 0.0
			for _, v := range x {
				s += closure(v)
			}
			closureSum = s
		}},
		{Name: "interface", Fn: func() {
			s := 0.0
			for _, v := range x {
				s += iface.apply(v)
			}
			ifaceSum = s
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		for _, got := range []struct {
			name string
			sum  float64
		}{
			{"named-func", namedSum},
			{"closure", closureSum},
			{"interface", ifaceSum},
		} {
			if math.Abs(got.sum-inlineSum) > 1e-9 {
				return fmt.Errorf("calls: %s sum %v differs from inline %v", got.name, got.sum, inlineSum)
			}
		}
		return nil
	}

	return Cell{
		Name:       "calls",
		Detail:     fmt.Sprintf("reduction over %d values, four call forms", n),
		Candidates: cands,
		Check:      check,
	}
}
