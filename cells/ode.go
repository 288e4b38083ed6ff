package cells

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"numbench/harness"
)

// Lotka-Volterra parameters and integration grid for the ODE cell.
const (
	lvAlpha = 1.1
	lvBeta  = 0.4
	lvDelta = 0.1
	lvGamma = 0.4

	odeDT    = 0.01
	odeSteps = 200
)

// lvDerivAlloc returns a freshly allocated derivative vector per call.
func lvDerivAlloc(s []float64) []float64 {
	d := make([]float64, 2)
	d[0] = lvAlpha*s[0] - lvBeta*s[0]*s[1]
	d[1] = lvDelta*s[0]*s[1] - lvGamma*s[1]
	return d
}

// lvDerivInPlace writes the derivative into dst.
func lvDerivInPlace(dst, s []float64) {
	dst[0] = lvAlpha*s[0] - lvBeta*s[0]*s[1]
	dst[1] = lvDelta*s[0]*s[1] - lvGamma*s[1]
}

// rk4Alloc integrates with a fixed-step RK4 loop, allocating every
// intermediate vector the way the naive formulation would.
func rk4Alloc(s0 []float64) []float64 {
	s := append([]float64(nil), s0...)
	for step := 0; step < odeSteps; step++ {
		k1 := lvDerivAlloc(s)
		k2 := lvDerivAlloc(shifted(s, k1, odeDT/2))
		k3 := lvDerivAlloc(shifted(s, k2, odeDT/2))
		k4 := lvDerivAlloc(shifted(s, k3, odeDT))
		next := make([]float64, len(s))
		for i := range s {
			next[i] = s[i] + (odeDT/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
		}
		s = next
	}
	return s
}

func shifted(s, k []float64, h float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i] + h*k[i]
	}
	return out
}

// rk4InPlace runs the identical arithmetic on preallocated buffers.
func rk4InPlace(s0 []float64, k1, k2, k3, k4, tmp, s []float64) []float64 {
	copy(s, s0)
	for step := 0; step < odeSteps; step++ {
		lvDerivInPlace(k1, s)
		for i := range s {
			tmp[i] = s[i] + (odeDT/2)*k1[i]
		}
		lvDerivInPlace(k2, tmp)
		for i := range s {
			tmp[i] = s[i] + (odeDT/2)*k2[i]
		}
		lvDerivInPlace(k3, tmp)
		for i := range s {
			tmp[i] = s[i] + odeDT*k3[i]
		}
		lvDerivInPlace(k4, tmp)
		for i := range s {
			s[i] = s[i] + (odeDT/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
		}
	}
	return s
}

// ODECell compares an allocating and an in-place formulation of the
// Lotka-Volterra right-hand side, each driven through the same cell-local
// fixed-step RK4 loop. The driver is scaffolding: the comparison is between
// the two equivalent derivative formulations, and both produce the identical
// trajectory.
func ODECell() Cell {
	s0 := []float64{10, 5}

	var allocFinal []float64
	inPlaceFinal := make([]float64, 2)
	k1 := make([]float64, 2)
	k2 := make([]float64, 2)
	k3 := make([]float64, 2)
	k4 := make([]float64, 2)
	tmp := make([]float64, 2)

	cands := []harness.Candidate{
		{Name: "allocating-rhs", Fn: func() {
			allocFinal = rk4Alloc(s0)
		}},
		{Name: "inplace-rhs", Fn: func() {
			rk4InPlace(s0, k1, k2, k3, k4, tmp, inPlaceFinal)
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		if !floats.Equal(allocFinal, inPlaceFinal) {
			return fmt.Errorf("ode: trajectories diverge: %v vs %v", allocFinal, inPlaceFinal)
		}
		return nil
	}

	return Cell{
		Name:       "ode",
		Detail:     fmt.Sprintf("Lotka-Volterra RHS, %d RK4 steps of dt=%g", odeSteps, odeDT),
		Candidates: cands,
		Check:      check,
	}
}
