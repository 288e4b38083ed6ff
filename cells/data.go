package cells

import "gonum.org/v1/gonum/stat/distuv"

// randVec draws n example values from U(min,max). Cells use this for their
// local inputs; determinism across runs is not needed, only that every
// candidate inside one cell sees the same vector.
func randVec(n int, min, max float64) []float64 {
	u := distuv.Uniform{Min: min, Max: max}
	v := make([]float64, n)
	for i := range v {
		v[i] = u.Rand()
	}
	return v
}
