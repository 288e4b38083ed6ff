package harness

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the timing distribution of one candidate.
type Summary struct {
	Name        string
	N           int
	Median      time.Duration
	Min         time.Duration
	Max         time.Duration
	Mean        time.Duration
	AllocsPerOp float64
	BytesPerOp  float64
}

// Summarize reduces a Measurement to its distribution summary. An empty
// measurement yields a zero Summary with N=0.
func Summarize(m Measurement) Summary {
	s := Summary{Name: m.Name, N: len(m.Samples)}
	if len(m.Samples) == 0 {
		return s
	}

	times := make([]float64, len(m.Samples))
	var totalNS, totalAllocs, totalBytes float64
	s.Min = m.Samples[0].Elapsed
	s.Max = m.Samples[0].Elapsed
	for i, sm := range m.Samples {
		ns := float64(sm.Elapsed.Nanoseconds())
		times[i] = ns
		totalNS += ns
		totalAllocs += float64(sm.Allocs)
		totalBytes += float64(sm.Bytes)
		if sm.Elapsed < s.Min {
			s.Min = sm.Elapsed
		}
		if sm.Elapsed > s.Max {
			s.Max = sm.Elapsed
		}
	}
	sort.Float64s(times)

	n := float64(len(m.Samples))
	s.Median = time.Duration(stat.Quantile(0.5, stat.Empirical, times, nil))
	s.Mean = time.Duration(totalNS / n)
	s.AllocsPerOp = totalAllocs / n
	s.BytesPerOp = totalBytes / n
	return s
}

// SummarizeAll summarizes each measurement, preserving order.
func SummarizeAll(ms []Measurement) []Summary {
	out := make([]Summary, 0, len(ms))
	for _, m := range ms {
		out = append(out, Summarize(m))
	}
	return out
}
