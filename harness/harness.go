// Package harness measures and compares the execution cost of alternative
// implementations of the same computation. Each candidate is a zero-argument
// closure; the harness runs it repeatedly, records per-invocation wall-clock
// time and allocation counts, and summarizes the distribution.
package harness

import (
	"runtime"
	"time"
)

// Candidate is one alternative implementation being timed against the others.
type Candidate struct {
	Name string
	Fn   func()
}

// Options controls a measurement run. Zero values fall back to the defaults.
type Options struct {
	Warmup     int // runs executed and discarded before timing
	Iterations int // measured runs per candidate
}

const (
	defaultWarmup     = 5
	defaultIterations = 100
)

func (o Options) withDefaults() Options {
	if o.Warmup <= 0 {
		o.Warmup = defaultWarmup
	}
	if o.Iterations <= 0 {
		o.Iterations = defaultIterations
	}
	return o
}

// Sample records a single invocation of a candidate.
type Sample struct {
	Elapsed time.Duration
	Allocs  uint64 // heap objects allocated during the invocation
	Bytes   uint64 // heap bytes allocated during the invocation
}

// Measurement holds all samples collected for one candidate.
type Measurement struct {
	Name    string
	Samples []Sample
}

// Measure runs c.Fn opts.Warmup times without recording, then opts.Iterations
// times with per-invocation timing and allocation deltas. Allocation counts
// come from runtime.MemStats snapshots around each call; GC activity between
// the snapshots is tolerated, not controlled.
func Measure(c Candidate, opts Options) Measurement {
	opts = opts.withDefaults()

	for i := 0; i < opts.Warmup; i++ {
		c.Fn()
	}

	m := Measurement{
		Name:    c.Name,
		Samples: make([]Sample, 0, opts.Iterations),
	}
	var before, after runtime.MemStats
	for i := 0; i < opts.Iterations; i++ {
		runtime.ReadMemStats(&before)
		start := time.Now()
		c.Fn()
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)
		m.Samples = append(m.Samples, Sample{
			Elapsed: elapsed,
			Allocs:  after.Mallocs - before.Mallocs,
			Bytes:   after.TotalAlloc - before.TotalAlloc,
		})
	}
	return m
}

// MeasureAll measures every candidate in order and returns one Measurement per
// candidate. The candidate slice is not mutated.
func MeasureAll(cands []Candidate, opts Options) []Measurement {
	out := make([]Measurement, 0, len(cands))
	for _, c := range cands {
		out = append(out, Measure(c, opts))
	}
	return out
}
