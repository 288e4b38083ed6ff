package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func samplesOf(durs ...time.Duration) Measurement {
	m := Measurement{Name: "synthetic"}
	for _, d := range durs {
		m.Samples = append(m.Samples, Sample{Elapsed: d, Allocs: 2, Bytes: 64})
	}
	return m
}

func TestSummarize(t *testing.T) {
	m := samplesOf(30*time.Microsecond, 10*time.Microsecond, 20*time.Microsecond)
	s := Summarize(m)

	require.Equal(t, "synthetic", s.Name)
	require.Equal(t, 3, s.N)
	require.Equal(t, 10*time.Microsecond, s.Min)
	require.Equal(t, 30*time.Microsecond, s.Max)
	require.Equal(t, 20*time.Microsecond, s.Median)
	require.Equal(t, 20*time.Microsecond, s.Mean)
	require.InDelta(t, 2.0, s.AllocsPerOp, 1e-9)
	require.InDelta(t, 64.0, s.BytesPerOp, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(Measurement{Name: "empty"})
	require.Equal(t, 0, s.N)
	require.Equal(t, time.Duration(0), s.Median)
	require.Equal(t, time.Duration(0), s.Min)
	require.Equal(t, time.Duration(0), s.Max)
}

func TestSummarizeUnsortedInput(t *testing.T) {
	// Median must not depend on sample order.
	a := Summarize(samplesOf(5*time.Millisecond, 1*time.Millisecond, 3*time.Millisecond))
	b := Summarize(samplesOf(1*time.Millisecond, 3*time.Millisecond, 5*time.Millisecond))
	require.Equal(t, a.Median, b.Median)
	require.Equal(t, 3*time.Millisecond, a.Median)
}

func TestSummarizeAll(t *testing.T) {
	ms := []Measurement{
		samplesOf(1 * time.Microsecond),
		samplesOf(2 * time.Microsecond),
	}
	sums := SummarizeAll(ms)
	require.Len(t, sums, 2)
	require.Equal(t, 1*time.Microsecond, sums[0].Median)
	require.Equal(t, 2*time.Microsecond, sums[1].Median)
}

func TestDurationUS(t *testing.T) {
	d := 1234*time.Microsecond + 567*time.Nanosecond
	got := DurationUS(d)
	if got < 1234.566 || got > 1234.568 {
		t.Fatalf("want 1234.567µs, got %.3f", got)
	}
}
