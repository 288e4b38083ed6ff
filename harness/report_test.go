package harness

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintComparison(t *testing.T) {
	sums := []Summary{
		{Name: "horner", N: 10, Median: 10 * time.Microsecond, Min: 9 * time.Microsecond, Max: 12 * time.Microsecond, Mean: 10 * time.Microsecond},
		{Name: "naive", N: 10, Median: 25 * time.Microsecond, Min: 20 * time.Microsecond, Max: 30 * time.Microsecond, Mean: 25 * time.Microsecond, AllocsPerOp: 1},
	}

	var buf bytes.Buffer
	PrintComparison(&buf, "polyeval", sums)
	out := buf.String()

	assert.Contains(t, out, "[polyeval]")
	assert.Contains(t, out, "horner")
	assert.Contains(t, out, "naive")
	// Fastest median is the 1.00x baseline; the other is relative to it.
	assert.Contains(t, out, "1.00x")
	assert.Contains(t, out, "2.50x")
}

func TestPrintComparisonAllZeroMedians(t *testing.T) {
	// Sub-nanosecond candidates all round to a 0 median; such rows are equal
	// and every one is the 1.00x baseline.
	sums := []Summary{
		{Name: "a", N: 10},
		{Name: "b", N: 10},
	}

	var buf bytes.Buffer
	PrintComparison(&buf, "zeros", sums)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for _, line := range lines[2:] {
		assert.Contains(t, line, "1.00x")
	}
}

func TestPrintComparisonEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	PrintComparison(&buf, "empty", []Summary{{Name: "nothing", N: 0}})
	assert.Contains(t, buf.String(), "-")
}

func TestReportRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	oldV, oldW := Verbose, Output
	defer func() { Verbose, Output = oldV, oldW }()
	Output = &buf

	Verbose = false
	Report("quiet", []Summary{{Name: "x", N: 1, Median: time.Microsecond}})
	require.Zero(t, buf.Len())

	Verbose = true
	Report("loud", []Summary{{Name: "x", N: 1, Median: time.Microsecond}})
	require.NotZero(t, buf.Len())
}

func TestWriteCSV(t *testing.T) {
	ms := []Measurement{{
		Name: "inplace",
		Samples: []Sample{
			{Elapsed: 1500 * time.Nanosecond, Allocs: 0, Bytes: 0},
			{Elapsed: 2 * time.Microsecond, Allocs: 3, Bytes: 96},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, "ode", ms))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ode,inplace,1,1.500,0,0", lines[0])
	assert.Equal(t, "ode,inplace,2,2.000,3,96", lines[1])
}
