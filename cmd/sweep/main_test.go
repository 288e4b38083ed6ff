package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"numbench/harness"
)

func TestWriteSweepCSV(t *testing.T) {
	points := []sweepPoint{
		{candidate: "horner", size: 256, medianUS: 1.5},
		{candidate: "naive-pow", size: 256, medianUS: 4.25},
	}

	var buf bytes.Buffer
	require.NoError(t, writeSweepCSV(&buf, points, "polyeval"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "cell,candidate,size,median_us", lines[0])
	require.Equal(t, "polyeval,horner,256,1.500", lines[1])
	require.Equal(t, "polyeval,naive-pow,256,4.250", lines[2])
}

func TestParseSizes(t *testing.T) {
	got, err := parseSizes("256, 1024,4096")
	require.NoError(t, err)
	require.Equal(t, []int{256, 1024, 4096}, got)
}

func TestParseSizesRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "abc", "0", "-4", "10,x"} {
		if _, err := parseSizes(bad); err == nil {
			t.Fatalf("parseSizes(%q) should fail", bad)
		}
	}
}

func TestRunSweepProducesPointPerCandidatePerSize(t *testing.T) {
	build := sizedCells["seq"]
	points, err := runSweep(build, []int{64, 128}, harness.Options{Warmup: 1, Iterations: 3})
	require.NoError(t, err)
	// seq has three candidates, two sizes.
	require.Len(t, points, 6)
	for _, pt := range points {
		require.NotEmpty(t, pt.candidate)
		require.Contains(t, []int{64, 128}, pt.size)
	}
}
