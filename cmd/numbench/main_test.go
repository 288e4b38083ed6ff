package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"numbench/cells"
	"numbench/harness"
)

func TestPrintCheckStatusRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	oldV, oldW := harness.Verbose, harness.Output
	defer func() { harness.Verbose, harness.Output = oldV, oldW }()
	harness.Output = &buf

	cell, err := cells.ByName("seq")
	require.NoError(t, err)

	harness.Verbose = false
	printCheckStatus(cell)
	require.Zero(t, buf.Len())

	harness.Verbose = true
	printCheckStatus(cell)
	require.Contains(t, buf.String(), "cell seq")
	require.Contains(t, buf.String(), "ok")
}

func TestParseCellListDefault(t *testing.T) {
	all, err := parseCellList("")
	require.NoError(t, err)
	require.Len(t, all, 7)
}

func TestParseCellList(t *testing.T) {
	got, err := parseCellList(" seq , polyeval ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "seq", got[0].Name)
	require.Equal(t, "polyeval", got[1].Name)
}

func TestParseCellListUnknown(t *testing.T) {
	_, err := parseCellList("seq,bogus")
	require.Error(t, err)
}
