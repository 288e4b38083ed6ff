// Command numbench renders the benchmark document: it runs the selected
// cells top-to-bottom, verifies that each cell's candidates produce
// equivalent results, measures them, and prints one comparison table per
// cell. Samples can optionally be appended to a CSV file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"numbench/cells"
	"numbench/harness"
)

// printCheckStatus reports one cell's equivalence result, honoring the same
// Verbose gate as the comparison tables.
func printCheckStatus(c cells.Cell) {
	if !harness.Verbose {
		return
	}
	fmt.Fprintf(harness.Output, "cell %-10s ok (%s)\n", c.Name, c.Detail)
}

// parseCellList resolves a comma-separated list of cell names, or all cells
// in document order when the list is empty.
func parseCellList(s string) ([]cells.Cell, error) {
	if strings.TrimSpace(s) == "" {
		return cells.All(), nil
	}
	var out []cells.Cell
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		c, err := cells.ByName(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func run() error {
	var cellsCSV string
	var iters int
	var warmup int
	var outPath string
	var checkOnly bool
	var quiet bool

	flag.StringVar(&cellsCSV, "cells", "", "Comma-separated list of cells to run (default: all, in document order)")
	flag.IntVar(&iters, "iters", 100, "Measured iterations per candidate")
	flag.IntVar(&warmup, "warmup", 5, "Warmup runs per candidate before timing")
	flag.StringVar(&outPath, "out", "", "Optional CSV path for raw per-run samples")
	flag.BoolVar(&checkOnly, "check-only", false, "Verify candidate equivalence without measuring")
	flag.BoolVar(&quiet, "quiet", false, "Suppress comparison tables")
	flag.Parse()

	selected, err := parseCellList(cellsCSV)
	if err != nil {
		return err
	}

	harness.Verbose = !quiet

	var csvFile *os.File
	if outPath != "" {
		csvFile, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer csvFile.Close()
		fmt.Fprintln(csvFile, strings.Join(harness.CSVHeader, ","))
	}

	opts := harness.Options{Warmup: warmup, Iterations: iters}
	for _, cell := range selected {
		// An equivalence failure stops rendering: the document is wrong and
		// its timings would be meaningless.
		if err := cell.Check(); err != nil {
			return fmt.Errorf("cell %s failed equivalence check: %w", cell.Name, err)
		}
		if checkOnly {
			printCheckStatus(cell)
			continue
		}

		ms := harness.MeasureAll(cell.Candidates, opts)
		harness.Report(fmt.Sprintf("%s: %s", cell.Name, cell.Detail), harness.SummarizeAll(ms))

		if csvFile != nil {
			if err := harness.WriteCSV(csvFile, cell.Name, ms); err != nil {
				return err
			}
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "numbench:", err)
		os.Exit(1)
	}
}
