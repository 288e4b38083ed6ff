// Command sweep runs one sized benchmark cell across a range of input sizes
// and renders a median-time-versus-size line chart, one line per candidate.
// The sweep points can also be written to CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"numbench/cells"
	"numbench/harness"
)

// sizedCells are the cells whose input size can be swept.
var sizedCells = map[string]func(n int) cells.Cell{
	"arith":    cells.ArithCell,
	"calls":    cells.CallsCell,
	"seq":      cells.SeqCell,
	"polyeval": cells.PolyEvalCell,
	"frame":    func(n int) cells.Cell { return cells.FrameCell(n, 8) },
}

// parseSizes parses a comma-separated list of positive integers
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("size must be positive, got %d", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}

// sweepPoint is one (candidate, size) median.
type sweepPoint struct {
	candidate string
	size      int
	medianUS  float64
}

func runSweep(build func(int) cells.Cell, sizes []int, opts harness.Options) ([]sweepPoint, error) {
	var points []sweepPoint
	for _, n := range sizes {
		cell := build(n)
		if err := cell.Check(); err != nil {
			return nil, fmt.Errorf("size %d: %w", n, err)
		}
		for _, sum := range harness.SummarizeAll(harness.MeasureAll(cell.Candidates, opts)) {
			points = append(points, sweepPoint{
				candidate: sum.Name,
				size:      n,
				medianUS:  harness.DurationUS(sum.Median),
			})
		}
	}
	return points, nil
}

func savePlot(points []sweepPoint, cellName, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: median time vs input size", cellName)
	p.X.Label.Text = "input size"
	p.Y.Label.Text = "median time (µs)"

	// Group points into one line per candidate, preserving first-seen order.
	var order []string
	lines := make(map[string]plotter.XYs)
	for _, pt := range points {
		if _, ok := lines[pt.candidate]; !ok {
			order = append(order, pt.candidate)
		}
		lines[pt.candidate] = append(lines[pt.candidate], plotter.XY{
			X: float64(pt.size),
			Y: pt.medianUS,
		})
	}

	args := make([]interface{}, 0, 2*len(order))
	for _, name := range order {
		args = append(args, name, lines[name])
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("add lines: %w", err)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func writeSweepCSV(w io.Writer, points []sweepPoint, cellName string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"cell", "candidate", "size", "median_us"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, pt := range points {
		rec := []string{
			cellName,
			pt.candidate,
			strconv.Itoa(pt.size),
			fmt.Sprintf("%.3f", pt.medianUS),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func saveCSV(points []sweepPoint, cellName, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeSweepCSV(f, points, cellName)
}

func run() error {
	var cellName string
	var sizesCSV string
	var iters int
	var warmup int
	var pngPath string
	var outPath string

	flag.StringVar(&cellName, "cell", "polyeval", "Sized cell to sweep (arith, calls, seq, polyeval, frame)")
	flag.StringVar(&sizesCSV, "sizes", "256,1024,4096,16384,65536", "Comma-separated input sizes")
	flag.IntVar(&iters, "iters", 50, "Measured iterations per (candidate, size)")
	flag.IntVar(&warmup, "warmup", 5, "Warmup runs per (candidate, size)")
	flag.StringVar(&pngPath, "png", "sweep.png", "Output chart path")
	flag.StringVar(&outPath, "out", "", "Optional CSV path for sweep points")
	flag.Parse()

	build, ok := sizedCells[cellName]
	if !ok {
		return fmt.Errorf("cell %q has no sized variant", cellName)
	}
	sizes, err := parseSizes(sizesCSV)
	if err != nil {
		return err
	}

	points, err := runSweep(build, sizes, harness.Options{Warmup: warmup, Iterations: iters})
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := saveCSV(points, cellName, outPath); err != nil {
			return err
		}
	}
	if err := savePlot(points, cellName, pngPath); err != nil {
		return err
	}
	fmt.Fprintf(harness.Output, "wrote %s (%d points)\n", pngPath, len(points))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sweep:", err)
		os.Exit(1)
	}
}
