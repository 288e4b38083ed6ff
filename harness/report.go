package harness

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether comparison tables are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where comparison tables are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// PrintComparison writes one aligned table row per candidate summary, with a
// trailing ratio column relative to the fastest median. Summaries keep their
// given order; the fastest is marked 1.00x.
func PrintComparison(w io.Writer, title string, sums []Summary) {
	fmt.Fprintf(w, "\n[%s]\n", title)
	fmt.Fprintf(w, "%-30s | %-12s | %-12s | %-12s | %-12s | %10s | %12s | %8s\n",
		"Candidate", "Median", "Min", "Max", "Mean", "Allocs/op", "Bytes/op", "Ratio")

	fastest := time.Duration(0)
	for _, s := range sums {
		if s.N == 0 {
			continue
		}
		if fastest == 0 || s.Median < fastest {
			fastest = s.Median
		}
	}

	for _, s := range sums {
		ratio := "-"
		switch {
		case s.N > 0 && fastest > 0:
			ratio = fmt.Sprintf("%.2fx", float64(s.Median)/float64(fastest))
		case s.N > 0:
			// Every measured median rounded to 0ns: the rows are equal.
			ratio = "1.00x"
		}
		fmt.Fprintf(w, "%-30s | %-12s | %-12s | %-12s | %-12s | %10.1f | %12.1f | %8s\n",
			s.Name, s.Median, s.Min, s.Max, s.Mean, s.AllocsPerOp, s.BytesPerOp, ratio)
	}
}

// Report prints the comparison to the package Output unless Verbose is off.
func Report(title string, sums []Summary) {
	if !Verbose {
		return
	}
	PrintComparison(Output, title, sums)
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
