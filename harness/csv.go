package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the column layout used by WriteCSV.
var CSVHeader = []string{"cell", "candidate", "run", "elapsed_us", "allocs", "bytes"}

// WriteCSV appends one row per sample: cell, candidate, run index, elapsed
// micro-seconds, allocation count, allocated bytes. Callers that want a header
// write CSVHeader themselves; this keeps multi-cell appends to one file clean.
func WriteCSV(w io.Writer, cell string, ms []Measurement) error {
	cw := csv.NewWriter(w)
	for _, m := range ms {
		for run, s := range m.Samples {
			rec := []string{
				cell,
				m.Name,
				strconv.Itoa(run + 1),
				fmt.Sprintf("%.3f", DurationUS(s.Elapsed)),
				strconv.FormatUint(s.Allocs, 10),
				strconv.FormatUint(s.Bytes, 10),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
