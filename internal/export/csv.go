package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"tablecast/internal/table"
)

// WriteCSV writes the table with a header row. Missing values become empty
// fields; dates render as RFC 3339 UTC and numerics in shortest
// round-trip decimal form.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for j := range t.Columns {
		header[j] = t.Columns[j].Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for i := 0; i < t.NRows; i++ {
		for j := range t.Columns {
			s, ok := t.Columns[j].Render(i)
			if !ok {
				s = ""
			}
			record[j] = s
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
