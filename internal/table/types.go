package table

import (
	"time"

	"tablecast/internal/cell"
)

// RawSheet is the position-addressed cell stream a container source hands
// to the engine, together with the workbook-level lookups the classifier
// needs. Cells are ordered row-major; absent cells are blank.
type RawSheet struct {
	NRows, NCols int
	Cells        []cell.RawCell
	Styles       cell.StyleTable
	Custom       cell.CustomDateFormats
	Date1904     bool
}

// ResolvedColumn pairs a column name with its resolved output type.
// Produced by the resolver, consumed once by the materializer.
type ResolvedColumn struct {
	Name string
	Type cell.ColType
}

// Value is one independently-typed entry of a list column.
// Kind CellBlank marks a missing entry.
type Value struct {
	Kind   cell.CellType
	Number float64
	Time   time.Time
	Text   string
}

// Column is one materialized output column. The payload slice selected by
// Type is populated; blank columns carry only their length, every row
// counting as missing.
type Column struct {
	Name    string
	Type    cell.ColType
	Len     int
	Numbers []float64    // ColNumeric; NaN marks missing
	Times   []*time.Time // ColDate; nil marks missing
	Strings []*string    // ColText; nil marks missing
	Values  []Value      // ColList
}

// Render returns the string form of one cell and whether it is present.
// Dates render as RFC 3339 UTC, numerics in shortest round-trip form.
func (c *Column) Render(i int) (string, bool) {
	switch c.Type {
	case cell.ColNumeric:
		v := c.Numbers[i]
		if v != v { // NaN
			return "", false
		}
		return cell.FormatNumber(v), true
	case cell.ColDate:
		t := c.Times[i]
		if t == nil {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	case cell.ColText:
		s := c.Strings[i]
		if s == nil {
			return "", false
		}
		return *s, true
	case cell.ColList:
		return c.Values[i].Render()
	}
	return "", false
}

// Render returns the string form of a list entry and whether it is present.
func (v Value) Render() (string, bool) {
	switch v.Kind {
	case cell.CellNumeric:
		return cell.FormatNumber(v.Number), true
	case cell.CellDate:
		return v.Time.UTC().Format(time.RFC3339), true
	case cell.CellText:
		return v.Text, true
	}
	return "", false
}

// Table is the assembled output plus the diagnostics accumulated while
// producing it.
type Table struct {
	Columns  []Column
	NRows    int
	Warnings []string
}

// splitColumns regroups the row-major cell stream into per-column slices,
// preserving row order within each column. Cells outside the declared
// extents are dropped.
func splitColumns(s RawSheet) [][]cell.RawCell {
	cols := make([][]cell.RawCell, s.NCols)
	for _, rc := range s.Cells {
		if rc.Col < 0 || rc.Col >= s.NCols || rc.Row < 0 || rc.Row >= s.NRows {
			continue
		}
		cols[rc.Col] = append(cols[rc.Col], rc)
	}
	return cols
}

// renderHeader gives the textual form of a header cell for name derivation.
func renderHeader(rc cell.RawCell) string {
	switch rc.Kind {
	case cell.KindLabelSST, cell.KindLabel:
		return rc.Text
	case cell.KindFormula, cell.KindFormulaAlt:
		if rc.HasText {
			return rc.Text
		}
		return cell.FormatNumber(rc.Number)
	case cell.KindMulRk, cell.KindNumber, cell.KindRk:
		return cell.FormatNumber(rc.Number)
	}
	return ""
}
