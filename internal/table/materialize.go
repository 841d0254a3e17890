package table

import (
	"math"
	"time"

	"tablecast/internal/cell"
	"tablecast/internal/xldate"
)

// materializeColumn allocates one typed output column sized to the full row
// count, pre-filled with missing values, and fills it cell by cell.
//
// A cell whose natural classification is at most the resolved type converts
// and stores; blanks always stay missing. A cell wider than the resolved
// type is dropped to missing with a coercion warning: the resolved type
// always wins, data that cannot fit is never silently misparsed. List
// columns classify every cell independently and never warn. Skip and blank
// columns carry no payload.
func materializeColumn(typ cell.ColType, cells []cell.RawCell, nrows int, cl *cell.Classifier, date1904 bool) Column {
	col := Column{Type: typ, Len: nrows}

	switch typ {
	case cell.ColSkip, cell.ColBlank:
		return col
	case cell.ColNumeric:
		col.Numbers = make([]float64, nrows)
		for i := range col.Numbers {
			col.Numbers[i] = math.NaN()
		}
	case cell.ColDate:
		col.Times = make([]*time.Time, nrows)
	case cell.ColText:
		col.Strings = make([]*string, nrows)
	case cell.ColList:
		col.Values = make([]Value, nrows)
	}

	for _, rc := range cells {
		if rc.Row < 0 || rc.Row >= nrows {
			continue
		}
		ct := cl.Classify(rc)

		if typ == cell.ColList {
			col.Values[rc.Row] = singleton(ct, rc, date1904)
			continue
		}
		if ct == cell.CellBlank {
			continue
		}
		if ct > expectedCellType(typ) {
			cl.Warn.Addf("expecting %s in [%d, %d]: got %s",
				typ, rc.Row, rc.Col, describeCell(ct, rc))
			continue
		}

		switch typ {
		case cell.ColDate:
			t := xldate.AsTime(rc.Number, date1904)
			col.Times[rc.Row] = &t
		case cell.ColNumeric:
			col.Numbers[rc.Row] = rc.Number
		case cell.ColText:
			s := renderAsText(ct, rc, date1904)
			col.Strings[rc.Row] = &s
		}
	}

	return col
}

// expectedCellType gives the widest cell type a resolved column accepts.
func expectedCellType(typ cell.ColType) cell.CellType {
	switch typ {
	case cell.ColDate:
		return cell.CellDate
	case cell.ColNumeric:
		return cell.CellNumeric
	case cell.ColText:
		return cell.CellText
	}
	return cell.CellBlank
}

// singleton wraps one classified cell as an independently-typed list entry.
func singleton(ct cell.CellType, rc cell.RawCell, date1904 bool) Value {
	switch ct {
	case cell.CellDate:
		return Value{Kind: cell.CellDate, Time: xldate.AsTime(rc.Number, date1904)}
	case cell.CellNumeric:
		return Value{Kind: cell.CellNumeric, Number: rc.Number}
	case cell.CellText:
		return Value{Kind: cell.CellText, Text: rc.Text}
	}
	return Value{Kind: cell.CellBlank}
}

// renderAsText converts a narrower cell for storage in a text column.
func renderAsText(ct cell.CellType, rc cell.RawCell, date1904 bool) string {
	switch ct {
	case cell.CellDate:
		return xldate.AsTime(rc.Number, date1904).Format(time.RFC3339)
	case cell.CellNumeric:
		return cell.FormatNumber(rc.Number)
	}
	return rc.Text
}

func describeCell(ct cell.CellType, rc cell.RawCell) string {
	switch ct {
	case cell.CellText:
		return "'" + rc.Text + "'"
	case cell.CellNumeric:
		return cell.FormatNumber(rc.Number)
	}
	return "a " + ct.String()
}
