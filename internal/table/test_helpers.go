package table

import (
	"tablecast/internal/cell"
)

// testStyles backs the style table with a plain xf -> numFmt map for tests.
// XF 0 is the general format, XF 1 a built-in date format.
type testStyles map[int]int

func (m testStyles) NumFmt(xf int) int { return m[xf] }

func defaultTestStyles() testStyles {
	return testStyles{0: 0, 1: 14}
}

func numCell(row, col int, v float64) cell.RawCell {
	return cell.RawCell{Row: row, Col: col, Kind: cell.KindNumber, Number: v}
}

func dateCell(row, col int, serial float64) cell.RawCell {
	return cell.RawCell{Row: row, Col: col, Kind: cell.KindNumber, Number: serial, XF: 1}
}

func textCell(row, col int, s string) cell.RawCell {
	return cell.RawCell{Row: row, Col: col, Kind: cell.KindLabelSST, Text: s}
}

func blankCell(row, col int) cell.RawCell {
	return cell.RawCell{Row: row, Col: col, Kind: cell.KindBlank}
}

func testSheet(nrows, ncols int, cells ...cell.RawCell) RawSheet {
	return RawSheet{
		NRows:  nrows,
		NCols:  ncols,
		Cells:  cells,
		Styles: defaultTestStyles(),
	}
}
