package excel

import (
	"fmt"
	"strconv"

	"tablecast/internal/cell"
	"tablecast/internal/table"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// boolErrRecord is the legacy record id for boolean/error cells. Error
// cells are mapped onto it so the classifier's unknown-kind path reports
// them and carries on.
const boolErrRecord = cell.RecordKind(517)

// styleTable adapts the workbook's cellXfs table to the classifier's
// number-format lookup.
type styleTable struct {
	f *excelize.File
}

func (s styleTable) NumFmt(xf int) int {
	st := s.f.Styles
	if st == nil || st.CellXfs == nil || xf < 0 || xf >= len(st.CellXfs.Xf) {
		return 0
	}
	id := st.CellXfs.Xf[xf].NumFmtID
	if id == nil {
		return 0
	}
	return *id
}

// Open reads one worksheet of an .xlsx workbook into the engine's input
// model. An empty sheet name selects the first sheet.
func Open(path, sheetName string) (table.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.RawSheet{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return FromFile(f, sheetName)
}

// FromFile converts one worksheet of an already-open workbook.
func FromFile(f *excelize.File, sheetName string) (table.RawSheet, error) {
	if sheetName == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return table.RawSheet{}, fmt.Errorf("workbook has no sheets")
		}
		sheetName = list[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return table.RawSheet{}, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	sheet := table.RawSheet{
		NRows:    len(rows),
		Styles:   styleTable{f: f},
		Custom:   cell.NewCustomDateFormats(customFormats(f)),
		Date1904: date1904(f),
	}

	for _, row := range rows {
		if len(row) > sheet.NCols {
			sheet.NCols = len(row)
		}
	}

	for r, row := range rows {
		for c, raw := range row {
			rc, ok, err := decodeCell(f, sheetName, r, c, raw)
			if err != nil {
				return table.RawSheet{}, err
			}
			if ok {
				sheet.Cells = append(sheet.Cells, rc)
			}
		}
	}

	log.Debug().
		Str("sheet", sheetName).
		Int("rows", sheet.NRows).
		Int("columns", sheet.NCols).
		Bool("date1904", sheet.Date1904).
		Msg("Decoded worksheet")

	return sheet, nil
}

// decodeCell maps one excelize cell onto the engine's record model.
func decodeCell(f *excelize.File, sheetName string, r, c int, raw string) (cell.RawCell, bool, error) {
	addr, err := excelize.CoordinatesToCellName(c+1, r+1)
	if err != nil {
		return cell.RawCell{}, false, fmt.Errorf("cell [%d, %d]: %w", r, c, err)
	}

	ctype, err := f.GetCellType(sheetName, addr)
	if err != nil {
		return cell.RawCell{}, false, fmt.Errorf("cell %s: %w", addr, err)
	}

	rc := cell.RawCell{Row: r, Col: c}
	if xf, err := f.GetCellStyle(sheetName, addr); err == nil {
		rc.XF = xf
	}

	switch ctype {
	case excelize.CellTypeSharedString:
		rc.Kind = cell.KindLabelSST
		rc.Text = raw
	case excelize.CellTypeInlineString:
		rc.Kind = cell.KindLabel
		rc.Text = raw
	case excelize.CellTypeNumber:
		if raw == "" {
			return cell.RawCell{}, false, nil
		}
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			// Some writers tag stored strings as numbers; keep the text.
			rc.Kind = cell.KindLabel
			rc.Text = raw
			break
		}
		rc.Kind = cell.KindNumber
		rc.Number = v
	case excelize.CellTypeBool:
		rc.Kind = cell.KindNumber
		if raw == "1" {
			rc.Number = 1
		}
	case excelize.CellTypeFormula:
		rc.Kind = cell.KindFormula
		if v, perr := strconv.ParseFloat(raw, 64); perr == nil {
			rc.Number = v
		} else {
			rc.HasText = true
			rc.Text = raw
		}
	case excelize.CellTypeError:
		rc.Kind = boolErrRecord
		rc.Text = raw
	default:
		if raw == "" {
			return cell.RawCell{}, false, nil
		}
		rc.Kind = cell.KindLabel
		rc.Text = raw
	}

	return rc, true, nil
}

// customFormats collects the workbook-defined number formats (id >= 164).
func customFormats(f *excelize.File) map[int]string {
	formats := make(map[int]string)
	st := f.Styles
	if st == nil || st.NumFmts == nil {
		return formats
	}
	for _, nf := range st.NumFmts.NumFmt {
		if nf == nil {
			continue
		}
		formats[nf.NumFmtID] = nf.FormatCode
	}
	return formats
}

func date1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
