package gsheets

import (
	"testing"

	"tablecast/internal/cell"

	"google.golang.org/api/sheets/v4"
)

func strp(s string) *string    { return &s }
func numpp(v float64) *float64 { return &v }

func TestConvertGrid(t *testing.T) {
	serial := 43831.0
	yes := true

	grid := &sheets.GridData{
		RowData: []*sheets.RowData{
			{
				Values: []*sheets.CellData{
					{EffectiveValue: &sheets.ExtendedValue{StringValue: strp("name")}},
					{EffectiveValue: &sheets.ExtendedValue{NumberValue: numpp(1.5)}},
					{
						EffectiveValue: &sheets.ExtendedValue{NumberValue: &serial},
						EffectiveFormat: &sheets.CellFormat{
							NumberFormat: &sheets.NumberFormat{Type: "DATE", Pattern: "yyyy-mm-dd"},
						},
					},
				},
			},
			{
				Values: []*sheets.CellData{
					nil,
					{EffectiveValue: &sheets.ExtendedValue{BoolValue: &yes}},
				},
			},
		},
	}

	sheet := convertGrid(grid)

	if sheet.NRows != 2 || sheet.NCols != 3 {
		t.Fatalf("Expected 2x3 grid, got %dx%d", sheet.NRows, sheet.NCols)
	}
	if len(sheet.Cells) != 4 {
		t.Fatalf("Expected 4 populated cells, got %d", len(sheet.Cells))
	}

	cl := &cell.Classifier{
		Styles: sheet.Styles,
		Custom: sheet.Custom,
		NA:     cell.DefaultNaSet(),
		Warn:   &cell.Warnings{},
	}

	expected := []cell.CellType{cell.CellText, cell.CellNumeric, cell.CellDate, cell.CellNumeric}
	for i, want := range expected {
		if got := cl.Classify(sheet.Cells[i]); got != want {
			t.Errorf("Cell %d (%+v): expected %v, got %v", i, sheet.Cells[i], want, got)
		}
	}

	// The bool cell carries its numeric rendering.
	if sheet.Cells[3].Number != 1 {
		t.Errorf("Expected bool true to map to 1, got %v", sheet.Cells[3].Number)
	}
}

func TestFormatRegistry(t *testing.T) {
	reg := newFormatRegistry()

	dateXF := reg.register(&sheets.NumberFormat{Type: "DATE", Pattern: "yyyy-mm-dd"})
	plainXF := reg.register(nil)
	customDateXF := reg.register(&sheets.NumberFormat{Type: "NUMBER_FORMAT_TYPE_UNSPECIFIED", Pattern: "dd/mm"})
	customPlainXF := reg.register(&sheets.NumberFormat{Type: "NUMBER_FORMAT_TYPE_UNSPECIFIED", Pattern: "0.00"})

	custom := cell.NewCustomDateFormats(reg.formats)

	tests := []struct {
		name     string
		xf       int
		expected bool
	}{
		{"api-declared date format", dateXF, true},
		{"no format", plainXF, false},
		{"custom pattern with date tokens", customDateXF, true},
		{"custom plain pattern", customPlainXF, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cell.IsDateTime(reg.NumFmt(tc.xf), custom); got != tc.expected {
				t.Errorf("Expected date=%v for xf %d (fmt id %d)", tc.expected, tc.xf, reg.NumFmt(tc.xf))
			}
		})
	}

	t.Run("DistinctPatternsGetDistinctIds", func(t *testing.T) {
		if reg.NumFmt(customDateXF) == reg.NumFmt(customPlainXF) {
			t.Error("Expected distinct ids for distinct patterns")
		}
	})

	t.Run("RepeatedPatternReusesId", func(t *testing.T) {
		again := reg.register(&sheets.NumberFormat{Type: "NUMBER_FORMAT_TYPE_UNSPECIFIED", Pattern: "dd/mm"})
		if reg.NumFmt(again) != reg.NumFmt(customDateXF) {
			t.Error("Expected the same id for a repeated pattern")
		}
	})
}
