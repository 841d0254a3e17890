package table

import (
	"math"
	"strings"
	"testing"

	"tablecast/internal/cell"
)

func TestReadGuessedTable(t *testing.T) {
	sheet := testSheet(3, 2,
		numCell(0, 0, 1), textCell(0, 1, "a"),
		numCell(1, 0, 2), textCell(1, 1, "b"),
		numCell(2, 0, 3), textCell(2, 1, "c"),
	)

	tbl, err := Read(sheet, Options{NA: cell.DefaultNaSet()})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(tbl.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(tbl.Columns))
	}
	if tbl.NRows != 3 {
		t.Errorf("Expected 3 rows, got %d", tbl.NRows)
	}
	if tbl.Columns[0].Type != cell.ColNumeric {
		t.Errorf("Expected first column numeric, got %v", tbl.Columns[0].Type)
	}
	if tbl.Columns[1].Type != cell.ColText {
		t.Errorf("Expected second column text, got %v", tbl.Columns[1].Type)
	}
	if tbl.Columns[0].Name != "X1" || tbl.Columns[1].Name != "X2" {
		t.Errorf("Expected positional names, got %q and %q",
			tbl.Columns[0].Name, tbl.Columns[1].Name)
	}
	if len(tbl.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", tbl.Warnings)
	}
}

func TestReadSkipRemoval(t *testing.T) {
	// Two columns, three rows, first column skipped: the output is the
	// second input column alone.
	sheet := testSheet(3, 2,
		textCell(0, 0, "drop"), numCell(0, 1, 10),
		textCell(1, 0, "drop"), numCell(1, 1, 20),
		textCell(2, 0, "drop"), numCell(2, 1, 30),
	)

	tbl, err := Read(sheet, Options{
		Types: []cell.ColType{cell.ColSkip, cell.ColNumeric},
		Names: []string{"a", "b"},
		NA:    cell.DefaultNaSet(),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(tbl.Columns) != 1 {
		t.Fatalf("Expected 1 column after skip removal, got %d", len(tbl.Columns))
	}
	if tbl.Columns[0].Name != "b" {
		t.Errorf("Expected surviving column named 'b', got %q", tbl.Columns[0].Name)
	}
	for i, want := range []float64{10, 20, 30} {
		if tbl.Columns[0].Numbers[i] != want {
			t.Errorf("Row %d: expected %v, got %v", i, want, tbl.Columns[0].Numbers[i])
		}
	}
}

func TestReadBlankColumnSurvives(t *testing.T) {
	// A data-driven all-blank column stays in the output as all-missing;
	// only a user skip request removes columns.
	sheet := testSheet(2, 2,
		blankCell(0, 0), numCell(0, 1, 1),
		blankCell(1, 0), numCell(1, 1, 2),
	)

	tbl, err := Read(sheet, Options{NA: cell.DefaultNaSet()})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(tbl.Columns) != 2 {
		t.Fatalf("Expected the blank column to survive, got %d columns", len(tbl.Columns))
	}
	if tbl.Columns[0].Type != cell.ColBlank {
		t.Errorf("Expected blank column type, got %v", tbl.Columns[0].Type)
	}
	if s, ok := tbl.Columns[0].Render(0); ok {
		t.Errorf("Expected every blank-column cell missing, got %q", s)
	}
}

func TestReadNamesLengthMismatch(t *testing.T) {
	sheet := testSheet(1, 3, numCell(0, 0, 1), numCell(0, 1, 2), numCell(0, 2, 3))

	_, err := Read(sheet, Options{
		Names: []string{"only", "two"},
		NA:    cell.DefaultNaSet(),
	})
	if err == nil {
		t.Fatal("Expected error for mismatched names length, got nil")
	}
	if !strings.Contains(err.Error(), "3 output columns") || !strings.Contains(err.Error(), "length 2") {
		t.Errorf("Expected received vs expected counts in error, got %q", err.Error())
	}
}

func TestReadNamesForNonSkipColumns(t *testing.T) {
	sheet := testSheet(1, 3, numCell(0, 0, 1), numCell(0, 1, 2), numCell(0, 2, 3))

	// Names may cover only the surviving columns.
	tbl, err := Read(sheet, Options{
		Types: []cell.ColType{cell.ColSkip, cell.ColNumeric, cell.ColNumeric},
		Names: []string{"left", "right"},
		NA:    cell.DefaultNaSet(),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tbl.Columns[0].Name != "left" || tbl.Columns[1].Name != "right" {
		t.Errorf("Unexpected names: %q, %q", tbl.Columns[0].Name, tbl.Columns[1].Name)
	}
}

func TestReadGuessMaxValidation(t *testing.T) {
	sheet := testSheet(1, 1, numCell(0, 0, 1))

	t.Run("NegativeIsFatal", func(t *testing.T) {
		_, err := Read(sheet, Options{GuessMax: -1, NA: cell.DefaultNaSet()})
		if err == nil {
			t.Fatal("Expected error for negative guess_max, got nil")
		}
	})

	t.Run("ZeroSelectsDefault", func(t *testing.T) {
		tbl, err := Read(sheet, Options{GuessMax: 0, NA: cell.DefaultNaSet()})
		if err != nil {
			t.Fatalf("Expected zero to fall back to the default bound, got %v", err)
		}
		if tbl.Columns[0].Type != cell.ColNumeric {
			t.Errorf("Expected sampled rows to drive the guess, got %v", tbl.Columns[0].Type)
		}
		if len(tbl.Warnings) != 0 {
			t.Errorf("Expected no warnings, got %v", tbl.Warnings)
		}
	})

	t.Run("OversizedClampsWithWarning", func(t *testing.T) {
		tbl, err := Read(sheet, Options{GuessMax: MaxGuessRows + 1, NA: cell.DefaultNaSet()})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		found := false
		for _, w := range tbl.Warnings {
			if strings.Contains(w, "guess_max") {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a clamp warning, got %v", tbl.Warnings)
		}
	})
}

func TestReadGuessBoundThenConflict(t *testing.T) {
	// Two numeric rows inside the sample, a text row beyond it: the column
	// guesses numeric and the text row drops to missing with a warning.
	sheet := testSheet(3, 1,
		numCell(0, 0, 1),
		numCell(1, 0, 2),
		textCell(2, 0, "late"),
	)

	tbl, err := Read(sheet, Options{GuessMax: 2, NA: cell.DefaultNaSet()})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	col := tbl.Columns[0]
	if col.Type != cell.ColNumeric {
		t.Fatalf("Expected numeric guess, got %v", col.Type)
	}
	if col.Numbers[0] != 1 || col.Numbers[1] != 2 {
		t.Errorf("Expected sampled values preserved, got %v", col.Numbers[:2])
	}
	if !math.IsNaN(col.Numbers[2]) {
		t.Errorf("Expected text row to drop to missing, got %v", col.Numbers[2])
	}

	warned := false
	for _, w := range tbl.Warnings {
		if strings.Contains(w, "expecting numeric") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("Expected a coercion warning, got %v", tbl.Warnings)
	}
}

func TestReadNASilentByDesign(t *testing.T) {
	// Cells matching the NA set become missing with no diagnostic.
	sheet := testSheet(2, 1,
		numCell(0, 0, 5),
		textCell(1, 0, "NA"),
	)

	tbl, err := Read(sheet, Options{NA: cell.NewNaSet("", "NA")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	col := tbl.Columns[0]
	if col.Type != cell.ColNumeric {
		t.Fatalf("Expected numeric guess with NA text excluded, got %v", col.Type)
	}
	if !math.IsNaN(col.Numbers[1]) {
		t.Errorf("Expected NA cell missing, got %v", col.Numbers[1])
	}
	if len(tbl.Warnings) != 0 {
		t.Errorf("NA handling is silent by design, got %v", tbl.Warnings)
	}
}

func TestSplitHeader(t *testing.T) {
	sheet := testSheet(3, 3,
		textCell(0, 0, "name"), textCell(0, 1, "score"), blankCell(0, 2),
		textCell(1, 0, "ann"), numCell(1, 1, 9), numCell(1, 2, 1),
		textCell(2, 0, "bob"), numCell(2, 1, 7), numCell(2, 2, 2),
	)

	names, rest := SplitHeader(sheet)

	expected := []string{"name", "score", "X3"}
	for j, want := range expected {
		if names[j] != want {
			t.Errorf("Name %d: expected %q, got %q", j, want, names[j])
		}
	}

	if rest.NRows != 2 {
		t.Errorf("Expected 2 remaining rows, got %d", rest.NRows)
	}
	for _, rc := range rest.Cells {
		if rc.Row < 0 || rc.Row > 1 {
			t.Errorf("Cell %+v should have shifted into rows 0-1", rc)
		}
	}

	tbl, err := Read(rest, Options{Names: names, NA: cell.DefaultNaSet()})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tbl.Columns[0].Name != "name" || tbl.Columns[1].Name != "score" {
		t.Errorf("Unexpected column names: %+v", tbl.Columns)
	}
}
