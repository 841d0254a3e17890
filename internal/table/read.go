package table

import (
	"fmt"

	"tablecast/internal/cell"

	"github.com/rs/zerolog/log"
)

// MaxGuessRows is the ceiling on the guessing sample, the worksheet row
// limit of the modern container.
const MaxGuessRows = 1_048_576

// DefaultGuessMax bounds the guessing sample when the caller does not say.
const DefaultGuessMax = 1000

// Options control one read operation.
type Options struct {
	// Types optionally declares the column types. A single entry recycles
	// across all columns; otherwise the length must match the column count.
	// Nil means every column is guessed.
	Types []cell.ColType
	// Names are the final column names: one per input column (skipped
	// entries are discarded) or one per non-skip column.
	Names []string
	// NA designates missing-value strings. Zero value matches nothing.
	NA cell.NaSet
	// GuessMax bounds the number of rows sampled while guessing.
	// Zero selects DefaultGuessMax; negative values are a hard error.
	GuessMax int
}

// Read resolves every column's type and materializes the typed table from
// the raw cell stream. Structural validation failures (type or name count
// mismatches, a malformed guess bound) abort before materialization; all
// per-cell anomalies are collected as warnings on the returned table.
func Read(sheet RawSheet, opts Options) (*Table, error) {
	warn := &cell.Warnings{}

	guessMax := opts.GuessMax
	if guessMax == 0 {
		guessMax = DefaultGuessMax
	}
	if guessMax < 0 {
		return nil, fmt.Errorf("guess_max must be a positive integer, got %d", opts.GuessMax)
	}
	if guessMax > MaxGuessRows {
		warn.Addf("guess_max %d exceeds the row limit, using %d", guessMax, MaxGuessRows)
		guessMax = MaxGuessRows
	}

	cl := &cell.Classifier{
		Styles: sheet.Styles,
		Custom: sheet.Custom,
		NA:     opts.NA,
		Warn:   warn,
	}

	cols := splitColumns(sheet)

	types, err := resolveTypes(opts.Types, cols, sheet.NCols, guessMax, cl)
	if err != nil {
		return nil, err
	}

	names := opts.Names
	if names == nil {
		names = positionalNames(sheet.NCols)
	}

	resolved, err := resolveColumns(types, names)
	if err != nil {
		return nil, err
	}

	materialized := make([]Column, sheet.NCols)
	for j := range cols {
		materialized[j] = materializeColumn(resolved[j].Type, cols[j], sheet.NRows, cl, sheet.Date1904)
	}

	out := assemble(materialized, resolved)

	log.Debug().
		Int("rows", sheet.NRows).
		Int("columns", len(out)).
		Int("warnings", warn.Len()).
		Msg("Materialized table")

	return &Table{Columns: out, NRows: sheet.NRows, Warnings: warn.Messages()}, nil
}

// SplitHeader peels the first row off a raw sheet and returns its textual
// values as column names, along with the remaining sheet shifted up by one
// row. Blank header cells get positional names.
func SplitHeader(sheet RawSheet) ([]string, RawSheet) {
	names := positionalNames(sheet.NCols)

	rest := sheet
	rest.Cells = make([]cell.RawCell, 0, len(sheet.Cells))
	if rest.NRows > 0 {
		rest.NRows--
	}

	for _, rc := range sheet.Cells {
		if rc.Row == 0 {
			if rc.Col >= 0 && rc.Col < sheet.NCols {
				if s := renderHeader(rc); s != "" {
					names[rc.Col] = s
				}
			}
			continue
		}
		rc.Row--
		rest.Cells = append(rest.Cells, rc)
	}

	return names, rest
}

func positionalNames(n int) []string {
	names := make([]string, n)
	for j := range names {
		names[j] = fmt.Sprintf("X%d", j+1)
	}
	return names
}
