package table

import (
	"fmt"

	"tablecast/internal/cell"
)

// resolveTypes reconciles user-declared column types with guesses derived
// from a bounded row sample. A declared type is used as-is (a single entry
// recycles across all columns); without declarations every column is
// guessed independently.
func resolveTypes(userTypes []cell.ColType, cols [][]cell.RawCell, ncols, guessMax int, cl *cell.Classifier) ([]cell.ColType, error) {
	if userTypes != nil {
		switch len(userTypes) {
		case 1:
			types := make([]cell.ColType, ncols)
			for j := range types {
				types[j] = userTypes[0]
			}
			return types, nil
		case ncols:
			return append([]cell.ColType(nil), userTypes...), nil
		default:
			return nil, fmt.Errorf("Sheet has %d columns, but types has length %d", ncols, len(userTypes))
		}
	}

	types := make([]cell.ColType, ncols)
	for j := range cols {
		types[j] = cell.AsColType(guessCellType(cols[j], guessMax, cl))
	}
	return types, nil
}

// guessCellType promotes over the sampled cells: the guess is the maximum
// observed cell type under blank < date < numeric < text. Rows at or past
// guessMax never influence the guess; an all-blank or empty sample stays
// blank and materializes as an all-missing column.
func guessCellType(cells []cell.RawCell, guessMax int, cl *cell.Classifier) cell.CellType {
	guess := cell.CellBlank
	for _, rc := range cells {
		if rc.Row >= guessMax {
			break
		}
		if t := cl.Classify(rc); t > guess {
			guess = t
		}
	}
	return guess
}
