package table

import (
	"fmt"

	"tablecast/internal/cell"
)

// resolveColumns attaches the final names to the resolved types, one entry
// per input column. Names may cover either every input column (entries for
// skipped columns are discarded) or exactly the non-skip columns; any other
// length is a hard error. Skipped columns keep an empty name.
func resolveColumns(types []cell.ColType, names []string) ([]ResolvedColumn, error) {
	nonSkip := 0
	for _, t := range types {
		if t != cell.ColSkip {
			nonSkip++
		}
	}

	switch len(names) {
	case nonSkip:
	case len(types):
		if len(types) != nonSkip {
			kept := make([]string, 0, nonSkip)
			for j, t := range types {
				if t != cell.ColSkip {
					kept = append(kept, names[j])
				}
			}
			names = kept
		}
	default:
		return nil, fmt.Errorf("Sheet has %d output columns, but names has length %d", nonSkip, len(names))
	}

	resolved := make([]ResolvedColumn, len(types))
	i := 0
	for j, t := range types {
		resolved[j].Type = t
		if t != cell.ColSkip {
			resolved[j].Name = names[i]
			i++
		}
	}
	return resolved, nil
}

// assemble removes skipped columns and attaches the resolved names. Blank
// columns survive as present-but-entirely-missing output: removal is only
// ever a user skip request, never a data-driven decision.
func assemble(cols []Column, resolved []ResolvedColumn) []Column {
	out := make([]Column, 0, len(cols))
	for j, c := range cols {
		if resolved[j].Type == cell.ColSkip {
			continue
		}
		c.Name = resolved[j].Name
		out = append(out, c)
	}
	return out
}
