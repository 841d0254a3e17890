package cell

import "fmt"

// ColType is the resolved type of an output column. The first four values
// correspond to the cell types; List and Skip exist only as user requests.
// ColBlank is a column full of blank cells, while ColSkip is a column the
// user excluded from the output.
type ColType int

const (
	ColBlank ColType = iota
	ColDate
	ColNumeric
	ColText
	ColList
	ColSkip
)

func (t ColType) String() string {
	switch t {
	case ColBlank:
		return "blank"
	case ColDate:
		return "date"
	case ColNumeric:
		return "numeric"
	case ColText:
		return "text"
	case ColList:
		return "list"
	case ColSkip:
		return "skip"
	}
	return "???"
}

// AsColType widens a cell type into the column type able to hold it.
func AsColType(t CellType) ColType {
	switch t {
	case CellBlank:
		return ColBlank
	case CellDate:
		return ColDate
	case CellNumeric:
		return ColNumeric
	case CellText:
		return ColText
	}
	return ColBlank
}

// ParseColTypes maps user-supplied type tokens to column types.
// Tokens are case-sensitive. "blank" is accepted as a deprecated alias of
// "skip"; the deprecation notice is emitted at most once per call.
func ParseColTypes(tokens []string, warn *Warnings) ([]ColType, error) {
	types := make([]ColType, 0, len(tokens))
	warnedBlank := false

	for i, tok := range tokens {
		switch tok {
		case "blank":
			if !warnedBlank {
				warn.Addf("type \"blank\" is deprecated, use \"skip\" instead")
				warnedBlank = true
			}
			types = append(types, ColSkip)
		case "date":
			types = append(types, ColDate)
		case "numeric":
			types = append(types, ColNumeric)
		case "text":
			types = append(types, ColText)
		case "list":
			types = append(types, ColList)
		case "skip":
			types = append(types, ColSkip)
		default:
			return nil, fmt.Errorf("unknown column type '%s' at position %d", tok, i+1)
		}
	}

	return types, nil
}
