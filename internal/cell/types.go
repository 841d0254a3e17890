package cell

// RecordKind tags a raw cell with the container's native record type.
// The values mirror the legacy BIFF record ids (see [MS-XLS] 2.3.2) so
// diagnostics print the id a spreadsheet engineer would recognize; modern
// container sources map their cell types onto the same kinds.
type RecordKind int

const (
	KindFormula    RecordKind = 6   // formula with cached result
	KindMulRk      RecordKind = 189 // compact numeric run
	KindMulBlank   RecordKind = 190
	KindLabelSST   RecordKind = 253 // shared-string label
	KindBlank      RecordKind = 513
	KindNumber     RecordKind = 515
	KindLabel      RecordKind = 516 // inline label
	KindRk         RecordKind = 638 // compact numeric
	KindFormulaAlt RecordKind = 1030
)

// RawCell is one decoded spreadsheet cell, before type resolution.
//
// Exactly one of Number/Text is meaningful for a non-blank record,
// determined by Kind; formula records carry HasText to select which
// cached result is populated.
type RawCell struct {
	Row, Col int
	Kind     RecordKind
	Number   float64
	Text     string
	HasText  bool
	// XF indexes the style table for number-format lookup. Cells from
	// containers without style information leave it zero and are never
	// date candidates.
	XF int
}

// StyleTable resolves a cell's style index to a number-format id.
// A nil StyleTable means the container carried no style information.
type StyleTable interface {
	NumFmt(xf int) int
}

// CellType classifies a single cell. The order encodes representability:
// a later type can always stand in for evidence that would otherwise
// require an earlier one (text can hold anything verbatim).
type CellType int

const (
	CellBlank CellType = iota
	CellDate
	CellNumeric
	CellText
)

func (t CellType) String() string {
	switch t {
	case CellBlank:
		return "blank"
	case CellDate:
		return "date"
	case CellNumeric:
		return "numeric"
	case CellText:
		return "text"
	}
	return "???"
}
