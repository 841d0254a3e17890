package cell

// Classifier maps raw cell records to cell types using the container's
// record tags, the workbook's style table and the caller's NA set.
type Classifier struct {
	Styles StyleTable
	Custom CustomDateFormats
	NA     NaSet
	Warn   *Warnings
}

// Classify returns the cell type of one raw record.
//
// Structural blanks always classify as blank. Textual records become blank
// when the string is in the NA set, text otherwise. Numeric records become
// blank on NA-sentinel match, then date or numeric depending on the cell's
// number format; without a style table they default to numeric. Unknown
// record kinds are treated as numeric with a diagnostic so best-effort
// reads of exotic legacy files keep working.
func (c *Classifier) Classify(rc RawCell) CellType {
	switch rc.Kind {
	case KindLabelSST, KindLabel:
		if c.NA.ContainsString(rc.Text) {
			return CellBlank
		}
		return CellText

	case KindFormula, KindFormulaAlt:
		if rc.HasText {
			if c.NA.ContainsString(rc.Text) {
				return CellBlank
			}
			return CellText
		}
		return c.classifyNumber(rc)

	case KindMulRk, KindNumber, KindRk:
		return c.classifyNumber(rc)

	case KindMulBlank, KindBlank:
		return CellBlank

	default:
		c.Warn.Addf("unknown record kind %d in [%d, %d]; treating as numeric", rc.Kind, rc.Row, rc.Col)
		return CellNumeric
	}
}

func (c *Classifier) classifyNumber(rc RawCell) CellType {
	if c.NA.ContainsNumber(rc.Number) {
		return CellBlank
	}
	if c.Styles == nil {
		return CellNumeric
	}
	if IsDateTime(c.Styles.NumFmt(rc.XF), c.Custom) {
		return CellDate
	}
	return CellNumeric
}
