package cell

// customFormatBase is the first number-format id available for
// workbook-defined formats; ids below it are built in (ECMA-376 18.8.30).
const customFormatBase = 164

// CustomDateFormats is the set of workbook-defined number-format ids whose
// format string is date-like. Built once per workbook, immutable afterward.
type CustomDateFormats map[int]struct{}

// NewCustomDateFormats scans the workbook's number-format table and records
// every custom id (>= 164) whose format string contains a date/time token.
func NewCustomDateFormats(formats map[int]string) CustomDateFormats {
	custom := make(CustomDateFormats)
	for id, code := range formats {
		if id < customFormatBase {
			continue
		}
		if IsDateFormat(code) {
			custom[id] = struct{}{}
		}
	}
	return custom
}

// IsDateFormat reports whether a number-format string contains at least one
// date/time-significant character ('mm' may mean minutes, 'hh' hours, 'ss'
// seconds). Literal text inside the format is not modeled: a quoted "M"
// still counts as a date signal, which keeps detection bug-compatible with
// existing spreadsheets.
func IsDateFormat(code string) bool {
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case 'd', 'D', 'm', 'M', 'y', 'Y', 'h', 'H', 's', 'S':
			return true
		}
	}
	return false
}

// IsDateTime reports whether the number-format id denotes a date or time.
// Built-in date ids per ECMA-376 18.8.30: 14-22, 27-36, 45-47, 50-58 and
// 71-81, all inclusive. Other built-ins are never dates; custom ids defer
// to the workbook's format table.
func IsDateTime(id int, custom CustomDateFormats) bool {
	if (id >= 14 && id <= 22) ||
		(id >= 27 && id <= 36) ||
		(id >= 45 && id <= 47) ||
		(id >= 50 && id <= 58) ||
		(id >= 71 && id <= 81) {
		return true
	}

	if id < customFormatBase {
		return false
	}

	_, ok := custom[id]
	return ok
}
