package cell

import "strconv"

// NaSet is the ordered set of strings the caller designates as missing.
// Matching is exact; numeric cells match through their shortest round-trip
// decimal rendering.
type NaSet struct {
	values []string
}

// NewNaSet builds an NA set from the given strings, preserving order.
func NewNaSet(values ...string) NaSet {
	return NaSet{values: append([]string(nil), values...)}
}

// DefaultNaSet treats only the empty string as missing.
func DefaultNaSet() NaSet {
	return NewNaSet("")
}

// ContainsString reports whether s is designated as missing.
func (na NaSet) ContainsString(s string) bool {
	for _, v := range na.values {
		if v == s {
			return true
		}
	}
	return false
}

// ContainsNumber reports whether the decoded numeric value is designated
// as missing, by comparing its decimal rendering against the set.
func (na NaSet) ContainsNumber(v float64) bool {
	return na.ContainsString(FormatNumber(v))
}

// Values returns the set's members in insertion order.
func (na NaSet) Values() []string {
	return append([]string(nil), na.values...)
}

// FormatNumber renders a numeric payload in the shortest decimal form that
// round-trips, the same rendering used for numeric cells in text columns.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
