package xldate

import (
	"math"
	"time"
)

// Excel stores datetimes as fractional day counts from a workbook-level
// epoch: 1900-based by default, 1904-based when the workbook declares the
// Macintosh date system. The 1900 system inherits the Lotus 1-2-3 bug that
// treats 1900 as a leap year, so serials from 60 up count from a shifted
// epoch while smaller serials keep the original one.
var (
	epoch1904      = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
	epoch1900      = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	epoch1900Shift = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
)

// AsTime converts an Excel serial number into a UTC timestamp with no
// time-zone shifting. Fractional days resolve at millisecond precision,
// matching the container's own resolution.
func AsTime(serial float64, date1904 bool) time.Time {
	var epoch time.Time
	switch {
	case date1904:
		epoch = epoch1904
	case serial < 60:
		epoch = epoch1900
	default:
		epoch = epoch1900Shift
	}

	days := int(serial)
	frac := serial - float64(days)
	ms := int(math.Round(frac * 86400000.0))

	return epoch.AddDate(0, 0, days).
		Add(time.Duration(ms) * time.Millisecond)
}

// Serial converts a UTC timestamp back into an Excel serial number.
// Mostly useful for building fixtures and round-trip checks.
func Serial(t time.Time, date1904 bool) float64 {
	epoch := epoch1900Shift
	if date1904 {
		epoch = epoch1904
	}
	d := t.Sub(epoch)
	serial := float64(d) / float64(24*time.Hour)
	if !date1904 && serial < 61 {
		// Below the leap-bug boundary the unshifted epoch applies.
		serial = float64(t.Sub(epoch1900)) / float64(24*time.Hour)
	}
	return serial
}
