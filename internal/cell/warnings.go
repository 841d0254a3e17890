package cell

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Warnings accumulates the non-fatal diagnostics of one read operation.
// Per-cell and per-column anomalies land here and never abort the read;
// the collected messages are surfaced to the caller alongside the result.
type Warnings struct {
	msgs []string
}

// Addf records a diagnostic and logs it.
func (w *Warnings) Addf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.msgs = append(w.msgs, msg)
	log.Warn().Msg(msg)
}

// Messages returns the collected diagnostics in emission order.
func (w *Warnings) Messages() []string {
	return append([]string(nil), w.msgs...)
}

// Len returns the number of collected diagnostics.
func (w *Warnings) Len() int {
	return len(w.msgs)
}
