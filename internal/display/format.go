package display

import (
	"fmt"
)

// FormatDuration renders seconds as m:ss or h:mm:ss for log lines.
// Sub-second precision is dropped; it never matters for display.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
