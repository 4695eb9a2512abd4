package tags

import (
	"fmt"
	"time"
)

// dateLayouts is the ordered list of free-text date formats accepted from
// tag frames. Order matters: year-first layouts are tried before day-first
// so unambiguous ISO dates never parse as day-first.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
	"2006-01",
	"2006",
}

// NormalizeDate canonicalizes a free-text date frame value to YYYY-MM-DD,
// YYYY-MM, or YYYY depending on how much the source carried. A bare DDMM
// string (common in stripped ID3v2.3 TDAT leftovers) is completed with the
// current year. Values that match no known layout pass through unchanged.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		switch layout {
		case "2006-01":
			return t.Format("2006-01")
		case "2006":
			return t.Format("2006")
		default:
			return t.Format("2006-01-02")
		}
	}
	if len(raw) == 4 {
		if t, err := time.Parse("0201", raw); err == nil {
			return fmt.Sprintf("%d-%02d-%02d", time.Now().Year(), t.Month(), t.Day())
		}
	}
	return raw
}

// NormalizeDateParts renders structured parts to the widest valid form:
// full date, then year-month, then bare year. An impossible day (Feb 30)
// degrades to year-month rather than discarding the whole date.
func NormalizeDateParts(p *DateParts) string {
	if p == nil || p.Year <= 0 {
		return ""
	}
	if p.Month >= 1 && p.Month <= 12 {
		if p.Day >= 1 && p.Day <= daysIn(p.Year, p.Month) {
			return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
		}
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	}
	return fmt.Sprintf("%04d", p.Year)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
