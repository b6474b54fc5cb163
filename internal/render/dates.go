package render

import (
	"strings"
	"time"
)

// FormatPeriod converts a "YYYY-MM" period into an abbreviated "Mon YYYY"
// display form. Empty values, the "Present" sentinel, and anything that does
// not parse as year-month come back unchanged.
func FormatPeriod(period string) string {
	trimmed := strings.TrimSpace(period)
	if trimmed == "" || strings.EqualFold(trimmed, "present") {
		return trimmed
	}
	t, err := time.Parse("2006-01", trimmed)
	if err != nil {
		return trimmed
	}
	return t.Format("Jan 2006")
}
