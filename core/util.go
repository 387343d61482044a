package core

import (
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// DateLayout is the calendar-date format used for every record date.
const DateLayout = "2006-01-02"

// FormatDate renders t as an ISO calendar date (UTC).
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
