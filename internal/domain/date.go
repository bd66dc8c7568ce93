package domain

import (
	"strings"
	"time"
)

// dateLayouts are the spellings spreadsheet CSV exports use for dates.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"2006/01/02",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02T15:04:05Z07:00",
}

// ParseDate parses a calendar date. The result is midnight UTC on that day;
// any time-of-day component in the input is dropped. ok is false when no
// known layout matches.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return Day(parsed), true
		}
	}
	return time.Time{}, false
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves t's month start by n months. Unlike time.AddDate it never
// spills over into the following month.
func AddMonths(t time.Time, n int) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return AddMonths(t, 1).AddDate(0, 0, -1).Day()
}

// FormatDate renders a calendar date as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
