package utils

import (
	"fmt"
	"strings"
	"time"
)

// Constants
const (
	ISO_DATE_LAYOUT = "2006-01-02"
)

// DateOf truncates t to its calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after date
func AddDays(date time.Time, n int) time.Time {
	return DateOf(date).AddDate(0, 0, n)
}

// ParseISODate parses a YYYY-MM-DD string into a UTC calendar date
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISO_DATE_LAYOUT, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatISODate formats a date as YYYY-MM-DD, or "" for nil
func FormatISODate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ISO_DATE_LAYOUT)
}

// DatePtr returns a pointer to the calendar date of t
func DatePtr(t time.Time) *time.Time {
	d := DateOf(t)
	return &d
}
