package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate returns date in YYYY-MM-DD format
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDay returns the civil date of t in loc as UTC midnight.
// Calendar arithmetic on the result never crosses DST boundaries.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns whole calendar days from `from` to `to`.
// Both arguments must be values produced by CalendarDay or ParseDate.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
