package domain

import "time"

// Event is a dated note created by a user. Immutable once stored.
type Event struct {
	Date        time.Time
	Description string
	ChatID      int64
}

// DateString returns event date in YYYY-MM-DD format
func (e Event) DateString() string {
	return FormatDate(e.Date)
}
