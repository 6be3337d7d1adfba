package domain

// Category identifies a dependency log
type Category string

const (
	CategoryPhone    Category = "phone"
	CategorySweets   Category = "sweets"
	CategoryBadWords Category = "badwords"
)

// TextEntry is a free-text dependency record (sweets, bad words)
type TextEntry struct {
	Date string // YYYY-MM-DD
	Text string
}

// DayTotal is the summed usage for one calendar date
type DayTotal struct {
	Date  string
	Hours float64
}
