package domain

import "strings"

// DateKey is the weekday-grid button that opens exact date entry
const DateKey = "Дата"

// Weekdays are the fixed schedule keys, in grid order
var Weekdays = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// IsBlank reports whether a schedule body counts as absent
func IsBlank(body string) bool {
	return strings.TrimSpace(body) == ""
}
