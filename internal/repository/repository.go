package repository

import (
	"daybook/internal/domain"
)

// ScheduleRepository defines schedule data operations
type ScheduleRepository interface {
	GetSchedule(key string) (string, bool, error)
	SaveSchedule(key, body string) error
}

// EventRepository defines event data operations
type EventRepository interface {
	AppendEvent(event domain.Event) error
	ListEvents() ([]domain.Event, error)
}

// QuestionRepository defines question data operations
type QuestionRepository interface {
	AppendQuestion(text string) error
	ListQuestions() ([]string, error)
}

// UsageRepository stores hour readings grouped by YYYY-MM-DD date
type UsageRepository interface {
	AddHours(date string, hours float64) error
	AllHours() (map[string][]float64, error)
}

// TextLogRepository stores free-text dependency entries in insertion order
type TextLogRepository interface {
	AppendEntry(entry domain.TextEntry) error
	ListEntries() ([]domain.TextEntry, error)
}
