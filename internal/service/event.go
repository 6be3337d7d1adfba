package service

import (
	"fmt"
	"time"

	"daybook/internal/domain"
	"daybook/internal/repository"
)

// EventService handles dated events
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// Add appends a new event
func (s *EventService) Add(date time.Time, description string, chatID int64) (domain.Event, error) {
	if description == "" {
		return domain.Event{}, fmt.Errorf("%w: event description", ErrEmptyText)
	}
	event := domain.Event{Date: date, Description: description, ChatID: chatID}
	if err := s.eventRepo.AppendEvent(event); err != nil {
		return domain.Event{}, fmt.Errorf("append event: %w", err)
	}
	return event, nil
}

// List returns events in the order they were added
func (s *EventService) List() ([]domain.Event, error) {
	return s.eventRepo.ListEvents()
}
