package memory

import (
	"sync"

	"daybook/internal/domain"
)

// EventRepo implements repository.EventRepository
type EventRepo struct {
	mu     sync.RWMutex
	events []domain.Event
}

// NewEventRepo creates a new event repository
func NewEventRepo() *EventRepo {
	return &EventRepo{}
}

// AppendEvent stores an event at the end of the list
func (r *EventRepo) AppendEvent(event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

// ListEvents returns events in insertion order
func (r *EventRepo) ListEvents() ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}
