package memory

import "sync"

// ScheduleRepo implements repository.ScheduleRepository
type ScheduleRepo struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewScheduleRepo creates a new schedule repository
func NewScheduleRepo() *ScheduleRepo {
	return &ScheduleRepo{entries: make(map[string]string)}
}

// GetSchedule returns the body stored under key
func (r *ScheduleRepo) GetSchedule(key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	body, ok := r.entries[key]
	return body, ok, nil
}

// SaveSchedule replaces the body stored under key
func (r *ScheduleRepo) SaveSchedule(key, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = body
	return nil
}
