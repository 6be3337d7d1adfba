package memory

import (
	"sync"

	"daybook/internal/domain"
)

// UsageRepo implements repository.UsageRepository
type UsageRepo struct {
	mu    sync.RWMutex
	hours map[string][]float64
}

// NewUsageRepo creates a new usage repository
func NewUsageRepo() *UsageRepo {
	return &UsageRepo{hours: make(map[string][]float64)}
}

// AddHours appends a reading to the date's list
func (r *UsageRepo) AddHours(date string, hours float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hours[date] = append(r.hours[date], hours)
	return nil
}

// AllHours returns a snapshot of every reading grouped by date
func (r *UsageRepo) AllHours() (map[string][]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]float64, len(r.hours))
	for date, readings := range r.hours {
		out[date] = append([]float64(nil), readings...)
	}
	return out, nil
}

// TextLogRepo implements repository.TextLogRepository.
// One instance backs each free-text category.
type TextLogRepo struct {
	mu      sync.RWMutex
	entries []domain.TextEntry
}

// NewTextLogRepo creates a new text log repository
func NewTextLogRepo() *TextLogRepo {
	return &TextLogRepo{}
}

func (r *TextLogRepo) AppendEntry(entry domain.TextEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

func (r *TextLogRepo) ListEntries() ([]domain.TextEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TextEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
