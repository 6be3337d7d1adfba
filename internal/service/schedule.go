package service

import (
	"fmt"
	"strings"

	"daybook/internal/domain"
	"daybook/internal/repository"
)

// ScheduleService handles weekday and exact-date schedules
type ScheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(scheduleRepo repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// Lookup returns the schedule body for key. present is false when nothing is
// stored or the stored body is blank.
func (s *ScheduleService) Lookup(key string) (body string, present bool, err error) {
	body, ok, err := s.scheduleRepo.GetSchedule(key)
	if err != nil {
		return "", false, fmt.Errorf("get schedule %q: %w", key, err)
	}
	return body, ok && !domain.IsBlank(body), nil
}

// Save stores body under key, replacing any previous value
func (s *ScheduleService) Save(key, body string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("schedule key cannot be empty")
	}
	if err := s.scheduleRepo.SaveSchedule(key, body); err != nil {
		return fmt.Errorf("save schedule %q: %w", key, err)
	}
	return nil
}
