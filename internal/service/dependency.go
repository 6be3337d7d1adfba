package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"daybook/internal/domain"
	"daybook/internal/report"
	"daybook/internal/repository"
)

// ErrInvalidHours is returned when an hour count cannot be parsed
var ErrInvalidHours = errors.New("invalid hours")

// ErrUnknownCategory is returned for a category without the requested log
var ErrUnknownCategory = errors.New("unknown dependency category")

// DependencyService logs dependency entries and builds reports over them
type DependencyService struct {
	usageRepo    repository.UsageRepository
	textLogRepos map[domain.Category]repository.TextLogRepository
	now          func() time.Time
	location     *time.Location
}

// NewDependencyService creates a new dependency service. now and location
// define "today" for new entries and report windows.
func NewDependencyService(
	usageRepo repository.UsageRepository,
	sweetsRepo repository.TextLogRepository,
	badWordsRepo repository.TextLogRepository,
	now func() time.Time,
	location *time.Location,
) *DependencyService {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &DependencyService{
		usageRepo: usageRepo,
		textLogRepos: map[domain.Category]repository.TextLogRepository{
			domain.CategorySweets:   sweetsRepo,
			domain.CategoryBadWords: badWordsRepo,
		},
		now:      now,
		location: location,
	}
}

// Today returns the current calendar date as UTC midnight
func (s *DependencyService) Today() time.Time {
	return domain.CalendarDay(s.now(), s.location)
}

// ParseHours parses a finite hour count like "3.5". Negative counts are
// accepted and offset an earlier entry of the same day.
func ParseHours(text string) (float64, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, text)
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, text)
	}
	return hours, nil
}

// LogHours records usage hours for today and returns the date used
func (s *DependencyService) LogHours(hours float64) (string, error) {
	date := domain.FormatDate(s.Today())
	if err := s.usageRepo.AddHours(date, hours); err != nil {
		return "", fmt.Errorf("add hours: %w", err)
	}
	return date, nil
}

// LogText records a free-text entry for today and returns the date used
func (s *DependencyService) LogText(category domain.Category, text string) (string, error) {
	repo, ok := s.textLogRepos[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	date := domain.FormatDate(s.Today())
	if err := repo.AppendEntry(domain.TextEntry{Date: date, Text: text}); err != nil {
		return "", fmt.Errorf("append %s entry: %w", category, err)
	}
	return date, nil
}

// WeeklyReport renders the last 7 days of a category
func (s *DependencyService) WeeklyReport(category domain.Category) (string, error) {
	today := s.Today()

	if category == domain.CategoryPhone {
		hours, err := s.usageRepo.AllHours()
		if err != nil {
			return "", fmt.Errorf("load hours: %w", err)
		}
		return report.WeeklyUsage(report.DailyTotals(hours, today, report.WeekDays)), nil
	}

	repo, ok := s.textLogRepos[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	entries, err := repo.ListEntries()
	if err != nil {
		return "", fmt.Errorf("load %s entries: %w", category, err)
	}
	return report.WeeklyListing(category, report.Recent(entries, today, report.WeekDays))
}

// MonthlyReport renders the last 30 days of usage hours
func (s *DependencyService) MonthlyReport() (string, error) {
	hours, err := s.usageRepo.AllHours()
	if err != nil {
		return "", fmt.Errorf("load hours: %w", err)
	}
	return report.MonthlyUsage(report.DailyTotals(hours, s.Today(), report.MonthDays)), nil
}

// UsageReport renders the weekly and monthly usage sections together
func (s *DependencyService) UsageReport() (string, error) {
	week, err := s.WeeklyReport(domain.CategoryPhone)
	if err != nil {
		return "", err
	}
	month, err := s.MonthlyReport()
	if err != nil {
		return "", err
	}
	return week + "\n" + month, nil
}
