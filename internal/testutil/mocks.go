package testutil

import (
	"time"

	"daybook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockScheduleRepository is a mock for ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetSchedule(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockScheduleRepository) SaveSchedule(key, body string) error {
	args := m.Called(key, body)
	return args.Error(0)
}

// MockEventRepository is a mock for EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) AppendEvent(event domain.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) ListEvents() ([]domain.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockQuestionRepository is a mock for QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) AppendQuestion(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListQuestions() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockUsageRepository is a mock for UsageRepository
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) AddHours(date string, hours float64) error {
	args := m.Called(date, hours)
	return args.Error(0)
}

func (m *MockUsageRepository) AllHours() (map[string][]float64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]float64), args.Error(1)
}

// MockTextLogRepository is a mock for TextLogRepository
type MockTextLogRepository struct {
	mock.Mock
}

func (m *MockTextLogRepository) AppendEntry(entry domain.TextEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockTextLogRepository) ListEntries() ([]domain.TextEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TextEntry), args.Error(1)
}

// MockSessionExpirer is a mock for the session janitor's store
type MockSessionExpirer struct {
	mock.Mock
}

func (m *MockSessionExpirer) ExpireIdle(maxAge time.Duration) []int64 {
	args := m.Called(maxAge)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int64)
}
