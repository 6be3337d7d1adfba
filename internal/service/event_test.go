package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"daybook/internal/domain"
	"daybook/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestEventService_Add(t *testing.T) {
	date := time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		description   string
		mockError     error
		expectedError bool
		emptyText     bool
	}{
		{
			name:        "valid event",
			description: "парад",
		},
		{
			name:          "empty description",
			description:   "",
			expectedError: true,
			emptyText:     true,
		},
		{
			name:          "repository error",
			description:   "парад",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockEventRepository)
			expected := domain.Event{Date: date, Description: tt.description, ChatID: 42}
			if tt.description != "" {
				mockRepo.On("AppendEvent", expected).Return(tt.mockError)
			}

			service := NewEventService(mockRepo)

			event, err := service.Add(date, tt.description, 42)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.emptyText, errors.Is(err, ErrEmptyText))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, expected, event)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestEventService_List(t *testing.T) {
	events := []domain.Event{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Description: "b"},
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Description: "a"},
	}

	mockRepo := new(testutil.MockEventRepository)
	mockRepo.On("ListEvents").Return(events, nil)

	service := NewEventService(mockRepo)

	result, err := service.List()

	assert.NoError(t, err)
	assert.Equal(t, events, result)
	mockRepo.AssertExpectations(t)
}
