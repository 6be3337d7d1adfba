package service

import (
	"fmt"
	"testing"

	"daybook/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestScheduleService_Lookup(t *testing.T) {
	tests := []struct {
		name            string
		key             string
		mockBody        string
		mockFound       bool
		mockError       error
		expectedPresent bool
		expectedError   bool
	}{
		{
			name:            "schedule present",
			key:             "Понедельник",
			mockBody:        "зал в 19:00",
			mockFound:       true,
			expectedPresent: true,
		},
		{
			name:            "schedule absent",
			key:             "Вторник",
			mockFound:       false,
			expectedPresent: false,
		},
		{
			name:            "empty body is absent",
			key:             "Среда",
			mockBody:        "",
			mockFound:       true,
			expectedPresent: false,
		},
		{
			name:            "whitespace body is absent",
			key:             "Четверг",
			mockBody:        "  \n\t ",
			mockFound:       true,
			expectedPresent: false,
		},
		{
			name:            "exact date key",
			key:             "2025-04-17",
			mockBody:        "врач",
			mockFound:       true,
			expectedPresent: true,
		},
		{
			name:          "repository error",
			key:           "Пятница",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockScheduleRepository)
			mockRepo.On("GetSchedule", tt.key).Return(tt.mockBody, tt.mockFound, tt.mockError)

			service := NewScheduleService(mockRepo)

			body, present, err := service.Lookup(tt.key)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPresent, present)
				assert.Equal(t, tt.mockBody, body)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestScheduleService_Save(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		body          string
		mockError     error
		expectedError bool
	}{
		{
			name: "valid schedule",
			key:  "Понедельник",
			body: "зал",
		},
		{
			name:          "empty key",
			key:           " ",
			body:          "зал",
			expectedError: true,
		},
		{
			name:          "repository error",
			key:           "Вторник",
			body:          "бассейн",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockScheduleRepository)
			validKey := tt.key != " "
			if validKey {
				mockRepo.On("SaveSchedule", tt.key, tt.body).Return(tt.mockError)
			}

			service := NewScheduleService(mockRepo)

			err := service.Save(tt.key, tt.body)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
