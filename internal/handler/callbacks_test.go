package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "menu identifier", input: "menu_schedule", expected: "menu_schedule"},
		{name: "exact date control", input: "day_Дата", expected: "day_Дата"},
		{name: "cyrillic weekday payload", input: "add_Понедельник", expected: "add_Понедельник"},
		{name: "iso date payload", input: "view_2025-04-17", expected: "view_2025-04-17"},
		{name: "surrounding whitespace", input: "  dep_phone_view \n", expected: "dep_phone_view"},
		{name: "telebot unique prefix", input: "\fedit_Среда", expected: "edit_Среда"},
		{name: "embedded control characters", input: "day_\x00Втор\x01ник", expected: "day_Вторник"},
		{name: "only control characters", input: "\f\x07", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
