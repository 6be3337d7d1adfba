package main

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"daybook/internal/config"
	"daybook/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func TestBotSettings_ProcessesUserUpdatesInOrder(t *testing.T) {
	cfg := &config.Config{BotToken: "test_token", PollTimeout: time.Second}
	settings := botSettings(cfg, zap.NewNop())
	require.True(t, settings.Synchronous)

	settings.Offline = true
	bot, err := tele.NewBot(settings)
	require.NoError(t, err)

	logger := zap.NewNop()
	bot.Use(middleware.Logger(logger), middleware.Serialize())

	var (
		mu   sync.Mutex
		seen []string
	)
	bot.Handle(tele.OnText, func(c tele.Context) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, c.Text())
		return nil
	})

	var expected []string
	for i := 0; i < 200; i++ {
		text := strconv.Itoa(i)
		expected = append(expected, text)
		bot.ProcessUpdate(tele.Update{
			ID: i,
			Message: &tele.Message{
				ID:     i,
				Text:   text,
				Sender: &tele.User{ID: 1},
				Chat:   &tele.Chat{ID: 1},
			},
		})
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, expected, seen)
}

func TestBotSettings_DateThenDescriptionKeepOrder(t *testing.T) {
	settings := botSettings(&config.Config{BotToken: "test_token", PollTimeout: time.Second}, zap.NewNop())
	settings.Offline = true
	bot, err := tele.NewBot(settings)
	require.NoError(t, err)
	bot.Use(middleware.Serialize())

	var seen []string
	bot.Handle(tele.OnText, func(c tele.Context) error {
		seen = append(seen, c.Text())
		return nil
	})

	for i, text := range []string{"2025-05-09", "парад"} {
		bot.ProcessUpdate(tele.Update{
			ID:      i,
			Message: &tele.Message{ID: i, Text: text, Sender: &tele.User{ID: 7}, Chat: &tele.Chat{ID: 7}},
		})
	}

	// synchronous processing returns only after the handler finished
	assert.Equal(t, []string{"2025-05-09", "парад"}, seen)
}
