package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionExpirer resets sessions parked in a dialog for too long
type SessionExpirer interface {
	ExpireIdle(maxAge time.Duration) []int64
}

// SessionJanitor returns abandoned dialogs to idle
type SessionJanitor struct {
	sessions SessionExpirer
	timeout  time.Duration
	logger   *zap.Logger
}

// NewSessionJanitor creates a new janitor. A zero timeout disables it.
func NewSessionJanitor(sessions SessionExpirer, timeout time.Duration, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		timeout:  timeout,
		logger:   logger,
	}
}

// Enabled reports whether abandoned dialogs are expired at all
func (j *SessionJanitor) Enabled() bool {
	return j.timeout > 0
}

// Sweep resets dialogs idle for longer than the timeout and returns how many
// were reset
func (j *SessionJanitor) Sweep() int {
	if !j.Enabled() {
		return 0
	}

	expired := j.sessions.ExpireIdle(j.timeout)
	for _, userID := range expired {
		j.logger.Info("Abandoned dialog reset to idle",
			zap.Int64("user_id", userID),
			zap.Duration("timeout", j.timeout),
		)
	}
	return len(expired)
}

// Run sweeps once at startup and then every interval until ctx is done
func (j *SessionJanitor) Run(ctx context.Context, interval time.Duration) {
	if !j.Enabled() || interval <= 0 {
		j.logger.Info("Session janitor disabled")
		return
	}

	j.Sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Session janitor stopped")
			return
		case <-ticker.C:
			if n := j.Sweep(); n > 0 {
				j.logger.Debug("Scheduled sweep finished", zap.Int("reset", n))
			}
		}
	}
}
