package testutil

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// ReferenceDay is the "today" most tests run at
var ReferenceDay = time.Date(2025, 4, 17, 12, 0, 0, 0, time.UTC)

// Clock provides a controllable time source for tests
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock set to start, or ReferenceDay when start is zero
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceDay
	}
	return &Clock{current: start}
}

// Now returns the current instant tracked by the clock
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward and returns the updated time
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}

// DaysAgo returns the YYYY-MM-DD date n days before the clock's day
func (c *Clock) DaysAgo(n int) string {
	return c.Now().AddDate(0, 0, -n).Format("2006-01-02")
}
