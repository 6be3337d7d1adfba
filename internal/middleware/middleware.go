// Package middleware holds telebot middleware shared by all handlers.
package middleware

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequestIDKey is the context key holding the update's request id
const RequestIDKey = "request_id"

// Serialize keeps the updates of one user from overlapping. It does not
// order them: arrival order holds only when the bot processes updates
// synchronously.
func Serialize() tele.MiddlewareFunc {
	return newUserLocks().middleware
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// userLocks hands out one mutex per user and drops it once nobody holds or
// waits for it
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*userLock)}
}

// acquire locks userID and returns the matching unlock
func (l *userLocks) acquire(userID int64) func() {
	l.mu.Lock()
	lock, exists := l.locks[userID]
	if !exists {
		lock = &userLock{}
		l.locks[userID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, userID)
		}
	}
}

func (l *userLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func (l *userLocks) middleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return next(c)
		}

		unlock := l.acquire(sender.ID)
		defer unlock()
		return next(c)
	}
}

// Logger tags every update with a request id and logs its outcome
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			requestID := uuid.NewString()
			c.Set(RequestIDKey, requestID)

			err := next(c)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.Duration("duration", time.Since(start)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
