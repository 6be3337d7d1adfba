// Package session keeps per-user dialog state in memory for the lifetime of
// the process.
package session

import (
	"sync"
	"time"

	"daybook/internal/domain"
)

// Store maps user ids to sessions
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
	now      func() time.Time
}

// NewStore creates an empty store. now stamps UpdatedAt; nil means time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[int64]domain.Session),
		now:      now,
	}
}

// Get returns user's session, creating an idle one on first access
func (s *Store) Get(userID int64) domain.Session {
	s.mu.RLock()
	sess, exists := s.sessions[userID]
	s.mu.RUnlock()
	if exists {
		return sess.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another event may have created it between the locks
	if sess, exists = s.sessions[userID]; exists {
		return sess.Clone()
	}
	sess = domain.NewSession(s.now())
	s.sessions[userID] = sess
	return sess.Clone()
}

// Set stores user's session
func (s *Store) Set(userID int64, sess domain.Session) {
	sess = sess.Clone()
	sess.UpdatedAt = s.now()
	if sess.State == "" {
		sess.State = domain.StateIdle
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Reset returns user to idle state, dropping held context
func (s *Store) Reset(userID int64) {
	s.Set(userID, domain.NewSession(s.now()))
}

// Len returns the number of known users
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ExpireIdle resets every non-idle session untouched for longer than maxAge
// and returns the affected user ids
func (s *Store) ExpireIdle(maxAge time.Duration) []int64 {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []int64
	for userID, sess := range s.sessions {
		if sess.IsIdle() || now.Sub(sess.UpdatedAt) <= maxAge {
			continue
		}
		s.sessions[userID] = domain.NewSession(now)
		expired = append(expired, userID)
	}
	return expired
}
