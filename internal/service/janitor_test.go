package service

import (
	"context"
	"testing"
	"time"

	"daybook/internal/domain"
	"daybook/internal/session"
	"daybook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestSessionJanitor_Sweep(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		expired  []int64
		expected int
	}{
		{
			name:     "disabled",
			timeout:  0,
			expected: 0,
		},
		{
			name:     "nothing expired",
			timeout:  time.Hour,
			expired:  nil,
			expected: 0,
		},
		{
			name:     "two sessions expired",
			timeout:  time.Hour,
			expired:  []int64{1, 2},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(testutil.MockSessionExpirer)
			if tt.timeout > 0 {
				store.On("ExpireIdle", tt.timeout).Return(tt.expired)
			}

			janitor := NewSessionJanitor(store, tt.timeout, testutil.NewTestLogger())

			assert.Equal(t, tt.expected, janitor.Sweep())
			assert.Equal(t, tt.timeout > 0, janitor.Enabled())
			store.AssertExpectations(t)
		})
	}
}

func TestSessionJanitor_RunResetsAbandonedDialogs(t *testing.T) {
	defer goleak.VerifyNone(t)

	clock := testutil.NewClock(time.Time{})
	store := session.NewStore(clock.Now)
	store.Set(1, domain.Session{State: domain.StateQuestionInput})
	store.Set(2, domain.Session{State: domain.StateHoursInput})
	clock.Advance(2 * time.Hour)
	store.Set(2, domain.Session{State: domain.StateHoursInput})

	janitor := NewSessionJanitor(store, time.Hour, testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		janitor.Run(ctx, 10*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		return store.Get(1).IsIdle()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.StateHoursInput, store.Get(2).State)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitor_RunDisabledReturns(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := new(testutil.MockSessionExpirer)
	janitor := NewSessionJanitor(store, 0, testutil.NewTestLogger())

	janitor.Run(context.Background(), time.Second)

	store.AssertNotCalled(t, "ExpireIdle", mock.Anything)
}
