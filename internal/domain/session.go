package domain

import "time"

// UserState represents user's current dialog state
type UserState string

const (
	StateIdle                  UserState = "idle"
	StateScheduleInput         UserState = "schedule_input"
	StateExactDateInput        UserState = "exact_date_input"
	StateEventDateInput        UserState = "event_date_input"
	StateEventDescriptionInput UserState = "event_description_input"
	StateQuestionInput         UserState = "question_input"
	StateHoursInput            UserState = "hours_input"
	StateSweetsInput           UserState = "sweets_input"
	StateBadWordsInput         UserState = "badwords_input"
)

// Session context keys
const (
	ContextSelectedDay = "selected_day"
	ContextEventDate   = "event_date"
)

// MenuID names a menu screen that can be rendered on its own
type MenuID string

const (
	MenuMain         MenuID = "main"
	MenuSchedule     MenuID = "schedule"
	MenuEvents       MenuID = "events"
	MenuQuestions    MenuID = "questions"
	MenuDependencies MenuID = "dependencies"
	MenuPhone        MenuID = "phone"
	MenuSweets       MenuID = "sweets"
	MenuBadWords     MenuID = "badwords"
)

// Session holds transient per-user dialog data
type Session struct {
	State     UserState
	Context   map[string]string
	CancelTo  MenuID // menu shown when the active dialog is cancelled
	UpdatedAt time.Time
}

// NewSession returns an idle session
func NewSession(now time.Time) Session {
	return Session{State: StateIdle, UpdatedAt: now}
}

// IsIdle reports whether no dialog is active
func (s Session) IsIdle() bool {
	return s.State == "" || s.State == StateIdle
}

// Value returns a context value and whether it is set
func (s Session) Value(key string) (string, bool) {
	v, ok := s.Context[key]
	return v, ok
}

// With returns a copy of the session with key bound to value
func (s Session) With(key, value string) Session {
	out := s.Clone()
	if out.Context == nil {
		out.Context = make(map[string]string, 1)
	}
	out.Context[key] = value
	return out
}

// Clone returns a deep copy of the session
func (s Session) Clone() Session {
	out := s
	if s.Context != nil {
		out.Context = make(map[string]string, len(s.Context))
		for k, v := range s.Context {
			out.Context[k] = v
		}
	}
	return out
}
