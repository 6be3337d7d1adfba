package dialog

import (
	"fmt"
	"strings"

	"daybook/internal/domain"
	"daybook/internal/metrics"
	"daybook/internal/router"
	"daybook/internal/service"
	"daybook/internal/session"

	"go.uber.org/zap"
)

// Services bundles the domain services the engine drives
type Services struct {
	Schedule     *service.ScheduleService
	Events       *service.EventService
	Questions    *service.QuestionService
	Dependencies *service.DependencyService
}

// Engine turns events into replies. It owns no transport; callers must
// serialize events of the same user.
type Engine struct {
	sessions *session.Store
	svc      Services
	router   *router.Router
	actions  map[router.Action]actionFunc
	steps    map[domain.UserState]stepFunc
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewEngine creates an engine. m may be nil.
func NewEngine(sessions *session.Store, svc Services, m *metrics.Metrics, logger *zap.Logger) (*Engine, error) {
	e := &Engine{
		sessions: sessions,
		svc:      svc,
		actions:  make(map[router.Action]actionFunc),
		metrics:  m,
		logger:   logger,
	}

	routes := e.routes()
	rules := make([]router.Rule, 0, len(routes))
	for _, r := range routes {
		rules = append(rules, r.rule)
		e.actions[r.rule.Action] = r.handle
	}

	rt, err := router.New(rules...)
	if err != nil {
		return nil, fmt.Errorf("build routes: %w", err)
	}
	e.router = rt
	e.steps = e.dialogSteps()

	return e, nil
}

// Handle processes one event. It returns router.ErrNoRoute for unknown
// identifiers and commands, and ErrNoActiveDialog for text while idle.
func (e *Engine) Handle(ev Event) ([]Reply, error) {
	category := ""
	if ev.Kind == KindButton {
		category, _, _ = router.Parse(ev.Data)
	}
	e.metrics.Event(ev.Kind.String(), category)

	switch ev.Kind {
	case KindButton:
		return e.handleButton(ev)
	case KindText:
		return e.handleText(ev)
	case KindCommand:
		return e.handleCommand(ev)
	}
	return nil, fmt.Errorf("unknown event kind %d", ev.Kind)
}

func (e *Engine) handleButton(ev Event) ([]Reply, error) {
	match, err := e.router.Route(ev.Data)
	if err != nil {
		e.metrics.RoutingMiss()
		return nil, err
	}

	handle, ok := e.actions[match.Action]
	if !ok {
		return nil, fmt.Errorf("action %q has no handler", match.Action)
	}

	e.logger.Debug("Routed button",
		zap.Int64("user_id", ev.UserID),
		zap.String("data", ev.Data),
		zap.String("action", string(match.Action)),
	)
	return handle(ev, match), nil
}

func (e *Engine) handleText(ev Event) ([]Reply, error) {
	sess := e.sessions.Get(ev.UserID)
	if sess.IsIdle() {
		return nil, ErrNoActiveDialog
	}

	step, ok := e.steps[sess.State]
	if !ok {
		e.logger.Warn("Session in unknown state, resetting",
			zap.Int64("user_id", ev.UserID),
			zap.String("state", string(sess.State)),
		)
		e.sessions.Reset(ev.UserID)
		return nil, fmt.Errorf("%w: unknown state %q", ErrNoActiveDialog, sess.State)
	}

	next, replies := step(sess, ev)
	e.sessions.Set(ev.UserID, next)
	return replies, nil
}

func (e *Engine) handleCommand(ev Event) ([]Reply, error) {
	switch ev.Data {
	case CommandStart:
		e.sessions.Reset(ev.UserID)
		return []Reply{asNew(mainMenu())}, nil

	case CommandCancel:
		sess := e.sessions.Get(ev.UserID)
		if sess.IsIdle() {
			return []Reply{asNew(mainMenu())}, nil
		}
		e.sessions.Reset(ev.UserID)

		e.metrics.Dialog(string(sess.State), metrics.OutcomeCancelled)
		e.logger.Info("Dialog cancelled",
			zap.Int64("user_id", ev.UserID),
			zap.String("state", string(sess.State)),
			zap.String("cancel_to", string(sess.CancelTo)),
		)
		return []Reply{asNew(renderMenu(sess.CancelTo))}, nil
	}

	return nil, fmt.Errorf("%w: /%s", router.ErrNoRoute, ev.Data)
}

// loadFailed answers a button press whose data could not be loaded
func (e *Engine) loadFailed(ev Event, err error) []Reply {
	e.logger.Error("Failed to load data",
		zap.Error(err),
		zap.Int64("user_id", ev.UserID),
		zap.String("data", ev.Data),
	)
	return []Reply{{Text: "Ошибка при загрузке данных", Mode: ModeAlert}}
}

func (e *Engine) showMenu(id domain.MenuID) actionFunc {
	return func(Event, router.Match) []Reply {
		return []Reply{renderMenu(id)}
	}
}

func (e *Engine) daySelected(ev Event, m router.Match) []Reply {
	_, present, err := e.svc.Schedule.Lookup(m.Payload)
	if err != nil {
		return e.loadFailed(ev, err)
	}
	return []Reply{dayMenu(m.Payload, present)}
}

func (e *Engine) viewSchedule(ev Event, m router.Match) []Reply {
	body, present, err := e.svc.Schedule.Lookup(m.Payload)
	if err != nil {
		return e.loadFailed(ev, err)
	}
	if !present {
		body = "Нет расписания."
	}
	return []Reply{{
		Text:    fmt.Sprintf("Расписание на %s:\n\n%s", m.Payload, body),
		Mode:    ModeEdit,
		Buttons: backTo(idMenuSchedule),
	}}
}

func (e *Engine) viewEvents(ev Event, _ router.Match) []Reply {
	events, err := e.svc.Events.List()
	if err != nil {
		return e.loadFailed(ev, err)
	}

	text := "Нет запланированных событий."
	if len(events) > 0 {
		var b strings.Builder
		b.WriteString("Запланированные события:\n")
		for _, event := range events {
			fmt.Fprintf(&b, "%s: %s\n", event.DateString(), event.Description)
		}
		text = b.String()
	}
	return []Reply{{Text: text, Mode: ModeEdit, Buttons: backTo(idMenuEvents)}}
}

func (e *Engine) viewQuestions(ev Event, _ router.Match) []Reply {
	questions, err := e.svc.Questions.List()
	if err != nil {
		return e.loadFailed(ev, err)
	}

	text := "Нет входящих вопросов."
	if len(questions) > 0 {
		var b strings.Builder
		b.WriteString("Входящие:\n")
		for i, q := range questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
		text = b.String()
	}
	return []Reply{{Text: text, Mode: ModeEdit, Buttons: backTo(idMenuQuestions)}}
}

func (e *Engine) viewUsageReport(ev Event, _ router.Match) []Reply {
	text, err := e.svc.Dependencies.UsageReport()
	if err != nil {
		return e.loadFailed(ev, err)
	}
	return []Reply{{Text: text, HTML: true, Mode: ModeEdit, Buttons: backTo(idPhoneMenu)}}
}

func (e *Engine) viewListing(category domain.Category, backID string) actionFunc {
	return func(ev Event, _ router.Match) []Reply {
		text, err := e.svc.Dependencies.WeeklyReport(category)
		if err != nil {
			return e.loadFailed(ev, err)
		}
		return []Reply{{Text: text, HTML: true, Mode: ModeEdit, Buttons: backTo(backID)}}
	}
}
