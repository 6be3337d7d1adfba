package dialog

import (
	"errors"
	"fmt"
	"strings"

	"daybook/internal/domain"
	"daybook/internal/metrics"
	"daybook/internal/report"
	"daybook/internal/router"
	"daybook/internal/service"

	"go.uber.org/zap"
)

// dialog describes how a dialog is entered. The cancel target is bound into
// the session on entry and survives later steps of the same dialog.
type dialog struct {
	state    domain.UserState
	prompt   string
	mode     Mode
	cancelTo domain.MenuID
}

var (
	scheduleDialog = dialog{
		state:    domain.StateScheduleInput,
		mode:     ModeSend,
		cancelTo: domain.MenuMain,
	}
	exactDateDialog = dialog{
		state:    domain.StateExactDateInput,
		prompt:   "Введите точную дату в формате YYYY-MM-DD:",
		mode:     ModeEdit,
		cancelTo: domain.MenuMain,
	}
	eventDialog = dialog{
		state:    domain.StateEventDateInput,
		prompt:   "Введите дату события в формате YYYY-MM-DD:",
		mode:     ModeEdit,
		cancelTo: domain.MenuEvents,
	}
	questionDialog = dialog{
		state:    domain.StateQuestionInput,
		prompt:   "Введите ваш вопрос:",
		mode:     ModeEdit,
		cancelTo: domain.MenuQuestions,
	}
	hoursDialog = dialog{
		state:    domain.StateHoursInput,
		prompt:   "Введите количество часов использования телефона за сегодня (например, 3.5):",
		mode:     ModeSend,
		cancelTo: domain.MenuDependencies,
	}
	sweetsDialog = dialog{
		state:    domain.StateSweetsInput,
		prompt:   "Введите, что именно вы съели (например, \"шоколадка Milka\"):",
		mode:     ModeSend,
		cancelTo: domain.MenuDependencies,
	}
	badWordsDialog = dialog{
		state:    domain.StateBadWordsInput,
		prompt:   "Введите плохое слово, которое вы сказали:",
		mode:     ModeSend,
		cancelTo: domain.MenuDependencies,
	}
)

const (
	errorText = "Произошла ошибка. Попробуйте позже."
	emptyText = "Текст не может быть пустым. Попробуйте ещё раз:"
)

// stepFunc consumes one text message in the session's state and returns the
// next session together with the replies to deliver
type stepFunc func(sess domain.Session, ev Event) (domain.Session, []Reply)

func (e *Engine) dialogSteps() map[domain.UserState]stepFunc {
	return map[domain.UserState]stepFunc{
		domain.StateScheduleInput:         e.stepSchedule,
		domain.StateExactDateInput:        e.stepExactDate,
		domain.StateEventDateInput:        e.stepEventDate,
		domain.StateEventDescriptionInput: e.stepEventDescription,
		domain.StateQuestionInput:         e.stepQuestion,
		domain.StateHoursInput:            e.stepHours,
		domain.StateSweetsInput:           e.stepText(domain.CategorySweets, "Записано: %s за %s."),
		domain.StateBadWordsInput:         e.stepText(domain.CategoryBadWords, "Записано: \"%s\" за %s."),
	}
}

// startDialog enters d with its fixed prompt
func (e *Engine) startDialog(d dialog) actionFunc {
	return func(ev Event, _ router.Match) []Reply {
		return e.enter(ev, d, d.prompt, nil)
	}
}

// enter replaces whatever the user was doing with dialog d
func (e *Engine) enter(ev Event, d dialog, prompt string, bind map[string]string) []Reply {
	sess := domain.Session{State: d.state, CancelTo: d.cancelTo}
	for k, v := range bind {
		sess = sess.With(k, v)
	}
	e.sessions.Set(ev.UserID, sess)

	e.metrics.Dialog(string(d.state), metrics.OutcomeStarted)
	e.logger.Info("Dialog started",
		zap.Int64("user_id", ev.UserID),
		zap.String("state", string(d.state)),
	)

	return []Reply{{Text: prompt, Mode: d.mode}}
}

// scheduleInputEntry starts schedule input for add_<key> or edit_<key>
func (e *Engine) scheduleInputEntry(ev Event, m router.Match) []Reply {
	key := m.Payload

	prompt := fmt.Sprintf("Введите расписание для %s:", key)
	if m.Prefix == prefixEdit {
		body, _, err := e.svc.Schedule.Lookup(key)
		if err != nil {
			return e.loadFailed(ev, err)
		}
		if body == "" {
			body = "(пусто)"
		}
		prompt = fmt.Sprintf("Введите новое расписание для %s.\nТекущее: %s\nВведите новый текст:", key, body)
	}

	return e.enter(ev, scheduleDialog, prompt, map[string]string{domain.ContextSelectedDay: key})
}

func idle() domain.Session {
	return domain.Session{State: domain.StateIdle}
}

// complete ends the dialog with a confirmation followed by the main menu
func (e *Engine) complete(sess domain.Session, ev Event, confirmation string) (domain.Session, []Reply) {
	e.metrics.Dialog(string(sess.State), metrics.OutcomeCompleted)
	e.logger.Info("Dialog completed",
		zap.Int64("user_id", ev.UserID),
		zap.String("state", string(sess.State)),
	)
	return idle(), []Reply{send(confirmation), asNew(mainMenu())}
}

// fail ends the dialog with a user-visible error
func (e *Engine) fail(sess domain.Session, ev Event, err error, text string) (domain.Session, []Reply) {
	e.metrics.Dialog(string(sess.State), metrics.OutcomeFailed)
	if errors.Is(err, ErrMissingContext) {
		e.logger.Warn("Dialog step without required context",
			zap.Error(err),
			zap.Int64("user_id", ev.UserID),
			zap.String("state", string(sess.State)),
		)
	} else {
		e.logger.Error("Dialog step failed",
			zap.Error(err),
			zap.Int64("user_id", ev.UserID),
			zap.String("state", string(sess.State)),
		)
	}
	return idle(), []Reply{send(text)}
}

// reprompt keeps the session in its state and asks again
func (e *Engine) reprompt(sess domain.Session, ev Event, verr *ValidationError, text string) (domain.Session, []Reply) {
	e.metrics.ValidationError(string(sess.State))
	e.logger.Debug("Rejected dialog input",
		zap.Error(verr),
		zap.Int64("user_id", ev.UserID),
		zap.String("state", string(sess.State)),
	)
	return sess, []Reply{send(text)}
}

func (e *Engine) stepSchedule(sess domain.Session, ev Event) (domain.Session, []Reply) {
	key, ok := sess.Value(domain.ContextSelectedDay)
	if !ok || key == "" {
		return e.fail(sess, ev, fmt.Errorf("%w: %s", ErrMissingContext, domain.ContextSelectedDay), "Ошибка: день не выбран.")
	}

	text := strings.TrimSpace(ev.Data)
	if err := e.svc.Schedule.Save(key, text); err != nil {
		return e.fail(sess, ev, err, errorText)
	}

	return e.complete(sess, ev, fmt.Sprintf("Расписание для %s установлено:\n\n%s", key, text))
}

func (e *Engine) stepExactDate(sess domain.Session, ev Event) (domain.Session, []Reply) {
	text := strings.TrimSpace(ev.Data)
	date, err := domain.ParseDate(text)
	if err != nil {
		return e.reprompt(sess, ev,
			&ValidationError{Field: "date", Input: text, Err: err},
			"Неверный формат даты. Введите дату в формате YYYY-MM-DD:",
		)
	}

	key := domain.FormatDate(date)
	_, present, err := e.svc.Schedule.Lookup(key)
	if err != nil {
		return e.fail(sess, ev, err, errorText)
	}

	e.metrics.Dialog(string(sess.State), metrics.OutcomeCompleted)
	return idle(), []Reply{asNew(dayMenu(key, present))}
}

func (e *Engine) stepEventDate(sess domain.Session, ev Event) (domain.Session, []Reply) {
	text := strings.TrimSpace(ev.Data)
	date, err := domain.ParseDate(text)
	if err != nil {
		return e.reprompt(sess, ev,
			&ValidationError{Field: "date", Input: text, Err: err},
			"Неверный формат даты. Попробуйте ещё раз (YYYY-MM-DD):",
		)
	}

	next := sess.With(domain.ContextEventDate, domain.FormatDate(date))
	next.State = domain.StateEventDescriptionInput
	return next, []Reply{send("Введите описание события:")}
}

func (e *Engine) stepEventDescription(sess domain.Session, ev Event) (domain.Session, []Reply) {
	raw, ok := sess.Value(domain.ContextEventDate)
	if !ok {
		return e.fail(sess, ev, fmt.Errorf("%w: %s", ErrMissingContext, domain.ContextEventDate), "Ошибка: дата не задана.")
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return e.fail(sess, ev, fmt.Errorf("%w: %v", ErrMissingContext, err), "Ошибка: дата не задана.")
	}

	description := strings.TrimSpace(ev.Data)
	event, err := e.svc.Events.Add(date, description, ev.ChatID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			return e.reprompt(sess, ev, &ValidationError{Field: "description", Input: ev.Data, Err: err}, emptyText)
		}
		return e.fail(sess, ev, err, errorText)
	}

	return e.complete(sess, ev, fmt.Sprintf("Событие добавлено: %s на %s", event.Description, event.DateString()))
}

func (e *Engine) stepQuestion(sess domain.Session, ev Event) (domain.Session, []Reply) {
	text := strings.TrimSpace(ev.Data)
	if err := e.svc.Questions.Add(text); err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			return e.reprompt(sess, ev, &ValidationError{Field: "question", Input: ev.Data, Err: err}, emptyText)
		}
		return e.fail(sess, ev, err, errorText)
	}
	return e.complete(sess, ev, "Вопрос добавлен.")
}

func (e *Engine) stepHours(sess domain.Session, ev Event) (domain.Session, []Reply) {
	text := strings.TrimSpace(ev.Data)
	hours, err := service.ParseHours(text)
	if err != nil {
		return e.reprompt(sess, ev,
			&ValidationError{Field: "hours", Input: text, Err: err},
			"Ошибка: введите число (например, 3.5). Попробуйте ещё раз:",
		)
	}

	date, err := e.svc.Dependencies.LogHours(hours)
	if err != nil {
		return e.fail(sess, ev, err, errorText)
	}
	return e.complete(sess, ev, fmt.Sprintf("Записано: %s часов за %s.", report.FormatHours(hours), date))
}

// stepText logs a free-text entry; confirmation gets the text and the date
func (e *Engine) stepText(category domain.Category, confirmation string) stepFunc {
	return func(sess domain.Session, ev Event) (domain.Session, []Reply) {
		text := strings.TrimSpace(ev.Data)
		date, err := e.svc.Dependencies.LogText(category, text)
		if err != nil {
			return e.fail(sess, ev, err, errorText)
		}
		return e.complete(sess, ev, fmt.Sprintf(confirmation, text, date))
	}
}
