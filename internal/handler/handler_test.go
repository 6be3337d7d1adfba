package handler

import (
	"errors"
	"fmt"
	"testing"

	"daybook/internal/dialog"
	"daybook/internal/router"
	"daybook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Handle(ev dialog.Event) ([]dialog.Reply, error) {
	args := m.Called(ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dialog.Reply), args.Error(1)
}

type outgoing struct {
	text string
	opts []interface{}
}

// fakeContext records what the handler sends; unused methods panic through
// the nil embedded interface
type fakeContext struct {
	tele.Context

	sender   *tele.User
	chat     *tele.Chat
	callback *tele.Callback
	text     string
	editErr  error

	sent      []outgoing
	edited    []outgoing
	responses []*tele.CallbackResponse
}

func newTextContext(text string) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: 7, Username: "tester"},
		chat:   &tele.Chat{ID: 70},
		text:   text,
	}
}

func newCallbackContext(data string) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: 7},
		chat:   &tele.Chat{ID: 70},
		callback: &tele.Callback{
			ID:      "cb1",
			Data:    data,
			Message: &tele.Message{ID: 100},
		},
	}
}

func (f *fakeContext) Sender() *tele.User       { return f.sender }
func (f *fakeContext) Chat() *tele.Chat         { return f.chat }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }
func (f *fakeContext) Text() string             { return f.text }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, outgoing{text: fmt.Sprint(what), opts: opts})
	return nil
}

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.edited = append(f.edited, outgoing{text: fmt.Sprint(what), opts: opts})
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		f.responses = append(f.responses, nil)
		return nil
	}
	f.responses = append(f.responses, resp[0])
	return nil
}

func newTestHandler(engine Engine) *Handler {
	return NewHandler(nil, engine, testutil.NewTestLogger())
}

func TestHandleCallback_EditsMessage(t *testing.T) {
	engine := new(mockEngine)
	engine.On("Handle", dialog.Event{Kind: dialog.KindButton, Data: "menu_events", UserID: 7, ChatID: 70}).
		Return([]dialog.Reply{{
			Text:    "События:",
			Mode:    dialog.ModeEdit,
			Buttons: [][]dialog.Button{{{Label: "Назад", ID: "back_main"}}},
		}}, nil)

	c := newCallbackContext(" menu_events\n")
	require.NoError(t, newTestHandler(engine).handleCallback(c))

	require.Len(t, c.edited, 1)
	assert.Empty(t, c.sent)
	assert.Equal(t, "События:", c.edited[0].text)
	require.Len(t, c.edited[0].opts, 1)
	assert.Equal(t, &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{{{Text: "Назад", Data: "back_main"}}},
	}, c.edited[0].opts[0])
	assert.Equal(t, []*tele.CallbackResponse{nil}, c.responses)
	engine.AssertExpectations(t)
}

func TestHandleCallback_EditFailureFallsBackToSend(t *testing.T) {
	tests := []struct {
		name         string
		editErr      error
		expectedSent int
	}{
		{
			name:         "edit rejected",
			editErr:      errors.New("telegram: message can't be edited (400)"),
			expectedSent: 1,
		},
		{
			name:         "content unchanged",
			editErr:      errors.New("telegram: Bad Request: message is not modified (400)"),
			expectedSent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := new(mockEngine)
			engine.On("Handle", mock.Anything).
				Return([]dialog.Reply{{Text: "Выберите день:", Mode: dialog.ModeEdit}}, nil)

			c := newCallbackContext("menu_schedule")
			c.editErr = tt.editErr
			require.NoError(t, newTestHandler(engine).handleCallback(c))

			assert.Len(t, c.sent, tt.expectedSent)
			assert.Len(t, c.responses, 1)
		})
	}
}

func TestHandleCallback_SendAndHTML(t *testing.T) {
	engine := new(mockEngine)
	engine.On("Handle", mock.Anything).Return([]dialog.Reply{
		{Text: "Записано.", Mode: dialog.ModeSend},
		{Text: "<b>Главное меню</b>", Mode: dialog.ModeSend, HTML: true},
	}, nil)

	c := newCallbackContext("dep_phone_add")
	require.NoError(t, newTestHandler(engine).handleCallback(c))

	require.Len(t, c.sent, 2)
	assert.Empty(t, c.sent[0].opts)
	assert.Equal(t, []interface{}{tele.ModeHTML}, c.sent[1].opts)
	assert.Len(t, c.responses, 1)
}

func TestHandleCallback_Alert(t *testing.T) {
	engine := new(mockEngine)
	engine.On("Handle", mock.Anything).
		Return([]dialog.Reply{{Text: "Ошибка при загрузке данных", Mode: dialog.ModeAlert}}, nil)

	c := newCallbackContext("events_view")
	require.NoError(t, newTestHandler(engine).handleCallback(c))

	require.Len(t, c.responses, 1)
	assert.Equal(t, &tele.CallbackResponse{Text: "Ошибка при загрузке данных", ShowAlert: true}, c.responses[0])
	assert.Empty(t, c.sent)
}

func TestHandleCallback_RoutingMiss(t *testing.T) {
	engine := new(mockEngine)
	engine.On("Handle", mock.Anything).Return(nil, fmt.Errorf("%w: %q", router.ErrNoRoute, "bogus"))

	c := newCallbackContext("bogus")
	require.NoError(t, newTestHandler(engine).handleCallback(c))

	require.Len(t, c.responses, 1)
	assert.True(t, c.responses[0].ShowAlert)
	assert.Empty(t, c.sent)
	assert.Empty(t, c.edited)
}

func TestHandleText(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedEvent dialog.Event
		replies       []dialog.Reply
		err           error
		expectedSent  []string
	}{
		{
			name:          "dialog input",
			input:         "2025-04-17",
			expectedEvent: dialog.Event{Kind: dialog.KindText, Data: "2025-04-17", UserID: 7, ChatID: 70},
			replies:       []dialog.Reply{{Text: "Расписание для 2025-04-17 отсутствует.", Mode: dialog.ModeSend}},
			expectedSent:  []string{"Расписание для 2025-04-17 отсутствует."},
		},
		{
			name:          "edit reply without callback is sent",
			input:         "x",
			expectedEvent: dialog.Event{Kind: dialog.KindText, Data: "x", UserID: 7, ChatID: 70},
			replies:       []dialog.Reply{{Text: "menu", Mode: dialog.ModeEdit}},
			expectedSent:  []string{"menu"},
		},
		{
			name:          "idle text is ignored",
			input:         "привет",
			expectedEvent: dialog.Event{Kind: dialog.KindText, Data: "привет", UserID: 7, ChatID: 70},
			err:           dialog.ErrNoActiveDialog,
		},
		{
			name:          "unknown command is ignored",
			input:         "/help",
			expectedEvent: dialog.Event{Kind: dialog.KindCommand, Data: "help", UserID: 7, ChatID: 70},
			err:           router.ErrNoRoute,
		},
		{
			name:          "engine failure",
			input:         "x",
			expectedEvent: dialog.Event{Kind: dialog.KindText, Data: "x", UserID: 7, ChatID: 70},
			err:           errors.New("boom"),
			expectedSent:  []string{errorText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := new(mockEngine)
			engine.On("Handle", tt.expectedEvent).Return(tt.replies, tt.err)

			c := newTextContext(tt.input)
			require.NoError(t, newTestHandler(engine).handleText(c))

			var sent []string
			for _, s := range c.sent {
				sent = append(sent, s.text)
			}
			assert.Equal(t, tt.expectedSent, sent)
			engine.AssertExpectations(t)
		})
	}
}

func TestHandleCommand(t *testing.T) {
	engine := new(mockEngine)
	engine.On("Handle", dialog.Event{Kind: dialog.KindCommand, Data: dialog.CommandCancel, UserID: 7, ChatID: 70}).
		Return([]dialog.Reply{{Text: "События:", Mode: dialog.ModeSend}}, nil)

	c := newTextContext("/cancel")
	require.NoError(t, newTestHandler(engine).handleCommand(dialog.CommandCancel)(c))

	require.Len(t, c.sent, 1)
	assert.Equal(t, "События:", c.sent[0].text)
	engine.AssertExpectations(t)
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "/start", expected: "start", ok: true},
		{input: "/cancel@daybook_bot", expected: "cancel", ok: true},
		{input: " /help me ", expected: "help", ok: true},
		{input: "/", ok: false},
		{input: "start", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, ok := commandName(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestMarkup(t *testing.T) {
	assert.Nil(t, markup(nil))

	m := markup([][]dialog.Button{
		{{Label: "Пн", ID: "day_Понедельник"}, {Label: "Дата", ID: "day_Дата"}},
		{{Label: "Назад", ID: "back_main"}},
	})

	require.Len(t, m.InlineKeyboard, 2)
	assert.Len(t, m.InlineKeyboard[0], 2)
	assert.Equal(t, "day_Дата", m.InlineKeyboard[0][1].Data)
	assert.Empty(t, m.InlineKeyboard[0][1].Unique)
}
