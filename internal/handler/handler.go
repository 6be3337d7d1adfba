package handler

import (
	"daybook/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Engine turns user events into replies
type Engine interface {
	Handle(ev dialog.Event) ([]dialog.Reply, error)
}

// Handler connects telebot updates to the conversation engine
type Handler struct {
	bot    *tele.Bot
	engine Engine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, engine Engine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		engine: engine,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleCommand(dialog.CommandStart))
	h.bot.Handle("/cancel", h.handleCommand(dialog.CommandCancel))

	// Text messages, including commands nobody registered
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// newEvent builds an engine event from the update
func newEvent(c tele.Context, kind dialog.Kind, data string) dialog.Event {
	ev := dialog.Event{Kind: kind, Data: data}
	if sender := c.Sender(); sender != nil {
		ev.UserID = sender.ID
	}
	if chat := c.Chat(); chat != nil {
		ev.ChatID = chat.ID
	}
	return ev
}

// markup converts engine buttons into an inline keyboard. Buttons carry the
// identifier as plain callback data, without telebot's unique prefix.
func markup(buttons [][]dialog.Button) *tele.ReplyMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tele.InlineButton, 0, len(buttons))
	for _, r := range buttons {
		row := make([]tele.InlineButton, 0, len(r))
		for _, b := range r {
			row = append(row, tele.InlineButton{Text: b.Label, Data: b.ID})
		}
		rows = append(rows, row)
	}
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// sendOptions returns the telebot options of a reply
func sendOptions(r dialog.Reply) []interface{} {
	var opts []interface{}
	if m := markup(r.Buttons); m != nil {
		opts = append(opts, m)
	}
	if r.HTML {
		opts = append(opts, tele.ModeHTML)
	}
	return opts
}
