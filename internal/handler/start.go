package handler

import (
	"errors"
	"strings"

	"daybook/internal/dialog"
	"daybook/internal/router"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const errorText = "Произошла ошибка. Попробуйте позже."

// handleCommand handles a registered slash command
func (h *Handler) handleCommand(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil {
			return nil
		}

		h.logger.Info("Command received",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("username", c.Sender().Username),
			zap.String("command", name),
		)
		return h.dispatch(c, newEvent(c, dialog.KindCommand, name))
	}
}

// handleText handles all text messages; unregistered commands arrive here too
func (h *Handler) handleText(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}

	text := c.Text()
	if name, ok := commandName(text); ok {
		return h.dispatch(c, newEvent(c, dialog.KindCommand, name))
	}
	return h.dispatch(c, newEvent(c, dialog.KindText, text))
}

// commandName extracts "start" from "/start@bot payload"
func commandName(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	name := strings.TrimPrefix(text, "/")
	if i := strings.IndexAny(name, " \n"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	return name, name != ""
}

// dispatch runs the event through the engine and delivers the replies
func (h *Handler) dispatch(c tele.Context, ev dialog.Event) error {
	replies, err := h.engine.Handle(ev)
	switch {
	case err == nil:
		return h.deliver(c, replies)

	case errors.Is(err, dialog.ErrNoActiveDialog):
		h.logger.Debug("Ignoring text outside of a dialog",
			zap.Int64("user_id", ev.UserID),
			zap.Error(err),
		)
		return nil

	case errors.Is(err, router.ErrNoRoute):
		h.logger.Warn("Unhandled update",
			zap.Int64("user_id", ev.UserID),
			zap.String("kind", ev.Kind.String()),
			zap.String("data", ev.Data),
		)
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Неизвестная команда", ShowAlert: true})
		}
		return nil
	}

	h.logger.Error("Failed to handle update",
		zap.Error(err),
		zap.Int64("user_id", ev.UserID),
		zap.String("kind", ev.Kind.String()),
	)
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: errorText, ShowAlert: true})
	}
	return c.Send(errorText)
}
