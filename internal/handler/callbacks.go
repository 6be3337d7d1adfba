package handler

import (
	"strings"
	"unicode"

	"daybook/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Pressing the same button twice renders identical content
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil || c.Sender() == nil {
		h.logger.Warn("handleCallback: callback or sender is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	return h.dispatch(c, newEvent(c, dialog.KindButton, data))
}

// deliver renders replies in order. Delivery failures are logged and do not
// undo what the engine already committed.
func (h *Handler) deliver(c tele.Context, replies []dialog.Reply) error {
	userID := c.Sender().ID
	callback := c.Callback()
	answered := callback == nil

	for _, r := range replies {
		opts := sendOptions(r)

		var err error
		switch r.Mode {
		case dialog.ModeAlert:
			if callback == nil {
				err = c.Send(r.Text, opts...)
				break
			}
			err = c.Respond(&tele.CallbackResponse{Text: r.Text, ShowAlert: true})
			answered = true

		case dialog.ModeEdit:
			if callback == nil || callback.Message == nil {
				err = c.Send(r.Text, opts...)
				break
			}
			if editErr := c.Edit(r.Text, opts...); editErr != nil {
				answered = true
				if h.handleEditError(editErr, c, userID) == nil {
					continue
				}
				err = c.Send(r.Text, opts...)
			}

		default:
			err = c.Send(r.Text, opts...)
		}

		if err != nil {
			h.logger.Error("Failed to deliver reply",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int("mode", int(r.Mode)),
			)
		}
	}

	if !answered {
		return c.Respond()
	}
	return nil
}
