// Package dialog is the conversation engine: it routes button presses,
// drives the multi-step text dialogs and renders menus and reports as
// transport-neutral replies.
package dialog

import (
	"errors"
	"fmt"
)

// Kind is the type of an inbound event
type Kind int

const (
	KindButton Kind = iota
	KindText
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindText:
		return "text"
	case KindCommand:
		return "command"
	}
	return "unknown"
}

// Event is one inbound user action. Data holds the button identifier, the
// message text or the command name without the slash.
type Event struct {
	Kind   Kind
	Data   string
	UserID int64
	ChatID int64
}

// Mode tells the transport how to deliver a reply
type Mode int

const (
	// ModeSend posts a new message
	ModeSend Mode = iota
	// ModeEdit replaces the message holding the pressed button
	ModeEdit
	// ModeAlert answers the button press with a popup and changes nothing on screen
	ModeAlert
)

// Button is one inline keyboard button
type Button struct {
	Label string
	ID    string
}

// Reply is one outbound message
type Reply struct {
	Text    string
	Buttons [][]Button
	Mode    Mode
	HTML    bool
}

// Commands understood by the engine
const (
	CommandStart  = "start"
	CommandCancel = "cancel"
)

var (
	// ErrNoActiveDialog is returned for free text while the user is idle
	ErrNoActiveDialog = errors.New("no active dialog")
	// ErrMissingContext means a dialog step lacked data bound by an earlier step
	ErrMissingContext = errors.New("missing dialog context")
)

// ValidationError describes rejected free-text input
type ValidationError struct {
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
