package ports

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

// ArgKind discriminates the value carried by a command argument.
type ArgKind int

const (
	ArgString ArgKind = iota
	ArgUser
)

// Arg is one named argument of an invoked command.
type Arg struct {
	Kind ArgKind
	Str  string
	User domain.User
}

// Command is a slash-command invocation delivered by the gateway.
type Command struct {
	Name    string
	Invoker domain.User
	Args    map[string]Arg
}

// ButtonClick is a vote-button interaction delivered by the gateway.
// MessageText is the current content of the message hosting the button.
type ButtonClick struct {
	Token       string
	Invoker     domain.User
	MessageText string
}

// Button is one vote button attached to a poll message.
type Button struct {
	Token string
	Label string
}

// ButtonRow is a horizontal row of buttons.
type ButtonRow []Button

// Responder delivers replies for a single inbound event.
type Responder interface {
	// RespondNew creates a fresh visible reply to the event.
	RespondNew(ctx context.Context, content string, rows []ButtonRow) error
	// RespondUpdate edits the message that hosted the clicked button.
	RespondUpdate(ctx context.Context, content string) error
}

// Notifier sends messages outside the event reply flow.
type Notifier interface {
	SendDirectMessage(ctx context.Context, user domain.User, content string) error
}
