package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

type reply struct {
	content string
	rows    []ports.ButtonRow
	update  bool
}

type fakeResponder struct {
	replies []reply
	err     error
}

func (f *fakeResponder) RespondNew(_ context.Context, content string, rows []ports.ButtonRow) error {
	f.replies = append(f.replies, reply{content: content, rows: rows})
	return f.err
}

func (f *fakeResponder) RespondUpdate(_ context.Context, content string) error {
	f.replies = append(f.replies, reply{content: content, update: true})
	return f.err
}

func (f *fakeResponder) last(t *testing.T) reply {
	t.Helper()
	require.NotEmpty(t, f.replies, "expected a reply to have been sent")
	return f.replies[len(f.replies)-1]
}

type directMessage struct {
	user    domain.User
	content string
}

type fakeNotifier struct {
	messages []directMessage
	err      error
}

func (f *fakeNotifier) SendDirectMessage(_ context.Context, user domain.User, content string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, directMessage{user: user, content: content})
	return nil
}

func strArgs(values map[string]string) map[string]ports.Arg {
	args := make(map[string]ports.Arg, len(values))
	for name, value := range values {
		args[name] = ports.Arg{Kind: ports.ArgString, Str: value}
	}
	return args
}
