package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/pollbot/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
	"github.com/vncsmyrnk/pollbot/internal/core/services"
)

var (
	owner = domain.User{ID: "u1", Name: "owner"}
	alice = domain.User{ID: "u2", Name: "alice"}
)

func newPollHandler(notifier *fakeNotifier) *PollHandler {
	return NewPollHandler(services.NewPollService(memory.NewPollStore()), notifier, nil)
}

func newPoll(t *testing.T, h *PollHandler, id, prompt, options string) {
	t.Helper()
	resp := &fakeResponder{}
	cmd := ports.Command{
		Name:    "poll-new",
		Invoker: owner,
		Args:    strArgs(map[string]string{"id": id, "prompt": prompt, "options": options}),
	}
	require.NoError(t, h.PollNew(context.Background(), cmd, resp))
	require.Len(t, resp.replies, 1)
	require.NotEmpty(t, resp.last(t).rows, "poll creation should attach vote buttons")
}

func TestPollNewCreatesPollWithButtons(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	resp := &fakeResponder{}

	cmd := ports.Command{
		Name:    "poll-new",
		Invoker: owner,
		Args:    strArgs(map[string]string{"id": "p1", "prompt": "Lunch?", "options": "Pizza|Sushi"}),
	}
	require.NoError(t, h.PollNew(context.Background(), cmd, resp))

	r := resp.last(t)
	assert.Equal(t, "Lunch?\nResponses: 0", r.content)
	require.Len(t, r.rows, 1)
	require.Len(t, r.rows[0], 2)
	assert.Equal(t, "Pizza", r.rows[0][0].Label)
	assert.Equal(t, domain.EncodeToken("p1", "Pizza"), r.rows[0][0].Token)
	assert.Equal(t, "Sushi", r.rows[0][1].Label)
	assert.Equal(t, domain.EncodeToken("p1", "Sushi"), r.rows[0][1].Token)
}

func TestPollNewMissingArgument(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	resp := &fakeResponder{}

	cmd := ports.Command{
		Name:    "poll-new",
		Invoker: owner,
		Args:    strArgs(map[string]string{"id": "p1", "options": "A|B"}),
	}
	require.NoError(t, h.PollNew(context.Background(), cmd, resp))

	r := resp.last(t)
	assert.Contains(t, r.content, "prompt")
	assert.Empty(t, r.rows)
}

func TestPollNewDuplicateID(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	newPoll(t, h, "p1", "Lunch?", "A|B")

	resp := &fakeResponder{}
	cmd := ports.Command{
		Name:    "poll-new",
		Invoker: alice,
		Args:    strArgs(map[string]string{"id": "p1", "prompt": "Dinner?", "options": "C|D"}),
	}
	require.NoError(t, h.PollNew(context.Background(), cmd, resp))
	assert.Equal(t, "Poll with that id already exists.", resp.last(t).content)
}

func TestPollButtonRecordsVoteAndUpdatesCount(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	newPoll(t, h, "p1", "Lunch?", "Pizza|Sushi")

	resp := &fakeResponder{}
	click := ports.ButtonClick{
		Token:       domain.EncodeToken("p1", "Pizza"),
		Invoker:     alice,
		MessageText: "Lunch?\nResponses: 0",
	}
	require.NoError(t, h.PollButton(context.Background(), click, resp))

	r := resp.last(t)
	assert.True(t, r.update)
	assert.Equal(t, "Lunch?\nResponses: 1", r.content)
}

func TestPollButtonRevoteKeepsCount(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	newPoll(t, h, "p1", "Lunch?", "Pizza|Sushi")

	ctx := context.Background()
	resp := &fakeResponder{}
	first := ports.ButtonClick{
		Token:       domain.EncodeToken("p1", "Pizza"),
		Invoker:     alice,
		MessageText: "Lunch?\nResponses: 0",
	}
	require.NoError(t, h.PollButton(ctx, first, resp))

	second := first
	second.Token = domain.EncodeToken("p1", "Sushi")
	second.MessageText = resp.last(t).content
	require.NoError(t, h.PollButton(ctx, second, resp))

	assert.Equal(t, "Lunch?\nResponses: 1", resp.last(t).content)
}

func TestPollButtonAppendsMissingTrailer(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	newPoll(t, h, "p1", "Lunch?", "Pizza|Sushi")

	resp := &fakeResponder{}
	click := ports.ButtonClick{
		Token:       domain.EncodeToken("p1", "Pizza"),
		Invoker:     alice,
		MessageText: "Lunch?",
	}
	require.NoError(t, h.PollButton(context.Background(), click, resp))
	assert.Equal(t, "Lunch?\nResponses: 1", resp.last(t).content)
}

func TestPollButtonUnknownPollShowsUnknownCount(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})

	resp := &fakeResponder{}
	click := ports.ButtonClick{
		Token:       domain.EncodeToken("gone", "Pizza"),
		Invoker:     alice,
		MessageText: "Lunch?\nResponses: 3",
	}
	require.NoError(t, h.PollButton(context.Background(), click, resp))
	assert.Equal(t, "Lunch?\nResponses: ?", resp.last(t).content)
}

func TestPollButtonMalformedToken(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})

	resp := &fakeResponder{}
	click := ports.ButtonClick{Token: "no-separator-here", Invoker: alice}
	require.NoError(t, h.PollButton(context.Background(), click, resp))

	r := resp.last(t)
	assert.False(t, r.update)
	assert.Equal(t, "This vote button is malformed.", r.content)
}

func TestPollResultsSendsDirectMessage(t *testing.T) {
	notifier := &fakeNotifier{}
	h := newPollHandler(notifier)
	newPoll(t, h, "p1", "Lunch?", "Pizza|Sushi")

	ctx := context.Background()
	click := ports.ButtonClick{Token: domain.EncodeToken("p1", "Pizza"), Invoker: alice}
	require.NoError(t, h.PollButton(ctx, click, &fakeResponder{}))

	resp := &fakeResponder{}
	cmd := ports.Command{
		Name:    "poll-results",
		Invoker: owner,
		Args:    strArgs(map[string]string{"id": "p1"}),
	}
	require.NoError(t, h.PollResults(ctx, cmd, resp))

	assert.Equal(t, "Results sent by direct message.", resp.last(t).content)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, owner, notifier.messages[0].user)
	assert.Contains(t, notifier.messages[0].content, "Results for poll id p1")
	assert.Contains(t, notifier.messages[0].content, "1\tPizza")
}

func TestPollResultsNotOwner(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	newPoll(t, h, "p1", "Lunch?", "A|B")

	resp := &fakeResponder{}
	cmd := ports.Command{
		Name:    "poll-results",
		Invoker: alice,
		Args:    strArgs(map[string]string{"id": "p1"}),
	}
	require.NoError(t, h.PollResults(context.Background(), cmd, resp))
	assert.Equal(t, "Not an owner of this poll.", resp.last(t).content)
}

func TestPollResultsDeliveryFailureDegrades(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("dms disabled")}
	h := newPollHandler(notifier)
	newPoll(t, h, "p1", "Lunch?", "A|B")

	resp := &fakeResponder{}
	cmd := ports.Command{
		Name:    "poll-results",
		Invoker: owner,
		Args:    strArgs(map[string]string{"id": "p1"}),
	}
	require.NoError(t, h.PollResults(context.Background(), cmd, resp))
	assert.Equal(t, "Failed to send results...", resp.last(t).content)
}

func TestPollCloseAndDelete(t *testing.T) {
	h := newPollHandler(&fakeNotifier{})
	newPoll(t, h, "p1", "Lunch?", "A|B")

	ctx := context.Background()
	idArg := strArgs(map[string]string{"id": "p1"})

	resp := &fakeResponder{}
	require.NoError(t, h.PollClose(ctx, ports.Command{Name: "poll-close", Invoker: alice, Args: idArg}, resp))
	assert.Equal(t, "Not an owner of this poll.", resp.last(t).content)

	require.NoError(t, h.PollClose(ctx, ports.Command{Name: "poll-close", Invoker: owner, Args: idArg}, resp))
	assert.Equal(t, "Poll closed.", resp.last(t).content)

	require.NoError(t, h.PollDelete(ctx, ports.Command{Name: "poll-delete", Invoker: owner, Args: idArg}, resp))
	assert.Equal(t, "Poll deleted.", resp.last(t).content)

	require.NoError(t, h.PollClose(ctx, ports.Command{Name: "poll-close", Invoker: owner, Args: idArg}, resp))
	assert.Equal(t, "No poll with that ID.", resp.last(t).content)
}
