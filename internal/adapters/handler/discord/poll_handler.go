package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

const (
	// optionSeparator splits the pipe-joined options argument of poll-new.
	optionSeparator = "|"
	// countLeader prefixes the response counter on a poll message.
	countLeader = "\nResponses: "
)

// PollHandler translates poll commands and vote-button clicks into
// service calls and formats the replies.
type PollHandler struct {
	service  ports.PollService
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewPollHandler(service ports.PollService, notifier ports.Notifier, logger *slog.Logger) *PollHandler {
	return &PollHandler{
		service:  service,
		notifier: notifier,
		logger:   resolveLogger(logger),
	}
}

func (h *PollHandler) PollNew(ctx context.Context, cmd ports.Command, r ports.Responder) error {
	id, err := stringArg(cmd, "id")
	if err != nil {
		return respondValidation(ctx, r, err)
	}
	prompt, err := stringArg(cmd, "prompt")
	if err != nil {
		return respondValidation(ctx, r, err)
	}
	rawOptions, err := stringArg(cmd, "options")
	if err != nil {
		return respondValidation(ctx, r, err)
	}
	options := splitOptions(rawOptions)

	err = h.service.Create(ctx, ports.CreatePollInput{
		ID:      id,
		Prompt:  prompt,
		Options: options,
		Owner:   cmd.Invoker,
	})
	switch {
	case errors.Is(err, domain.ErrPollExists):
		return r.RespondNew(ctx, "Poll with that id already exists.", nil)
	case domain.IsValidation(err):
		return respondValidation(ctx, r, err)
	case err != nil:
		return err
	}

	return r.RespondNew(ctx, prompt+countLeader+"0", []ports.ButtonRow{pollButtons(id, options)})
}

func (h *PollHandler) PollResults(ctx context.Context, cmd ports.Command, r ports.Responder) error {
	id, err := stringArg(cmd, "id")
	if err != nil {
		return respondValidation(ctx, r, err)
	}

	tally, err := h.service.Results(ctx, id, cmd.Invoker)
	switch {
	case errors.Is(err, domain.ErrPollNotFound):
		return r.RespondNew(ctx, "No poll with that ID.", nil)
	case errors.Is(err, domain.ErrNotOwner):
		return r.RespondNew(ctx, "Not an owner of this poll.", nil)
	case err != nil:
		return err
	}

	if err := h.notifier.SendDirectMessage(ctx, cmd.Invoker, formatResults(id, tally)); err != nil {
		h.logger.Error("failed to send results", "poll_id", id, "error", err)
		return r.RespondNew(ctx, "Failed to send results...", nil)
	}
	return r.RespondNew(ctx, "Results sent by direct message.", nil)
}

func (h *PollHandler) PollClose(ctx context.Context, cmd ports.Command, r ports.Responder) error {
	id, err := stringArg(cmd, "id")
	if err != nil {
		return respondValidation(ctx, r, err)
	}

	err = h.service.Close(ctx, id, cmd.Invoker)
	switch {
	case errors.Is(err, domain.ErrPollNotFound):
		return r.RespondNew(ctx, "No poll with that ID.", nil)
	case errors.Is(err, domain.ErrNotOwner):
		return r.RespondNew(ctx, "Not an owner of this poll.", nil)
	case err != nil:
		return err
	}
	return r.RespondNew(ctx, "Poll closed.", nil)
}

func (h *PollHandler) PollDelete(ctx context.Context, cmd ports.Command, r ports.Responder) error {
	id, err := stringArg(cmd, "id")
	if err != nil {
		return respondValidation(ctx, r, err)
	}

	err = h.service.Delete(ctx, id, cmd.Invoker)
	switch {
	case errors.Is(err, domain.ErrPollNotFound):
		return r.RespondNew(ctx, "No poll with that ID.", nil)
	case errors.Is(err, domain.ErrNotOwner):
		return r.RespondNew(ctx, "Not an owner of this poll.", nil)
	case err != nil:
		return err
	}
	return r.RespondNew(ctx, "Poll deleted.", nil)
}

// PollButton records the vote a button click encodes and refreshes the
// response counter on the message hosting the button.
func (h *PollHandler) PollButton(ctx context.Context, click ports.ButtonClick, r ports.Responder) error {
	pollID, option, err := domain.DecodeToken(click.Token)
	if err != nil {
		h.logger.Error("malformed vote token", "token", click.Token, "invoker", click.Invoker.ID)
		return r.RespondNew(ctx, "This vote button is malformed.", nil)
	}

	countText := "?"
	count, err := h.service.Vote(ctx, pollID, click.Invoker, option)
	switch {
	case errors.Is(err, domain.ErrPollNotFound):
		// The poll was deleted out from under its buttons; leave the
		// message up but show an unknown count.
	case err != nil:
		return err
	default:
		countText = strconv.Itoa(count)
	}

	return r.RespondUpdate(ctx, refreshCountTrailer(click.MessageText, countText))
}

func splitOptions(raw string) []string {
	var options []string
	for _, option := range strings.Split(raw, optionSeparator) {
		if strings.TrimSpace(option) == "" {
			continue
		}
		options = append(options, option)
	}
	return options
}

func pollButtons(pollID string, options []string) ports.ButtonRow {
	row := make(ports.ButtonRow, 0, len(options))
	for _, option := range options {
		row = append(row, ports.Button{
			Token: domain.EncodeToken(pollID, option),
			Label: option,
		})
	}
	return row
}

func formatResults(pollID string, tally domain.Tally) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for poll id %s", pollID)
	for option, count := range tally {
		fmt.Fprintf(&b, "\n%d\t%s", count, option)
	}
	return b.String()
}

// refreshCountTrailer rewrites everything after the last count leader,
// appending a leader when the message has none yet.
func refreshCountTrailer(content, count string) string {
	if i := strings.LastIndex(content, countLeader); i >= 0 {
		content = content[:i+len(countLeader)]
	} else {
		content += countLeader
	}
	return content + count
}
