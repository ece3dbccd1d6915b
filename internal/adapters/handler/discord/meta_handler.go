package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// MetaHandler serves the utility commands that do not touch poll state.
type MetaHandler struct {
	counter ports.CommandCounter
}

func NewMetaHandler(counter ports.CommandCounter) *MetaHandler {
	return &MetaHandler{counter: counter}
}

func (h *MetaHandler) Ping(ctx context.Context, _ ports.Command, r ports.Responder) error {
	return r.RespondNew(ctx, "pong", nil)
}

func (h *MetaHandler) UserID(ctx context.Context, cmd ports.Command, r ports.Responder) error {
	user, err := userArg(cmd, "user")
	if err != nil {
		return respondValidation(ctx, r, err)
	}
	return r.RespondNew(ctx, fmt.Sprintf("%s's id is %s", user.Name, user.ID), nil)
}

func (h *MetaHandler) Stats(ctx context.Context, _ ports.Command, r ports.Responder) error {
	report := h.counter.Report()

	names := make([]string, 0, len(report))
	for name := range report {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Command usage:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n%s\t%d", name, report[name])
	}
	return r.RespondNew(ctx, b.String(), nil)
}
