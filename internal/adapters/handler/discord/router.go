package discord

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// HandlerFunc handles one slash-command invocation. Returned errors are
// logged by the router; user-facing conditions (validation, conflicts,
// ownership) are replied to inside the handler and return nil.
type HandlerFunc func(ctx context.Context, cmd ports.Command, r ports.Responder) error

// Router dispatches slash commands to registered handlers and counts
// every dispatch. Unknown command names fall through to a fixed
// "unimplemented" reply.
type Router struct {
	handlers map[string]HandlerFunc
	fallback HandlerFunc
	counter  ports.CommandCounter
	logger   *slog.Logger
}

func NewRouter(counter ports.CommandCounter, logger *slog.Logger) *Router {
	return &Router{
		handlers: make(map[string]HandlerFunc),
		fallback: handleUnknown,
		counter:  counter,
		logger:   resolveLogger(logger),
	}
}

// Handle registers a handler for a command name. Not safe to call after
// dispatching starts.
func (rt *Router) Handle(name string, h HandlerFunc) {
	rt.handlers[name] = h
}

// Dispatch runs the handler for cmd. A handler failure or panic is
// logged and never propagates; the poll state it already applied stays
// applied.
func (rt *Router) Dispatch(ctx context.Context, cmd ports.Command, resp ports.Responder) {
	logger := rt.logger.With(
		"event_id", uuid.NewString(),
		"command", cmd.Name,
		"invoker", cmd.Invoker.ID,
	)
	logger.Info("dispatching command")

	rt.counter.Increment(cmd.Name)

	handler, ok := rt.handlers[cmd.Name]
	if !ok {
		handler = rt.fallback
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("command handler panicked", "panic", rec)
		}
	}()
	if err := handler(ctx, cmd, resp); err != nil {
		logger.Error("command handler failed", "error", err)
	}
}

func handleUnknown(ctx context.Context, _ ports.Command, r ports.Responder) error {
	return r.RespondNew(ctx, "Unimplemented command.", nil)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
