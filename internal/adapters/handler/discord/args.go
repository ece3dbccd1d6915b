package discord

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

func stringArg(cmd ports.Command, name string) (string, error) {
	arg, ok := cmd.Args[name]
	if !ok {
		return "", &domain.ValidationError{Field: name, Reason: "is required"}
	}
	if arg.Kind != ports.ArgString {
		return "", &domain.ValidationError{Field: name, Reason: "must be a string"}
	}
	return arg.Str, nil
}

func userArg(cmd ports.Command, name string) (domain.User, error) {
	arg, ok := cmd.Args[name]
	if !ok {
		return domain.User{}, &domain.ValidationError{Field: name, Reason: "is required"}
	}
	if arg.Kind != ports.ArgUser {
		return domain.User{}, &domain.ValidationError{Field: name, Reason: "must be a user"}
	}
	return arg.User, nil
}

// respondValidation surfaces an argument error as a plain reply to the
// invoker instead of failing the dispatch.
func respondValidation(ctx context.Context, r ports.Responder, err error) error {
	return r.RespondNew(ctx, err.Error(), nil)
}
