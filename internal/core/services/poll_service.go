package services

import (
	"context"
	"strings"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// maxOptions is the platform limit on buttons per action row.
const maxOptions = 5

type pollService struct {
	store ports.PollStore
}

func NewPollService(store ports.PollStore) ports.PollService {
	return &pollService{
		store: store,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	if strings.Contains(input.ID, domain.TokenSeparator) {
		return &domain.ValidationError{Field: "id", Reason: "must not contain " + domain.TokenSeparator}
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return &domain.ValidationError{Field: "prompt", Reason: "is required"}
	}

	options := make([]string, 0, len(input.Options))
	for _, option := range input.Options {
		if strings.TrimSpace(option) == "" {
			continue
		}
		options = append(options, option)
	}
	if len(options) == 0 {
		return &domain.ValidationError{Field: "options", Reason: "at least one option is required"}
	}
	if len(options) > maxOptions {
		return &domain.ValidationError{Field: "options", Reason: "at most 5 options are allowed"}
	}

	return s.store.Create(ctx, input.ID, input.Owner, options)
}

func (s *pollService) Vote(ctx context.Context, pollID string, voter domain.User, option string) (int, error) {
	count, ok := s.store.RecordVote(ctx, pollID, voter, option)
	if !ok {
		return 0, domain.ErrPollNotFound
	}
	return count, nil
}

func (s *pollService) Close(ctx context.Context, pollID string, requester domain.User) error {
	return s.store.Close(ctx, pollID, requester)
}

func (s *pollService) Delete(ctx context.Context, pollID string, requester domain.User) error {
	return s.store.Delete(ctx, pollID, requester)
}

func (s *pollService) Results(ctx context.Context, pollID string, requester domain.User) (domain.Tally, error) {
	view, ok := s.store.Snapshot(ctx, pollID)
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	if view.Owner.ID != requester.ID {
		return nil, domain.ErrNotOwner
	}
	return view.Tally(), nil
}

func (s *pollService) Snapshot(ctx context.Context, pollID string) (domain.PollView, error) {
	view, ok := s.store.Snapshot(ctx, pollID)
	if !ok {
		return domain.PollView{}, domain.ErrPollNotFound
	}
	return view, nil
}
