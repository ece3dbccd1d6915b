package ports

import (
	"context"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

// PollStore owns all poll records. Every operation is safe under
// arbitrary concurrent callers; operations on the same poll id are
// linearized, operations on different ids never contend.
type PollStore interface {
	// Create inserts a new open poll iff no record with that id exists.
	// Returns domain.ErrPollExists when another record won the id.
	Create(ctx context.Context, id string, owner domain.User, options []string) error

	// Snapshot returns an immutable copy of the poll, or ok=false when
	// no such poll exists.
	Snapshot(ctx context.Context, id string) (view domain.PollView, ok bool)

	// RecordVote upserts the voter's choice while the poll is open. A
	// vote on a closed poll mutates nothing. Either way the current
	// distinct-voter count is returned; ok=false means no such poll.
	RecordVote(ctx context.Context, id string, voter domain.User, option string) (count int, ok bool)

	// Close flips the poll to closed iff requester is the owner. Closing
	// is monotonic; there is no reopen.
	Close(ctx context.Context, id string, requester domain.User) error

	// Delete removes the record entirely iff requester is the owner.
	Delete(ctx context.Context, id string, requester domain.User) error

	// Tally aggregates current responses by option; ok=false means no
	// such poll.
	Tally(ctx context.Context, id string) (tally domain.Tally, ok bool)
}

type CreatePollInput struct {
	ID      string
	Prompt  string
	Options []string
	Owner   domain.User
}

// PollService validates input and applies ownership rules on top of the
// store.
type PollService interface {
	Create(ctx context.Context, input CreatePollInput) error
	Vote(ctx context.Context, pollID string, voter domain.User, option string) (count int, err error)
	Close(ctx context.Context, pollID string, requester domain.User) error
	Delete(ctx context.Context, pollID string, requester domain.User) error
	// Results returns the tally iff requester owns the poll.
	Results(ctx context.Context, pollID string, requester domain.User) (domain.Tally, error)
	Snapshot(ctx context.Context, pollID string) (domain.PollView, error)
}
