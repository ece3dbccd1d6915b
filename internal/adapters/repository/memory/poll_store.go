package memory

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

const shardCount = 32

type pollRecord struct {
	owner     domain.User
	options   []string
	open      bool
	responses map[string]string // voter id -> chosen option
}

type shard struct {
	mu    sync.RWMutex
	polls map[string]*pollRecord
}

// PollStore keeps all poll records in memory, sharded by poll id so
// unrelated polls never contend on the same lock. State is lost on
// restart.
type PollStore struct {
	shards [shardCount]*shard
}

func NewPollStore() *PollStore {
	s := &PollStore{}
	for i := range s.shards {
		s.shards[i] = &shard{polls: make(map[string]*pollRecord)}
	}
	return s
}

func (s *PollStore) shardFor(id string) *shard {
	h := fnv.New32a()
	h.Write([]byte(id))
	return s.shards[h.Sum32()%shardCount]
}

func (s *PollStore) Create(_ context.Context, id string, owner domain.User, options []string) error {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.polls[id]; exists {
		return domain.ErrPollExists
	}
	opts := make([]string, len(options))
	copy(opts, options)
	sh.polls[id] = &pollRecord{
		owner:     owner,
		options:   opts,
		open:      true,
		responses: make(map[string]string),
	}
	return nil
}

func (s *PollStore) Snapshot(_ context.Context, id string) (domain.PollView, bool) {
	sh := s.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec, ok := sh.polls[id]
	if !ok {
		return domain.PollView{}, false
	}
	return rec.view(id), true
}

func (s *PollStore) RecordVote(_ context.Context, id string, voter domain.User, option string) (int, bool) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.polls[id]
	if !ok {
		return 0, false
	}
	if rec.open {
		rec.responses[voter.ID] = option
	}
	return len(rec.responses), true
}

func (s *PollStore) Close(_ context.Context, id string, requester domain.User) error {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.polls[id]
	if !ok {
		return domain.ErrPollNotFound
	}
	if rec.owner.ID != requester.ID {
		return domain.ErrNotOwner
	}
	rec.open = false
	return nil
}

func (s *PollStore) Delete(_ context.Context, id string, requester domain.User) error {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.polls[id]
	if !ok {
		return domain.ErrPollNotFound
	}
	if rec.owner.ID != requester.ID {
		return domain.ErrNotOwner
	}
	delete(sh.polls, id)
	return nil
}

func (s *PollStore) Tally(_ context.Context, id string) (domain.Tally, bool) {
	sh := s.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec, ok := sh.polls[id]
	if !ok {
		return nil, false
	}
	tally := make(domain.Tally, len(rec.options))
	for _, option := range rec.responses {
		tally[option]++
	}
	return tally, true
}

// view copies the record into an independent PollView. Caller must hold
// at least the shard read lock.
func (r *pollRecord) view(id string) domain.PollView {
	opts := make([]string, len(r.options))
	copy(opts, r.options)
	responses := make(map[string]string, len(r.responses))
	for voter, option := range r.responses {
		responses[voter] = option
	}
	return domain.PollView{
		ID:        id,
		Owner:     r.owner,
		Options:   opts,
		Open:      r.open,
		Responses: responses,
	}
}

var _ ports.PollStore = (*PollStore)(nil)
