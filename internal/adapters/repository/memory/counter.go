package memory

import (
	"sync"
	"sync/atomic"

	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// CommandCounter counts command dispatches per command name. Each name
// gets its own atomic counter so unrelated commands never contend.
type CommandCounter struct {
	counts sync.Map // command name -> *atomic.Uint64
}

func NewCommandCounter() *CommandCounter {
	return &CommandCounter{}
}

func (c *CommandCounter) Increment(name string) {
	v, ok := c.counts.Load(name)
	if !ok {
		v, _ = c.counts.LoadOrStore(name, new(atomic.Uint64))
	}
	v.(*atomic.Uint64).Add(1)
}

func (c *CommandCounter) Report() map[string]uint64 {
	report := make(map[string]uint64)
	c.counts.Range(func(key, value any) bool {
		report[key.(string)] = value.(*atomic.Uint64).Load()
		return true
	})
	return report
}

var _ ports.CommandCounter = (*CommandCounter)(nil)
