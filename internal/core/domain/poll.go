package domain

// PollView is a point-in-time copy of a poll handed out by the store.
// Mutating a view has no effect on the stored record.
type PollView struct {
	ID        string            `json:"id"`
	Owner     User              `json:"owner"`
	Options   []string          `json:"options"`
	Open      bool              `json:"open"`
	Responses map[string]string `json:"responses"`
}

// Tally maps an option to the number of voters who chose it. Options
// nobody voted for are absent.
type Tally map[string]int

// Tally aggregates the view's responses by chosen option.
func (v PollView) Tally() Tally {
	t := make(Tally, len(v.Options))
	for _, option := range v.Responses {
		t[option]++
	}
	return t
}

// VoterCount returns the number of distinct users with a recorded vote.
func (v PollView) VoterCount() int {
	return len(v.Responses)
}
