package ports

// CommandCounter tracks how many times each command has been dispatched
// since process start. Safe for concurrent use.
type CommandCounter interface {
	Increment(name string)
	// Report returns a snapshot of all counts. Iteration order is not
	// stable.
	Report() map[string]uint64
}
