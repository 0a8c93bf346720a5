package task

// Priority orders jobs relative to one another. Executors are free to use
// it however they like (or ignore it entirely); the core only defines the
// ordering and the default.
type Priority int8

const (
	// PriorityLow is for work that should yield to everything else.
	PriorityLow Priority = iota
	// PriorityDefault is used when no priority is specified.
	PriorityDefault
	// PriorityHigh is for latency-sensitive work.
	PriorityHigh
	// PriorityUserInteractive is the highest priority, for work blocking a user.
	PriorityUserInteractive
)

// String returns a human-readable representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityDefault:
		return "Default"
	case PriorityHigh:
		return "High"
	case PriorityUserInteractive:
		return "UserInteractive"
	default:
		return "Unknown"
	}
}
