package session

// State is the lifecycle of a Manager.
type State int

const (
	// Initializing lasts until Start has resolved the stored credentials.
	Initializing State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
