package domain

// State enumerates the milestones of a single analysis.
type State string

const (
	StateIdle        State = "idle"
	StateFetching    State = "fetching"
	StateClassifying State = "classifying"
	StateDone        State = "done"
	StateWarning     State = "warning"
	StateFailed      State = "failed"
)

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	switch s {
	case StateDone, StateWarning, StateFailed:
		return true
	default:
		return false
	}
}

// Outcome is the terminal result of one user action.
type Outcome struct {
	State   State
	Kind    InputKind
	Content string
	// Sentiment holds the trimmed model reply when State is StateDone.
	Sentiment string
	Warning   string
	Err       error
}
