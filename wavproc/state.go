package wavproc

import "fmt"

// State is a step of a processing run.
type State int

const (
	Idle State = iota
	InputOpened
	OutputOpened
	HeaderCopied
	Streaming
	ClosedSuccess
	ClosedFailure
)

var stateNames = [...]string{
	Idle:          "idle",
	InputOpened:   "input-opened",
	OutputOpened:  "output-opened",
	HeaderCopied:  "header-copied",
	Streaming:     "streaming",
	ClosedSuccess: "closed-success",
	ClosedFailure: "closed-failure",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s == ClosedSuccess || s == ClosedFailure
}

// Observer receives every state a run enters, in order.
type Observer func(State)
