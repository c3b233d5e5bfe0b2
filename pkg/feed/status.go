package feed

import "fmt"

// Phase enumerates the load states of a mount.
type Phase int

const (
	// Loading is the initial phase while the single fetch is outstanding.
	Loading Phase = iota
	// Failed is terminal; Message carries the reason.
	Failed
	// Ready is terminal; events are available.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Failed:
		return "error"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Status is the load state machine: Loading moves to Ready or Failed once.
type Status struct {
	Phase   Phase
	Message string
}

// Resolve applies the fetch outcome. It reports false and leaves the status
// untouched when the status already left Loading.
func (s Status) Resolve(err error) (Status, bool) {
	if s.Phase != Loading {
		return s, false
	}
	if err != nil {
		return Status{Phase: Failed, Message: err.Error()}, true
	}
	return Status{Phase: Ready}, true
}

func (s Status) String() string {
	if s.Phase == Failed {
		return fmt.Sprintf("error: %s", s.Message)
	}
	return s.Phase.String()
}
