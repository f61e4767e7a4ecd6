package pager

import "fmt"

// Route identifies one page. Key must be unique within a NavigationState.
type Route struct {
	Key                string
	Title              string
	AccessibilityLabel string
	TestID             string
}

// NavigationState is the externally owned list of routes and the authoritative
// committed index.
type NavigationState struct {
	Index  int
	Routes []Route
}

// Layout is the measured size of the pager viewport. A zero Width means the
// viewport has not been measured yet.
type Layout struct {
	Width  float64
	Height float64
}

// Phase is the lifecycle stage of a gesture sample.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBegan
	PhaseActive
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBegan:
		return "began"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// terminal reports whether the phase ends a gesture.
func (p Phase) terminal() bool {
	return p == PhaseEnded || p == PhaseCancelled
}

// GestureSample is one frame's view of a live gesture.
type GestureSample struct {
	Translation float64 // cumulative px since pointer down, positive to the right
	Velocity    float64 // px/s, positive to the right
	Phase       Phase

	gesture uint64
}

// State is the engine's transition state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PagerState is the mutable record owned by the Engine.
type PagerState struct {
	CommittedIndex int
	PendingIndex   int
	Position       float64 // px, 0 for the first page, -i*PageWidth for page i
	Offset         float64 // Position captured when the current drag began
	Dragging       bool
	RouteCount     int
	PageWidth      float64
}

// CommitReason records what started the transition that produced a commit.
type CommitReason int

const (
	CommitGesture CommitReason = iota
	CommitProgrammatic
)

func (r CommitReason) String() string {
	if r == CommitProgrammatic {
		return "programmatic"
	}
	return "gesture"
}

// Commit is emitted once when a settle finishes on a different page than the
// one previously committed.
type Commit struct {
	Key      string
	Index    int
	Previous int
	Reason   CommitReason
}
