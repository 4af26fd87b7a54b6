package editor

import "fmt"

// Mode selects what a pointer drag on the canvas does.
type Mode int

const (
	// ModePan drags the viewport.
	ModePan Mode = iota
	// ModeCreate draws new rectangles and moves existing ones.
	ModeCreate
)

func (m Mode) String() string {
	switch m {
	case ModePan:
		return "pan"
	case ModeCreate:
		return "create"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is the gesture in progress. Exactly one is active at a time.
type State int

const (
	StateIdle State = iota
	StatePanning
	StateDrawing
	StateDraggingRectangle
	StateDraggingOverview
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePanning:
		return "panning"
	case StateDrawing:
		return "drawing"
	case StateDraggingRectangle:
		return "dragging-rectangle"
	case StateDraggingOverview:
		return "dragging-overview"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
