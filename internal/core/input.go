package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Controls is the single steering decision for one tick.
// RowDir and ColDir are -1, 0 or 1.
type Controls struct {
	RowDir  int
	ColDir  int
	Fire    bool
	Restart bool
	Quit    bool
}

// InputFrame collects the actions pressed since the previous tick.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 8)}
}

// Push records an action in arrival order. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Len returns the number of pending actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Drain folds all pending actions into one Controls value and empties the frame.
// A later direction on an axis overwrites an earlier one rather than adding to it.
func (f *InputFrame) Drain() Controls {
	c := FoldActions(f.actions)
	f.actions = f.actions[:0]
	return c
}

// FoldActions reduces an ordered action sequence to a Controls value.
func FoldActions(actions []Action) Controls {
	var c Controls
	for _, a := range actions {
		switch a {
		case ActionUp:
			c.RowDir = -1
		case ActionDown:
			c.RowDir = 1
		case ActionLeft:
			c.ColDir = -1
		case ActionRight:
			c.ColDir = 1
		case ActionFire:
			c.Fire = true
		case ActionRestart:
			c.Restart = true
		case ActionQuit:
			c.Quit = true
		}
	}
	return c
}
