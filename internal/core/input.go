package core

// Action represents a semantic input action, abstracted from physical key presses.
// Platforms translate keys into actions; screens only ever see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu cursor up
	ActionDown           // S, Down arrow - menu cursor down
	ActionLeft           // A, Left arrow - move left / decrease value
	ActionRight          // D, Right arrow - move right / increase value
	ActionConfirm        // Enter, Space - select
	ActionBack           // Escape, B - go back
	ActionPause          // P - pause gameplay
	ActionUndo           // U, Ctrl+Z - undo last command
	ActionRedo           // R, Ctrl+R - redo command
	ActionHistory        // H - show command history
	ActionCopy           // Ctrl+Y - copy command history
	ActionQuit           // Ctrl+C - leave the application
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionHistory:
		return "History"
	case ActionCopy:
		return "Copy"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one frame.
// The platform fills it from polled input and drains it after the frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set. Handy in tests.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
