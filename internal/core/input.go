package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionPrimary        // Space, Enter, mouse click - move or toggle at cursor
	ActionAnchor         // M - set rectangle anchor (edit mode)
	ActionRect           // X, shift+click - toggle rectangle anchor..cursor (edit mode)
	ActionMode           // E, Tab - switch between play and edit mode
	ActionRestart        // R - reset board (asks for confirmation)
	ActionYes            // Y - answer a prompt
	ActionNo             // N, Esc - decline a prompt
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionPrimary:
		return "Primary"
	case ActionAnchor:
		return "Anchor"
	case ActionRect:
		return "Rect"
	case ActionMode:
		return "Mode"
	case ActionRestart:
		return "Restart"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a screen position reported by a mouse click.
type Pointer struct {
	X, Y  int
	Shift bool // Shift was held during the click
}

// InputFrame represents the input collected during one platform tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds screen positions clicked this frame, in order.
	Clicks []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Click records a pointer click at screen position (x, y).
func (f *InputFrame) Click(x, y int, shift bool) {
	f.Clicks = append(f.Clicks, Pointer{X: x, Y: y, Shift: shift})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty returns true if nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
