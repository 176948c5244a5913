package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys (and key-hold approximation) to actions;
// games never see raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space, W, Up - jump
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game

	// Physics hacking: live nudges to the world's gravity and time scale.
	ActionGravityDown // [ - lower gravity
	ActionGravityUp   // ] - raise gravity
	ActionTimeDown    // { - slow time
	ActionTimeUp      // } - speed time
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionGravityDown:
		return "GravityDown"
	case ActionGravityUp:
		return "GravityUp"
	case ActionTimeDown:
		return "TimeDown"
	case ActionTimeUp:
		return "TimeUp"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick: the
// set of currently-held actions plus an optional mouse click in screen
// cells. Terminals emit no key-up events, so "held" is the platform's
// short-hold approximation.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	// Clicked is true when the player clicked this frame; ClickX and
	// ClickY are the screen cell coordinates of the click.
	Clicked bool
	ClickX  int
	ClickY  int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Unset removes an action from the held set.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a mouse click at the given screen cell.
func (f *InputFrame) SetClick(x, y int) {
	f.Clicked = true
	f.ClickX = x
	f.ClickY = y
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicked = false
	f.ClickX = 0
	f.ClickY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicked = f.Clicked
	clone.ClickX = f.ClickX
	clone.ClickY = f.ClickY
	return clone
}
