package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys and mouse buttons to actions; the session decides what
// an action means in the current game state.
type Action int

const (
	ActionNone        Action = iota
	ActionFlap               // Space, Up - primary action (flap; start/restart outside play)
	ActionLeft               // Left, A - move left (catcher)
	ActionRight              // Right, D - move right (catcher)
	ActionStart              // Enter - start a run from the menu
	ActionRestart            // R - restart after game over
	ActionMenu               // Esc - back to menu (quits from the menu itself)
	ActionQuit               // Q, Ctrl+C - exit the program
	ActionToggleSound        // M - toggle sound (menu only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionToggleSound:
		return "ToggleSound"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input intents for a single simulation tick.
// Flap is a one-shot request; Left and Right mean "held during this tick".
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Merge sets every action of other on this frame.
func (f *InputFrame) Merge(other InputFrame) {
	for k, v := range other.Actions {
		if v {
			f.Set(k)
		}
	}
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
