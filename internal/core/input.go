package core

// PlayerID identifies which paddle an input belongs to. The left paddle is
// always the local first player; the right paddle is the CPU or the second
// local player depending on the selected mode.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys and mouse clicks to actions; the simulation only
// ever sees actions.
type Action int

const (
	ActionNone       Action = iota
	ActionP1Up              // W - move left paddle up
	ActionP1Down            // S - move left paddle down
	ActionP2Up              // Up arrow - move right paddle up (duel mode)
	ActionP2Down            // Down arrow - move right paddle down (duel mode)
	ActionConfirm           // Enter, Space, or mouse click - leave the splash screen
	ActionModeCPU           // 1 - start a match against the CPU
	ActionModeDuel          // 2 - start a local two-player match
	ActionSpeedUp           // + or right arrow - raise the ball-speed multiplier
	ActionSpeedDown         // - or left arrow - lower the ball-speed multiplier
	ActionPause             // P - toggle pause
	ActionRestart           // R - restart after game over
	ActionMenu              // M, Esc - back to the previous screen
	ActionFullscreen        // F - toggle the alternate screen buffer
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionP1Up:
		return "P1Up"
	case ActionP1Down:
		return "P1Down"
	case ActionP2Up:
		return "P2Up"
	case ActionP2Down:
		return "P2Down"
	case ActionConfirm:
		return "Confirm"
	case ActionModeCPU:
		return "ModeCPU"
	case ActionModeDuel:
		return "ModeDuel"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame carries all actions triggered during one simulation tick.
// Terminal input has no key-release events, so held movement keys arrive as
// repeated presses; the platform re-sets them each tick they repeat.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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
