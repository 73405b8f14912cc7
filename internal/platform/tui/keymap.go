package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes the bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return core.ActionQuit, true
	case "w", "W":
		return core.ActionP1Up, false
	case "s", "S":
		return core.ActionP1Down, false
	case "up":
		return core.ActionP2Up, false
	case "down":
		return core.ActionP2Down, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "1":
		return core.ActionModeCPU, false
	case "2":
		return core.ActionModeDuel, false
	case "+", "=", "right":
		return core.ActionSpeedUp, false
	case "-", "_", "left":
		return core.ActionSpeedDown, false
	case "p", "P":
		return core.ActionPause, false
	case "r", "R":
		return core.ActionRestart, false
	case "m", "M", "esc":
		return core.ActionMenu, false
	case "f", "F":
		return core.ActionFullscreen, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action. Only left-button presses
// are meaningful; they confirm like Enter does.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionConfirm
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
