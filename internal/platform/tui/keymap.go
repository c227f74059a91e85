package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an aiming or match action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionAngleLeft, false
	case "right", "d":
		return core.ActionAngleRight, false
	case "up", "w":
		return core.ActionPowerUp, false
	case "down", "s":
		return core.ActionPowerDown, false
	case " ", "enter", "f":
		return core.ActionFire, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
