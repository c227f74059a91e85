package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so the game logic never sees
// raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionAngleLeft         // Left arrow, A - rotate barrel left (toward +180°)
	ActionAngleRight        // Right arrow, D - rotate barrel right (toward -180°)
	ActionPowerUp           // Up arrow, W - increase shot power
	ActionPowerDown         // Down arrow, S - decrease shot power
	ActionFire              // Space, Enter - fire the shell
	ActionRestart           // R - start a new match after victory
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAngleLeft:
		return "AngleLeft"
	case ActionAngleRight:
		return "AngleRight"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
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
