package engine

import "github.com/vovakirdan/tui-scorch/internal/core"

// EventKind classifies what a Step produced.
type EventKind int

const (
	// EventNone: the shell is still flying, or the match is idle.
	EventNone EventKind = iota
	// EventBounce: the shell reflected off a map boundary and keeps flying.
	EventBounce
	// EventExplosion: the shell detonated and the turn passed to NextPlayer.
	EventExplosion
	// EventVictory: the shell detonated and the match ended with Winner.
	EventVictory
)

// Event is what a single Step hands back to the caller. A terminal shell is
// resolved entirely inside the Step that detects it, so an explosion event
// already carries the crater (or the victim) and the outcome of the turn
// rotation. Integer fields use -1 when unset.
type Event struct {
	Kind   EventKind
	Center core.Vec2 // explosion centre; valid for explosion and victory
	Radius float64   // explosion radius; valid for explosion and victory
	Victim int       // destroyed tank's player index, -1 on a terrain hit

	NextPlayer int // player now holding the turn; -1 when the match ended
	Winner     int // winning player; -1 unless Kind == EventVictory
}

func noEvent() Event {
	return Event{Kind: EventNone, Victim: -1, NextPlayer: -1, Winner: -1}
}
