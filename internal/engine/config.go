// Package engine implements the artillery duel simulation: projectile
// physics, destructible terrain, collision resolution, wind, scoring and the
// turn state machine. It is pure and deterministic (no goroutines, timers
// or global randomness) and is driven entirely through Fire and Step calls
// from the platform layer.
package engine

import "fmt"

// World-unit constants shared by the whole simulation. The original game
// board is 800x600 units; tanks are 25x25 with a barrel as long as the body.
const (
	TankWidth    = 25.0
	TankHeight   = 25.0
	BarrelLength = 25.0

	// MaxPlayers caps the number of tanks in a match.
	MaxPlayers = 8
	// MinPlayers is the smallest playable match.
	MinPlayers = 2
)

// MatchConfig holds every tunable of a match. It is immutable after
// NewMatch: validation happens exactly once, at creation.
type MatchConfig struct {
	MapWidth  float64 // world width; one terrain column per unit
	MapHeight float64 // world height; ceiling for shells and terrain

	Gravity           float64 // downward acceleration, units/s²
	DragCoefficient   float64 // quadratic drag scale (see Integrate)
	MaxMuzzleVelocity float64 // shell speed at 100% power, units/s
	MaxWind           float64 // wind magnitude bound, units/s
	ShellMass         float64 // divides the drag force
	ExplosionRadius   float64 // crater radius carved by shells

	Players int // clamped to [MinPlayers, MaxPlayers], never rejected

	// MaxFlightTime cuts off a shell that never lands (extreme configs can
	// keep one bouncing forever); it resolves as an explosion in place.
	MaxFlightTime float64 // simulated seconds

	Seed int64 // RNG seed for terrain, tank jitter and wind
}

// DefaultMatchConfig returns the classic match tuning.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MapWidth:          800,
		MapHeight:         600,
		Gravity:           200,
		DragCoefficient:   0.0025,
		MaxMuzzleVelocity: 750,
		MaxWind:           10,
		ShellMass:         100,
		ExplosionRadius:   50,
		Players:           2,
		MaxFlightTime:     60,
	}
}

// Validate checks the config for fatal-class mistakes. Called once by
// NewMatch; the config is never re-checked afterwards since it cannot
// change. Player count is deliberately not validated here; it is clamped.
func (c MatchConfig) Validate() error {
	switch {
	case c.MapWidth <= 0:
		return fmt.Errorf("engine: map width must be positive, got %v", c.MapWidth)
	case c.MapHeight <= 0:
		return fmt.Errorf("engine: map height must be positive, got %v", c.MapHeight)
	case c.ShellMass <= 0:
		return fmt.Errorf("engine: shell mass must be positive, got %v", c.ShellMass)
	case c.MaxMuzzleVelocity <= 0:
		return fmt.Errorf("engine: muzzle velocity must be positive, got %v", c.MaxMuzzleVelocity)
	case c.ExplosionRadius <= 0:
		return fmt.Errorf("engine: explosion radius must be positive, got %v", c.ExplosionRadius)
	case c.Gravity < 0:
		return fmt.Errorf("engine: gravity must not be negative, got %v", c.Gravity)
	case c.DragCoefficient < 0:
		return fmt.Errorf("engine: drag coefficient must not be negative, got %v", c.DragCoefficient)
	case c.MaxWind < 0:
		return fmt.Errorf("engine: max wind must not be negative, got %v", c.MaxWind)
	case c.MaxFlightTime <= 0:
		return fmt.Errorf("engine: max flight time must be positive, got %v", c.MaxFlightTime)
	}

	// The map must be wide enough to seat every tank on its own ground with
	// clearance from the walls; otherwise placement cannot keep the lineup
	// strictly left to right. NewMatch clamps the player count rather than
	// rejecting it, so the seating check clamps too.
	players := c.Players
	if players < MinPlayers {
		players = MinPlayers
	}
	if players > MaxPlayers {
		players = MaxPlayers
	}
	if minWidth := float64(players) * (TankWidth + 2); c.MapWidth < minWidth {
		return fmt.Errorf("engine: map width %v cannot seat %d tanks, need at least %v", c.MapWidth, players, minWidth)
	}
	return nil
}
