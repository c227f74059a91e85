package engine

import "github.com/vovakirdan/tui-scorch/internal/core"

// playerRoster holds the fixed names and colors assigned to tanks in seating
// order. A match never has more than MaxPlayers of them.
var playerRoster = []struct {
	Name  string
	Color core.Color
}{
	{"Alfa", core.ColorRed},
	{"Bravo", core.ColorGreen},
	{"Charlie", core.ColorBlue},
	{"Delta", core.ColorOrange},
	{"Echo", core.ColorMagenta},
	{"Foxtrot", core.ColorBrightGreen},
	{"Golf", core.ColorCyan},
	{"Hotel", core.ColorBrightBlue},
}

// Tank is one player's vehicle. Pos anchors it to the ground: X is the
// horizontal centre, Y the terrain surface it rests on. Only the collision
// resolution flips Alive, and only the owning player's Fire call moves the
// barrel; nothing else mutates a tank after creation.
type Tank struct {
	ID    int // also the owning player's index in rotation order
	Name  string
	Pos   core.Vec2
	Angle float64 // barrel angle, degrees; 0 = up, positive = left
	Power float64 // last power fraction the player fired with
	Alive bool
	Color core.Color
}

// Bounds returns the tank's fixed-size hit box, anchored at its ground
// position.
func (t *Tank) Bounds() core.Rect {
	return core.NewRect(t.Pos.X-TankWidth/2, t.Pos.Y, TankWidth, TankHeight)
}

// Center returns the middle of the tank body, where explosions on a hit are
// centred.
func (t *Tank) Center() core.Vec2 {
	return core.Vec2{X: t.Pos.X, Y: t.Pos.Y + TankHeight/2}
}

// MuzzlePos returns the barrel tip, offset far enough from the body that a
// freshly fired shell does not start inside its own tank's hit box.
func (t *Tank) MuzzlePos() core.Vec2 {
	return t.Center().Add(aimDirection(t.Angle).Scale(BarrelLength + 1))
}

// Shell is the single projectile that may be in flight. Created once per
// fired turn at the barrel tip, destroyed on any terminal collision. The
// turn state machine guarantees at most one exists at a time.
type Shell struct {
	Owner int // firing player's index
	Pos   core.Vec2
	Vel   core.Vec2
}
