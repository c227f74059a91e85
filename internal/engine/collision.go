package engine

import "github.com/vovakirdan/tui-scorch/internal/core"

// CollisionKind classifies what, if anything, a shell hit this step.
type CollisionKind int

const (
	// CollisionNone: the shell is still in free flight.
	CollisionNone CollisionKind = iota
	// CollisionBounce: the shell met a side or top boundary and was
	// reflected elastically. Not a terminal event.
	CollisionBounce
	// CollisionTerrain: the shell reached the ground. Terminal.
	CollisionTerrain
	// CollisionTank: the shell struck a live tank. Terminal.
	CollisionTank
)

// Collision is the outcome of one post-step collision test.
type Collision struct {
	Kind CollisionKind
	Pos  core.Vec2 // bounce: corrected position; terminal: explosion centre
	Vel  core.Vec2 // bounce: reflected velocity
	Tank *Tank     // the victim when Kind == CollisionTank
}

// detectCollision tests the post-step shell state against the map
// boundaries, live tanks and the terrain, in that order, and returns the
// first event found.
//
// This is a discrete point test of the position after the step, not a swept
// test: a shell fast enough to cross a thin terrain spike within one step
// can pass through it. At the fixed timestep, step lengths stay far below
// any terrain feature players can build.
func detectCollision(pos, vel core.Vec2, terrain *Terrain, tanks []*Tank, mapW, mapH float64) Collision {
	// Side and top boundaries reflect the shell with no speed loss. The
	// reflected shell is re-tested against terrain and tanks next step.
	bounced := false
	if pos.X < 0 || pos.X > mapW {
		vel.X = -vel.X
		pos.X = core.ClampF(pos.X, 0, mapW)
		bounced = true
	}
	if pos.Y > mapH {
		vel.Y = -vel.Y
		pos.Y = mapH
		bounced = true
	}
	if bounced {
		return Collision{Kind: CollisionBounce, Pos: pos, Vel: vel}
	}

	for _, t := range tanks {
		if !t.Alive {
			continue
		}
		if t.Bounds().Contains(pos.X, pos.Y) {
			return Collision{Kind: CollisionTank, Pos: t.Center(), Tank: t}
		}
	}

	if pos.Y <= terrain.HeightAt(pos.X) {
		ground := pos
		ground.Y = core.ClampF(ground.Y, 0, mapH)
		return Collision{Kind: CollisionTerrain, Pos: ground}
	}

	return Collision{Kind: CollisionNone, Pos: pos, Vel: vel}
}
