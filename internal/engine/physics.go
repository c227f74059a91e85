package engine

import (
	"math"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

// Environment captures the forces acting on a shell for the duration of one
// turn: gravity, the turn's wind, and the shell's drag characteristics.
type Environment struct {
	Gravity float64
	Drag    float64
	Wind    float64
	Mass    float64
}

// Integrate advances a shell by one semi-implicit (symplectic) Euler step:
// velocity first, using the acceleration at the current state, then position
// using the new velocity. That ordering keeps the fixed small timesteps of a
// render loop stable where plain explicit Euler drifts.
//
// Drag follows the drag equation: a force opposing the shell's velocity
// relative to the air (wind shifts the air horizontally), proportional to
// the square of the relative speed, with density, area and the rest of the
// constants folded into the drag coefficient. The force is divided by the
// shell mass to become acceleration.
//
// Pure function of its inputs; no randomness or hidden state.
func Integrate(pos, vel core.Vec2, env Environment, dt float64) (core.Vec2, core.Vec2) {
	airVel := core.Vec2{X: vel.X - env.Wind, Y: vel.Y}
	dragForce := airVel.Normalize().Scale(env.Drag * airVel.LengthSq())

	acc := core.Vec2{X: 0, Y: -env.Gravity}.Sub(dragForce.Scale(1 / env.Mass))
	vel = vel.Add(acc.Scale(dt))
	pos = pos.Add(vel.Scale(dt))
	return pos, vel
}

// aimDirection converts a barrel angle in degrees to a unit vector.
// 0° points straight up; positive angles rotate left (toward -x), negative
// rotate right, covering [-180°, 180°].
func aimDirection(angleDeg float64) core.Vec2 {
	rad := angleDeg * math.Pi / 180
	return core.Vec2{X: -math.Sin(rad), Y: math.Cos(rad)}
}
