package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

// Phase is the turn state machine's current stage.
type Phase int

const (
	// PhaseAwaitingInput: the current player is aiming; Fire is accepted.
	PhaseAwaitingInput Phase = iota
	// PhaseInFlight: a shell is airborne; Step advances it.
	PhaseInFlight
	// PhaseVictory: the match is over; all state is frozen read-only.
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseInFlight:
		return "in-flight"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Match is one complete artillery duel: the terrain, the tanks, the wind,
// the scores and the turn rotation. All randomness flows through a single
// seeded source, so two matches built from the same config replay
// identically. Not safe for concurrent use.
type Match struct {
	cfg     MatchConfig
	rng     *rand.Rand
	windGen *WindGenerator

	terrain *Terrain
	tanks   []*Tank
	scores  *ScoreTracker
	wind    float64

	phase   Phase
	current int // player holding the turn
	winner  int // -1 until PhaseVictory

	shell      *Shell
	flightTime float64
	trace      []core.Vec2   // positions of the shell currently in flight
	traces     [][]core.Vec2 // each player's last completed shot, by index

	stepCount uint64
}

// NewMatch builds a fresh match from cfg. The player count is clamped into
// [MinPlayers, MaxPlayers] rather than rejected; everything else in cfg must
// validate.
func NewMatch(cfg MatchConfig) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Players = core.Clamp(cfg.Players, MinPlayers, MaxPlayers)

	rng := rand.New(rand.NewSource(cfg.Seed))

	// Tanks are spread evenly with some jitter so the lineup is never a
	// perfect grid, but still strictly left to right in player order.
	width := int(cfg.MapWidth)
	avg := cfg.MapWidth / float64(cfg.Players+1)
	xs := make([]int, cfg.Players)
	for i := range xs {
		jitter := (rng.Float64()*2 - 1) * avg / 4
		x := avg*float64(i+1) + jitter
		xs[i] = core.Clamp(int(x), int(TankWidth)/2+1, width-int(TankWidth)/2-2)
	}

	terrain, positions := generateTerrain(rng, width, cfg.MapHeight, xs)

	tanks := make([]*Tank, cfg.Players)
	for i := range tanks {
		r := playerRoster[i]
		tanks[i] = &Tank{
			ID:    i,
			Name:  r.Name,
			Pos:   positions[i],
			Angle: 0,
			Power: 0.5,
			Alive: true,
			Color: r.Color,
		}
	}

	m := &Match{
		cfg:     cfg,
		rng:     rng,
		windGen: NewWindGenerator(rng),
		terrain: terrain,
		tanks:   tanks,
		scores:  NewScoreTracker(cfg.Players),
		phase:   PhaseAwaitingInput,
		current: rng.Intn(cfg.Players),
		winner:  -1,
		traces:  make([][]core.Vec2, cfg.Players),
	}
	m.wind = m.windGen.Next(cfg.MaxWind)
	return m, nil
}

// SetAim updates the current player's barrel angle and power while they are
// still aiming. Angle is clamped to [-180, 180] degrees, power to [0, 1].
// Ignored outside PhaseAwaitingInput.
func (m *Match) SetAim(angle, power float64) {
	if m.phase != PhaseAwaitingInput {
		return
	}
	t := m.tanks[m.current]
	t.Angle = core.ClampF(angle, -180, 180)
	t.Power = core.ClampF(power, 0, 1)
}

// Fire launches a shell for the current player with the given angle and
// power fraction, both clamped as in SetAim. Returns false when no shot is
// accepted: a shell is already in flight or the match is over.
func (m *Match) Fire(angle, power float64) bool {
	if m.phase != PhaseAwaitingInput {
		return false
	}
	m.SetAim(angle, power)
	t := m.tanks[m.current]

	muzzle := t.MuzzlePos()
	vel := aimDirection(t.Angle).Scale(t.Power * m.cfg.MaxMuzzleVelocity)

	m.shell = &Shell{Owner: m.current, Pos: muzzle, Vel: vel}
	m.flightTime = 0
	m.trace = []core.Vec2{muzzle}
	m.scores.RecordShot(m.current)
	m.phase = PhaseInFlight
	return true
}

// Step advances the in-flight shell by dt seconds and resolves whatever it
// runs into. A terminal hit is settled entirely inside this call: the crater
// is carved or the victim destroyed, the score updated, fresh wind drawn,
// and the turn passed on (or the match ended). Outside PhaseInFlight the
// call is a no-op returning an EventNone.
func (m *Match) Step(dt float64) Event {
	if m.phase != PhaseInFlight || dt <= 0 {
		return noEvent()
	}
	m.stepCount++
	m.flightTime += dt

	// A shell that never lands (orbiting the wind, say) would stall the
	// match forever, so a long-overdue one detonates where it is.
	if m.flightTime > m.cfg.MaxFlightTime {
		return m.resolveExplosion(m.clampToMap(m.shell.Pos), nil)
	}

	env := Environment{
		Gravity: m.cfg.Gravity,
		Drag:    m.cfg.DragCoefficient,
		Wind:    m.wind,
		Mass:    m.cfg.ShellMass,
	}
	pos, vel := Integrate(m.shell.Pos, m.shell.Vel, env, dt)

	// Degenerate configs can blow the integration up; detonating at the
	// last valid position keeps the state machine moving.
	if !pos.IsFinite() || !vel.IsFinite() {
		return m.resolveExplosion(m.clampToMap(m.shell.Pos), nil)
	}

	col := detectCollision(pos, vel, m.terrain, m.tanks, m.cfg.MapWidth, m.cfg.MapHeight)
	switch col.Kind {
	case CollisionBounce:
		m.shell.Pos, m.shell.Vel = col.Pos, col.Vel
		m.trace = append(m.trace, col.Pos)
		ev := noEvent()
		ev.Kind = EventBounce
		ev.Center = col.Pos
		return ev
	case CollisionTank:
		return m.resolveExplosion(col.Pos, col.Tank)
	case CollisionTerrain:
		return m.resolveExplosion(col.Pos, nil)
	default:
		m.shell.Pos, m.shell.Vel = col.Pos, col.Vel
		m.trace = append(m.trace, col.Pos)
		return noEvent()
	}
}

// resolveExplosion settles a terminal shell: crater or kill, score, wind,
// and the next turn or the victory.
func (m *Match) resolveExplosion(center core.Vec2, victim *Tank) Event {
	owner := m.shell.Owner
	m.trace = append(m.trace, center)
	m.traces[owner] = m.trace
	m.trace = nil
	m.shell = nil

	ev := Event{
		Kind:       EventExplosion,
		Center:     center,
		Radius:     m.cfg.ExplosionRadius,
		Victim:     -1,
		NextPlayer: -1,
		Winner:     -1,
	}

	if victim != nil {
		victim.Alive = false
		m.scores.RecordKill(owner)
		ev.Victim = victim.ID
	} else {
		m.terrain.Carve(center, m.cfg.ExplosionRadius)
		m.settleTanks()
	}

	if last, ok := m.lastAlive(); ok {
		m.phase = PhaseVictory
		m.winner = last
		ev.Kind = EventVictory
		ev.Winner = last
		return ev
	}

	// Fresh wind is drawn only when another turn follows; a frozen match
	// keeps its last wind and stops consuming the random stream.
	m.wind = m.windGen.Next(m.cfg.MaxWind)
	m.current = m.nextAlive(m.current)
	m.phase = PhaseAwaitingInput
	ev.NextPlayer = m.current
	return ev
}

// settleTanks drops any tank whose footing was carved away down onto the new
// surface. Tanks never float.
func (m *Match) settleTanks() {
	for _, t := range m.tanks {
		if !t.Alive {
			continue
		}
		h := m.terrain.HeightAt(t.Pos.X)
		if h < t.Pos.Y {
			t.Pos.Y = h
		}
	}
}

// nextAlive returns the first living player after from, wrapping around.
func (m *Match) nextAlive(from int) int {
	n := len(m.tanks)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if m.tanks[idx].Alive {
			return idx
		}
	}
	return from
}

// lastAlive reports the sole surviving player, if exactly one remains.
func (m *Match) lastAlive() (int, bool) {
	count, last := 0, -1
	for _, t := range m.tanks {
		if t.Alive {
			count++
			last = t.ID
		}
	}
	return last, count == 1
}

func (m *Match) clampToMap(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, 0, m.cfg.MapWidth),
		Y: core.ClampF(p.Y, 0, m.cfg.MapHeight),
	}
}

// Config returns the settings the match was built with, after clamping.
func (m *Match) Config() MatchConfig { return m.cfg }

// Phase returns the current stage of the turn state machine.
func (m *Match) Phase() Phase { return m.phase }

// CurrentPlayer returns the index of the player holding the turn.
func (m *Match) CurrentPlayer() int { return m.current }

// Winner returns the winning player's index, or -1 while the match runs.
func (m *Match) Winner() int { return m.winner }

// Wind returns the horizontal wind strength for the current turn. Positive
// blows right, negative left.
func (m *Match) Wind() float64 { return m.wind }

// TerrainHeights returns a copy of the surface elevation per column.
func (m *Match) TerrainHeights() []float64 { return m.terrain.Heights() }

// Tanks returns a snapshot of every tank, in player order.
func (m *Match) Tanks() []Tank {
	out := make([]Tank, len(m.tanks))
	for i, t := range m.tanks {
		out[i] = *t
	}
	return out
}

// Tank returns a snapshot of one player's tank.
func (m *Match) Tank(player int) (Tank, error) {
	if player < 0 || player >= len(m.tanks) {
		return Tank{}, fmt.Errorf("engine: no player %d in a %d-player match", player, len(m.tanks))
	}
	return *m.tanks[player], nil
}

// ShellPosition returns the in-flight shell's position, if there is one.
func (m *Match) ShellPosition() (core.Vec2, bool) {
	if m.shell == nil {
		return core.Vec2{}, false
	}
	return m.shell.Pos, true
}

// Scores exposes the match's shot and kill tallies.
func (m *Match) Scores() *ScoreTracker { return m.scores }

// LastTrace returns the flight path of the player's most recent completed
// shot, or nil if they have not fired yet.
func (m *Match) LastTrace(player int) []core.Vec2 {
	if player < 0 || player >= len(m.traces) {
		return nil
	}
	return m.traces[player]
}
