package engine

import "math"

// Snapshot captures the complete observable match state for determinism
// checks and replays. Uses primitive types only for stable serialization.
// It is a read-only capture: the seeded RNG cannot be restored mid-stream,
// so replays rebuild a match from the same config and re-apply the inputs.
type Snapshot struct {
	Step    uint64
	Phase   int
	Current int
	Winner  int
	Wind    float64

	Heights []float64

	// Tank state (each tank is 6 floats: X, Y, Angle, Power, Alive, Color)
	TankCount int
	TankData  []float64

	// Shell state; ShellAlive zero means the rest is meaningless
	ShellAlive bool
	ShellOwner int
	ShellX     float64
	ShellY     float64
	ShellVX    float64
	ShellVY    float64

	Shots []int
	Kills []int
}

// Snapshot returns the current match state as a Snapshot.
func (m *Match) Snapshot() Snapshot {
	tankData := make([]float64, len(m.tanks)*6)
	for i, t := range m.tanks {
		idx := i * 6
		tankData[idx] = t.Pos.X
		tankData[idx+1] = t.Pos.Y
		tankData[idx+2] = t.Angle
		tankData[idx+3] = t.Power
		if t.Alive {
			tankData[idx+4] = 1
		}
		tankData[idx+5] = float64(t.Color)
	}

	snap := Snapshot{
		Step:       m.stepCount,
		Phase:      int(m.phase),
		Current:    m.current,
		Winner:     m.winner,
		Wind:       m.wind,
		Heights:    m.terrain.Heights(),
		TankCount:  len(m.tanks),
		TankData:   tankData,
		Shots:      make([]int, len(m.tanks)),
		Kills:      make([]int, len(m.tanks)),
		ShellOwner: -1,
	}
	for i := range m.tanks {
		snap.Shots[i] = m.scores.Shots(i)
		snap.Kills[i] = m.scores.Kills(i)
	}
	if m.shell != nil {
		snap.ShellAlive = true
		snap.ShellOwner = m.shell.Owner
		snap.ShellX = m.shell.Pos.X
		snap.ShellY = m.shell.Pos.Y
		snap.ShellVX = m.shell.Vel.X
		snap.ShellVY = m.shell.Vel.Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Step
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Wind)

	for _, v := range snap.Heights {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.TankCount) //#nosec G115 -- hash computation
	for _, v := range snap.TankData {
		h = h*31 + math.Float64bits(v)
	}

	if snap.ShellAlive {
		h = h*31 + 1
		h = h*31 + uint64(snap.ShellOwner) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(snap.ShellX)
		h = h*31 + math.Float64bits(snap.ShellY)
		h = h*31 + math.Float64bits(snap.ShellVX)
		h = h*31 + math.Float64bits(snap.ShellVY)
	}

	for _, v := range snap.Shots {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Kills {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
