package engine

import (
	"testing"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

// stepToTerminal drives a fired shell until its turn resolves, guarding
// against runaway flights.
func stepToTerminal(t *testing.T, m *Match) Event {
	t.Helper()
	for i := 0; i < 100000; i++ {
		ev := m.Step(1.0 / 60)
		if ev.Kind == EventExplosion || ev.Kind == EventVictory {
			return ev
		}
	}
	t.Fatal("Shell never resolved")
	return Event{}
}

func TestNewMatchPlacement(t *testing.T) {
	for players := MinPlayers; players <= MaxPlayers; players++ {
		cfg := DefaultMatchConfig()
		cfg.Players = players
		cfg.Seed = int64(players) * 17

		m, err := NewMatch(cfg)
		if err != nil {
			t.Fatalf("NewMatch(%d players): %v", players, err)
		}

		tanks := m.Tanks()
		if len(tanks) != players {
			t.Fatalf("Expected %d tanks, got %d", players, len(tanks))
		}

		prevX := -1.0
		for i, tank := range tanks {
			if !tank.Alive {
				t.Errorf("Tank %d should start alive", i)
			}
			if tank.Pos.X <= prevX {
				t.Errorf("Tank %d at x=%.0f not right of tank %d at x=%.0f",
					i, tank.Pos.X, i-1, prevX)
			}
			prevX = tank.Pos.X
			if h := m.terrain.HeightAt(tank.Pos.X); h != tank.Pos.Y {
				t.Errorf("Tank %d floats: ground %.2f, tank %.2f", i, h, tank.Pos.Y)
			}
		}

		if cur := m.CurrentPlayer(); cur < 0 || cur >= players {
			t.Errorf("Starting player %d out of range", cur)
		}
		if w := m.Wind(); w < -cfg.MaxWind || w > cfg.MaxWind {
			t.Errorf("Initial wind %.2f outside [-%.0f, %.0f]", w, cfg.MaxWind, cfg.MaxWind)
		}
		if m.Phase() != PhaseAwaitingInput {
			t.Errorf("New match should await input, got %v", m.Phase())
		}
	}
}

func TestNewMatchClampsPlayers(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Players = 1
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Tanks()) != MinPlayers {
		t.Errorf("1 player should clamp to %d, got %d", MinPlayers, len(m.Tanks()))
	}

	cfg.Players = 50
	m, err = NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Tanks()) != MaxPlayers {
		t.Errorf("50 players should clamp to %d, got %d", MaxPlayers, len(m.Tanks()))
	}
}

func TestMatchConfigValidate(t *testing.T) {
	bad := []func(*MatchConfig){
		func(c *MatchConfig) { c.MapWidth = 0 },
		func(c *MatchConfig) { c.MapHeight = -1 },
		func(c *MatchConfig) { c.Gravity = -5 },
		func(c *MatchConfig) { c.DragCoefficient = -0.1 },
		func(c *MatchConfig) { c.MaxMuzzleVelocity = 0 },
		func(c *MatchConfig) { c.MaxWind = -1 },
		func(c *MatchConfig) { c.ShellMass = 0 },
		func(c *MatchConfig) { c.ExplosionRadius = 0 },
		func(c *MatchConfig) { c.MaxFlightTime = 0 },
		func(c *MatchConfig) { c.MapWidth = TankWidth }, // room for one tank, not two
	}
	for i, mutate := range bad {
		cfg := DefaultMatchConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Case %d should fail validation", i)
		}
	}
	if err := DefaultMatchConfig().Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestNewMatchRejectsNarrowMaps(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.MapWidth = 20
	if _, err := NewMatch(cfg); err == nil {
		t.Error("A 20-unit map cannot seat two tanks and should be rejected")
	}

	// Player count is clamped up before seating, so one declared player
	// still needs room for two tanks.
	cfg = DefaultMatchConfig()
	cfg.Players = 1
	cfg.MapWidth = TankWidth + 2
	if _, err := NewMatch(cfg); err == nil {
		t.Error("Width check should apply to the clamped player count")
	}

	// At exactly the minimum width the lineup still seats strictly left to
	// right, with every hit box on its own ground.
	for players := MinPlayers; players <= MaxPlayers; players++ {
		cfg := DefaultMatchConfig()
		cfg.Players = players
		cfg.MapWidth = float64(players) * (TankWidth + 2)
		cfg.Seed = int64(players) * 41
		m, err := NewMatch(cfg)
		if err != nil {
			t.Fatalf("Minimum width for %d players rejected: %v", players, err)
		}
		prevX := -1.0
		for i, tank := range m.Tanks() {
			if tank.Pos.X <= prevX {
				t.Errorf("%d players at minimum width: tank %d at x=%.1f not right of x=%.1f",
					players, i, tank.Pos.X, prevX)
			}
			prevX = tank.Pos.X
		}
	}
}

func TestFireOnlyWhenAwaitingInput(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 5
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !m.Fire(30, 0.8) {
		t.Fatal("First fire should be accepted")
	}
	if m.Phase() != PhaseInFlight {
		t.Fatalf("Phase should be in-flight after firing, got %v", m.Phase())
	}
	if m.Fire(30, 0.8) {
		t.Error("Fire while a shell is airborne should be rejected")
	}
	if _, ok := m.ShellPosition(); !ok {
		t.Error("Shell position should be available in flight")
	}

	firer := m.shell.Owner
	if m.Scores().Shots(firer) != 1 {
		t.Errorf("Shot should be recorded on fire, got %d", m.Scores().Shots(firer))
	}
}

func TestFireClampsInputs(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 6
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	firer := m.CurrentPlayer()
	m.Fire(500, 7)

	tank, err := m.Tank(firer)
	if err != nil {
		t.Fatal(err)
	}
	if tank.Angle != 180 {
		t.Errorf("Angle should clamp to 180, got %.1f", tank.Angle)
	}
	if tank.Power != 1 {
		t.Errorf("Power should clamp to 1, got %.1f", tank.Power)
	}
}

func TestStepIdleIsNoop(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 7
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	before := m.Snapshot().Hash()
	ev := m.Step(1.0 / 60)
	if ev.Kind != EventNone {
		t.Errorf("Step without a shell should return no event, got %v", ev.Kind)
	}
	if m.Snapshot().Hash() != before {
		t.Error("Idle step should not change match state")
	}
}

func TestStraightUpShotIsSelfKill(t *testing.T) {
	// Fired dead vertical with no drag, the shell falls back through its
	// own tank. The kill is credited to the firer like any other.
	cfg := DefaultMatchConfig()
	cfg.Players = 3
	cfg.DragCoefficient = 0 // no wind influence either
	cfg.Seed = 11
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	firer := m.CurrentPlayer()
	if !m.Fire(0, 0.3) {
		t.Fatal("Fire rejected")
	}

	ev := stepToTerminal(t, m)
	if ev.Kind != EventExplosion {
		t.Fatalf("Expected an explosion, got %v", ev.Kind)
	}
	if ev.Victim != firer {
		t.Fatalf("Victim should be the firer %d, got %d", firer, ev.Victim)
	}

	tank, _ := m.Tank(firer)
	if tank.Alive {
		t.Error("Firer's tank should be destroyed")
	}
	if m.Scores().Kills(firer) != 1 {
		t.Errorf("Self-kill should credit the firer, got %d kills", m.Scores().Kills(firer))
	}
	if ev.NextPlayer == firer || ev.NextPlayer < 0 {
		t.Errorf("Turn should pass to a living player, got %d", ev.NextPlayer)
	}
	if m.Phase() != PhaseAwaitingInput {
		t.Errorf("Match should await the next shot, got %v", m.Phase())
	}
}

func TestVictoryFreezesMatch(t *testing.T) {
	// Two players, each self-destructing in turn: the first self-kill
	// leaves one tank standing and ends the match immediately.
	cfg := DefaultMatchConfig()
	cfg.DragCoefficient = 0
	cfg.Seed = 13
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	loser := m.CurrentPlayer()
	if !m.Fire(0, 0.3) {
		t.Fatal("Fire rejected")
	}

	ev := stepToTerminal(t, m)
	if ev.Kind != EventVictory {
		t.Fatalf("Expected victory, got %v", ev.Kind)
	}
	if ev.Winner == loser || ev.Winner < 0 {
		t.Fatalf("Winner should be the surviving player, got %d", ev.Winner)
	}
	if m.Winner() != ev.Winner {
		t.Errorf("Winner query disagrees with event: %d vs %d", m.Winner(), ev.Winner)
	}
	if m.Phase() != PhaseVictory {
		t.Fatalf("Phase should be victory, got %v", m.Phase())
	}

	// Everything is frozen now.
	if m.Fire(0, 1) {
		t.Error("Fire after victory should be rejected")
	}
	before := m.Snapshot().Hash()
	if ev := m.Step(1.0 / 60); ev.Kind != EventNone {
		t.Errorf("Step after victory should be a no-op, got %v", ev.Kind)
	}
	if m.Snapshot().Hash() != before {
		t.Error("Step after victory should not change state")
	}
}

func TestVictoryKeepsLastWind(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 37
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	victim := m.tanks[m.nextAlive(m.current)]
	windBefore := m.Wind()

	// Plant a shell dropping straight into the last opponent's hit box.
	m.phase = PhaseInFlight
	m.shell = &Shell{
		Owner: m.current,
		Pos:   core.Vec2{X: victim.Pos.X, Y: victim.Pos.Y + TankHeight + 5},
		Vel:   core.Vec2{X: 0, Y: -400},
	}
	m.flightTime = 0
	m.trace = []core.Vec2{m.shell.Pos}

	ev := m.Step(1.0 / 60)
	if ev.Kind != EventVictory {
		t.Fatalf("Dropping onto the last opponent should end the match, got %v", ev.Kind)
	}
	if m.Wind() != windBefore {
		t.Errorf("Ending shot should not redraw the wind: %.3f -> %.3f", windBefore, m.Wind())
	}
}

func TestTerrainHitCarvesAndAdvancesTurn(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 17
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	firer := m.CurrentPlayer()
	heightsBefore := m.TerrainHeights()

	// A weak lob lands close to the firing tank without reaching anyone.
	if !m.Fire(-30, 0.15) {
		t.Fatal("Fire rejected")
	}
	ev := stepToTerminal(t, m)
	if ev.Kind != EventExplosion {
		t.Fatalf("Expected an explosion, got %v", ev.Kind)
	}

	if ev.Victim == -1 {
		// Ground hit: some column inside the blast must be lower now.
		lowered := false
		for x, h := range m.TerrainHeights() {
			if h > heightsBefore[x] {
				t.Fatalf("Column %d raised by the blast: %.2f -> %.2f", x, heightsBefore[x], h)
			}
			if h < heightsBefore[x] {
				lowered = true
			}
		}
		if !lowered {
			t.Error("Ground explosion should lower at least one column")
		}
	}

	if ev.NextPlayer == firer {
		t.Error("Turn should advance to the other player")
	}
	if m.CurrentPlayer() != ev.NextPlayer {
		t.Errorf("Current player %d disagrees with event %d", m.CurrentPlayer(), ev.NextPlayer)
	}
	if _, ok := m.ShellPosition(); ok {
		t.Error("Shell should be gone after resolving")
	}
	if trace := m.LastTrace(firer); len(trace) < 2 {
		t.Errorf("Completed shot should leave a trace, got %d points", len(trace))
	}
}

func TestWindRegeneratedEachTurn(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 19
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Wind may coincide between two turns by chance; over several turns
	// at least one change must show up.
	changed := false
	prev := m.Wind()
	for turn := 0; turn < 5 && m.Phase() == PhaseAwaitingInput; turn++ {
		m.Fire(-20, 0.1)
		stepToTerminal(t, m)
		if m.Wind() != prev {
			changed = true
		}
		prev = m.Wind()
	}
	if !changed {
		t.Error("Wind never changed across five turns")
	}
}

func TestFlightTimeoutDetonates(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.MaxFlightTime = 0.05
	cfg.Gravity = 0.001 // shell would otherwise fly far beyond the timeout
	cfg.Seed = 23
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !m.Fire(0, 1) {
		t.Fatal("Fire rejected")
	}
	steps := 0
	for ; steps < 50; steps++ {
		if ev := m.Step(0.01); ev.Kind == EventExplosion || ev.Kind == EventVictory {
			break
		}
	}
	if steps >= 50 {
		t.Fatal("Shell should detonate shortly after the flight timeout")
	}
	if m.Phase() == PhaseInFlight {
		t.Error("Turn should be resolved after the timeout")
	}
}

func TestBoundaryBounceReflects(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Seed = 29
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Place a shell racing at the left wall, high above any terrain.
	m.phase = PhaseInFlight
	m.shell = &Shell{Owner: m.current, Pos: core.Vec2{X: 4, Y: 560}, Vel: core.Vec2{X: -500, Y: 0}}
	m.flightTime = 0

	bounced := false
	for i := 0; i < 10; i++ {
		ev := m.Step(1.0 / 60)
		if ev.Kind == EventBounce {
			bounced = true
			break
		}
		if ev.Kind != EventNone {
			t.Fatalf("Unexpected event %v before reaching the wall", ev.Kind)
		}
	}
	if !bounced {
		t.Fatal("Shell heading into the wall should bounce")
	}

	pos, ok := m.ShellPosition()
	if !ok {
		t.Fatal("Shell should survive a bounce")
	}
	if pos.X < 0 || pos.X > cfg.MapWidth {
		t.Fatalf("Bounced shell outside the map: x=%.1f", pos.X)
	}
	if m.shell.Vel.X <= 0 {
		t.Errorf("Bounce should reverse horizontal velocity, got %.1f", m.shell.Vel.X)
	}
	if m.Phase() != PhaseInFlight {
		t.Error("A bounce is not terminal; the shell should keep flying")
	}
}

func TestMatchDeterminism(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Players = 4
	cfg.Seed = 31

	run := func() uint64 {
		m, err := NewMatch(cfg)
		if err != nil {
			t.Fatal(err)
		}
		shots := []struct{ angle, power float64 }{
			{35, 0.7}, {-50, 0.9}, {10, 0.4}, {-80, 1.0}, {60, 0.55},
		}
		for _, s := range shots {
			if m.Phase() != PhaseAwaitingInput {
				break
			}
			m.Fire(s.angle, s.power)
			stepToTerminal(t, m)
		}
		snap := m.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Same seed and inputs diverged: %d vs %d", h1, h2)
	}
}
