package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scorch/internal/core"
	"github.com/vovakirdan/tui-scorch/internal/engine"
	"github.com/vovakirdan/tui-scorch/internal/storage"
)

// Aiming increments per keypress.
const (
	angleStep = 2.0
	powerStep = 0.05
)

// How many ticks the explosion stays on screen.
const flashDuration = 12

// Model is the Bubble Tea model for playing a match.
type Model struct {
	match    *engine.Match
	matchCfg engine.MatchConfig
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper

	flashTicks  int
	flashCenter core.Vec2
	flashRadius float64

	nameInput    textinput.Model
	enteringName bool
	resultSaved  bool

	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for the given match settings.
func NewModel(matchCfg engine.MatchConfig, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if matchCfg.Seed == 0 {
		matchCfg.Seed = time.Now().UnixNano()
	}

	match, err := engine.NewMatch(matchCfg)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 24
	ti.Width = 24

	return Model{
		match:     match,
		matchCfg:  matchCfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		nameInput: ti,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionAngleLeft, core.ActionAngleRight, core.ActionPowerUp, core.ActionPowerDown:
		m.adjustAim(action)
	case core.ActionFire:
		if m.match.Phase() == engine.PhaseAwaitingInput {
			tank, err := m.match.Tank(m.match.CurrentPlayer())
			if err == nil {
				m.match.Fire(tank.Angle, tank.Power)
			}
		}
	case core.ActionRestart:
		if m.match.Phase() == engine.PhaseVictory {
			return m.restart()
		}
	}

	return m, nil
}

// adjustAim nudges the current tank's barrel or power.
func (m *Model) adjustAim(action core.Action) {
	tank, err := m.match.Tank(m.match.CurrentPlayer())
	if err != nil {
		return
	}
	angle, power := tank.Angle, tank.Power
	switch action {
	case core.ActionAngleLeft:
		angle += angleStep
	case core.ActionAngleRight:
		angle -= angleStep
	case core.ActionPowerUp:
		power += powerStep
	case core.ActionPowerDown:
		power -= powerStep
	}
	m.match.SetAim(angle, power)
}

// handleNameKey drives the winner-name prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveResult(m.nameInput.Value())
		m.enteringName = false
		return m, nil
	case "esc":
		// Skip the leaderboard entry
		m.enteringName = false
		m.resultSaved = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// saveResult records the winner on the leaderboard for this match size.
func (m *Model) saveResult(name string) {
	if m.resultSaved {
		return
	}
	winner := m.match.Winner()
	if winner < 0 {
		return
	}
	tank, err := m.match.Tank(winner)
	if err != nil {
		return
	}
	if name == "" {
		name = tank.Name
	}
	if m.store != nil {
		scores := m.match.Scores()
		//nolint:errcheck // Best-effort save, session continues regardless
		m.store.SaveResult(len(m.match.Tanks()), name, scores.Score(winner),
			scores.Kills(winner), scores.Shots(winner))
	}
	m.resultSaved = true
}

// restart begins a fresh match with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.matchCfg.Seed = time.Now().UnixNano()
	match, err := engine.NewMatch(m.matchCfg)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.match = match
	m.flashTicks = 0
	m.enteringName = false
	m.resultSaved = false
	m.nameInput.Reset()
	return m, nil
}

// handleTick advances the simulation while a shell is in flight.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.flashTicks > 0 {
		m.flashTicks--
	}

	if m.match.Phase() == engine.PhaseInFlight {
		dt := 1.0 / float64(m.config.TickRate)
		ev := m.match.Step(dt)
		switch ev.Kind {
		case engine.EventExplosion, engine.EventVictory:
			m.flashTicks = flashDuration
			m.flashCenter = ev.Center
			m.flashRadius = ev.Radius
			if ev.Kind == engine.EventVictory && m.store != nil && !m.resultSaved {
				m.enteringName = true
				m.nameInput.Focus()
			}
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawMatch(m.screen, m.match, m.flashTicks, m.flashCenter, m.flashRadius)
	out := RenderScreen(m.screen)

	if m.enteringName {
		out += "\nwinner's name for the board: " + m.nameInput.View()
	}
	return out
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given match settings.
func Run(matchCfg engine.MatchConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(matchCfg, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
