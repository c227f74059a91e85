package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-scorch/internal/core"
	"github.com/vovakirdan/tui-scorch/internal/engine"
)

// Rows at the top of the screen reserved for the HUD.
const hudRows = 2

// worldView maps simulation coordinates (y pointing up) onto screen cells
// (row 0 at the top), with the HUD rows excluded from the battlefield.
type worldView struct {
	mapW float64
	mapH float64
	cols int
	rows int
}

func newWorldView(cfg engine.MatchConfig, s *core.Screen) worldView {
	rows := s.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return worldView{mapW: cfg.MapWidth, mapH: cfg.MapHeight, cols: s.Width(), rows: rows}
}

func (v worldView) colFor(x float64) int {
	c := int(x / v.mapW * float64(v.cols))
	return core.Clamp(c, 0, v.cols-1)
}

func (v worldView) rowFor(y float64) int {
	r := int(y / v.mapH * float64(v.rows))
	r = core.Clamp(r, 0, v.rows-1)
	return hudRows + v.rows - 1 - r
}

// worldX returns the simulation x sampled at the centre of a screen column.
func (v worldView) worldX(col int) float64 {
	return (float64(col) + 0.5) * v.mapW / float64(v.cols)
}

// drawMatch renders the full battlefield and HUD into the screen buffer.
// flashTicks > 0 draws the explosion at flashCenter.
func drawMatch(s *core.Screen, m *engine.Match, flashTicks int, flashCenter core.Vec2, flashRadius float64) {
	s.Clear()
	v := newWorldView(m.Config(), s)

	drawTerrain(s, v, m)
	drawTraces(s, v, m)
	drawTanks(s, v, m)

	if pos, ok := m.ShellPosition(); ok {
		s.SetColored(v.colFor(pos.X), v.rowFor(pos.Y), '*', core.ColorBrightWhite)
	}
	if flashTicks > 0 {
		drawExplosion(s, v, flashCenter, flashRadius)
	}

	drawHUD(s, m)

	if m.Phase() == engine.PhaseVictory {
		drawVictoryBanner(s, m)
	}
}

func drawTerrain(s *core.Screen, v worldView, m *engine.Match) {
	heights := m.TerrainHeights()
	for col := 0; col < v.cols; col++ {
		x := int(v.worldX(col))
		if x >= len(heights) {
			x = len(heights) - 1
		}
		top := v.rowFor(heights[x])
		s.SetColored(col, top, '▓', core.ColorGreen)
		s.DrawVLineColored(col, top+1, hudRows+v.rows-top-1, '▒', core.ColorGreen)
	}
}

// drawTraces sketches each player's last completed shot as a faint dotted
// arc, sampled sparsely so it reads as a path rather than a wall.
func drawTraces(s *core.Screen, v worldView, m *engine.Match) {
	for _, t := range m.Tanks() {
		trace := m.LastTrace(t.ID)
		for i := 0; i < len(trace); i += 5 {
			p := trace[i]
			col, row := v.colFor(p.X), v.rowFor(p.Y)
			if s.Get(col, row) == ' ' {
				s.SetColored(col, row, '·', core.ColorGray)
			}
		}
	}
}

func drawTanks(s *core.Screen, v worldView, m *engine.Match) {
	current := m.CurrentPlayer()
	for _, t := range m.Tanks() {
		bounds := t.Bounds()
		c0 := v.colFor(bounds.X)
		c1 := v.colFor(bounds.Right())
		row := v.rowFor(t.Center().Y)

		if !t.Alive {
			for c := c0; c <= c1; c++ {
				s.SetColored(c, row, 'x', core.ColorGray)
			}
			continue
		}

		for c := c0; c <= c1; c++ {
			s.SetColored(c, row, '█', t.Color)
		}
		drawBarrel(s, t, (c0+c1)/2, row)

		if t.ID == current && m.Phase() == engine.PhaseAwaitingInput {
			s.SetColored((c0+c1)/2, row-2, '▾', core.ColorBrightYellow)
		}
	}
}

// drawBarrel picks a one-cell barrel glyph from the aim angle. Positive
// angles lean left.
func drawBarrel(s *core.Screen, t engine.Tank, col, row int) {
	switch {
	case t.Angle > 67:
		s.SetColored(col-1, row, '─', t.Color)
	case t.Angle > 22:
		s.SetColored(col-1, row-1, '\\', t.Color)
	case t.Angle < -67:
		s.SetColored(col+1, row, '─', t.Color)
	case t.Angle < -22:
		s.SetColored(col+1, row-1, '/', t.Color)
	default:
		s.SetColored(col, row-1, '|', t.Color)
	}
}

func drawExplosion(s *core.Screen, v worldView, center core.Vec2, radius float64) {
	c0, c1 := v.colFor(center.X-radius), v.colFor(center.X+radius)
	r0, r1 := v.rowFor(center.Y+radius), v.rowFor(center.Y-radius)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dx := v.worldX(col) - center.X
			dy := (float64(hudRows+v.rows-1-row) + 0.5) * v.mapH / float64(v.rows) - center.Y
			if dx*dx+dy*dy <= radius*radius {
				s.SetColored(col, row, '*', core.ColorBrightYellow)
			}
		}
	}
}

// windText formats the current wind for the HUD: an arrow showing the
// direction it blows, or NO WIND when dead calm.
func windText(w float64) string {
	switch {
	case w > 0:
		return fmt.Sprintf("%.2f >", w)
	case w < 0:
		return fmt.Sprintf("< %.2f", -w)
	default:
		return "NO WIND"
	}
}

func drawHUD(s *core.Screen, m *engine.Match) {
	cur, err := m.Tank(m.CurrentPlayer())
	if err != nil {
		return
	}

	status := fmt.Sprintf(" %s  angle %+.0f  power %.2f  wind %s",
		cur.Name, cur.Angle, cur.Power, windText(m.Wind()))
	s.DrawTextColored(0, 0, status, cur.Color)

	var sb strings.Builder
	sb.WriteRune(' ')
	scores := m.Scores()
	for i, t := range m.Tanks() {
		if i > 0 {
			sb.WriteString("  ")
		}
		mark := ""
		if !t.Alive {
			mark = "+"
		}
		sb.WriteString(fmt.Sprintf("%s%s %d/%d", mark, t.Name, scores.Kills(t.ID), scores.Shots(t.ID)))
	}
	s.DrawTextColored(0, 1, sb.String(), core.ColorGray)
}

func drawVictoryBanner(s *core.Screen, m *engine.Match) {
	winner, err := m.Tank(m.Winner())
	if err != nil {
		return
	}
	scores := m.Scores()
	line := fmt.Sprintf(" %s WINS  score %.2f (%d kills / %d shots) ",
		winner.Name, scores.Score(winner.ID), scores.Kills(winner.ID), scores.Shots(winner.ID))
	hint := "press r to play again, q to quit"

	w := core.Max(len(line), len(hint)) + 4
	h := 5
	x := (s.Width() - w) / 2
	y := s.Height()/2 - 1
	s.FillRect(x, y, w, h, ' ')
	s.DrawBox(x, y, w, h)
	s.DrawTextColored((s.Width()-len(line))/2, y+1, line, winner.Color)
	s.DrawTextCentered(y+3, hint)
}
