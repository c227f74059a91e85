package engine

import (
	"math"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

// Terrain is a destructible 1D heightfield: one surface elevation per
// horizontal unit column, y up. This deliberately approximates the ground as
// column heights rather than true 2D solid geometry; craters can make
// heights jump discontinuously between neighbouring columns, but there are
// no real overhangs or floating islands to manage.
type Terrain struct {
	heights   []float64
	maxHeight float64
}

// NewTerrain builds a terrain from per-column heights, clamping every value
// into [0, maxHeight].
func NewTerrain(heights []float64, maxHeight float64) *Terrain {
	hs := make([]float64, len(heights))
	for i, h := range heights {
		hs[i] = core.ClampF(h, 0, maxHeight)
	}
	return &Terrain{heights: hs, maxHeight: maxHeight}
}

// Width returns the number of columns.
func (t *Terrain) Width() int {
	return len(t.heights)
}

// HeightAt returns the surface elevation at world coordinate x.
// Coordinates outside the map clamp to the nearest edge column.
func (t *Terrain) HeightAt(x float64) float64 {
	col := core.Clamp(int(math.Floor(x)), 0, len(t.heights)-1)
	return t.heights[col]
}

// Carve removes a circular disc of material centred at center. For each
// column within radius horizontally, the vertical extent of the circle that
// lies inside the ground is removed and the columns above it settle down:
// the heightfield cannot keep a cavity open, so a buried explosion collapses
// the full chord height. Material is only ever removed; carving the same
// spot again deepens the crater because the surface has moved into the disc.
func (t *Terrain) Carve(center core.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	lo := core.Clamp(int(math.Floor(center.X-radius)), 0, len(t.heights)-1)
	hi := core.Clamp(int(math.Ceil(center.X+radius)), 0, len(t.heights)-1)

	for col := lo; col <= hi; col++ {
		dx := float64(col) - center.X
		if math.Abs(dx) > radius {
			continue
		}
		half := math.Sqrt(radius*radius - dx*dx)
		top := center.Y + half
		bottom := center.Y - half

		h := t.heights[col]
		removed := math.Min(h, top) - math.Max(0, bottom)
		if removed <= 0 {
			continue
		}
		t.heights[col] = core.ClampF(h-removed, 0, t.maxHeight)
	}
}

// Heights returns a copy of the height profile for rendering.
func (t *Terrain) Heights() []float64 {
	out := make([]float64, len(t.heights))
	copy(out, t.heights)
	return out
}
