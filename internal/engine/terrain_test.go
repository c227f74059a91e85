package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

func flatTerrain(width int, height, maxHeight float64) *Terrain {
	heights := make([]float64, width)
	for i := range heights {
		heights[i] = height
	}
	return NewTerrain(heights, maxHeight)
}

func TestCarveLowersCrater(t *testing.T) {
	// A surface explosion on flat ground should dig a crater: deepest at
	// the centre column, shallower toward the rim, untouched outside it.
	terr := flatTerrain(1000, 500, 600)

	terr.Carve(core.Vec2{X: 400, Y: 500}, 10)

	center := terr.HeightAt(400)
	if center >= 500 {
		t.Fatalf("Centre column should be lowered, got %.2f", center)
	}
	// At the centre the chord overlapping the ground is the bottom half
	// of the blast circle, so the surface drops by the full radius.
	if center < 489.9 || center > 490.1 {
		t.Errorf("Centre column should drop by the radius to ~490, got %.2f", center)
	}

	rim := terr.HeightAt(408)
	if rim <= center {
		t.Errorf("Rim column should be shallower than centre: rim %.2f, centre %.2f", rim, center)
	}
	if rim >= 500 {
		t.Errorf("Rim column inside the radius should still be lowered, got %.2f", rim)
	}

	if h := terr.HeightAt(411); h != 500 {
		t.Errorf("Column outside the radius should be untouched, got %.2f", h)
	}
	if h := terr.HeightAt(389); h != 500 {
		t.Errorf("Column outside the radius should be untouched, got %.2f", h)
	}
}

func TestCarveNeverRaisesOrUnderflows(t *testing.T) {
	terr := flatTerrain(200, 30, 600)
	before := terr.Heights()

	// Blast bigger than the remaining ground: columns bottom out at zero.
	terr.Carve(core.Vec2{X: 100, Y: 10}, 80)

	after := terr.Heights()
	for x := range after {
		if after[x] > before[x] {
			t.Fatalf("Column %d raised by a carve: %.2f -> %.2f", x, before[x], after[x])
		}
		if after[x] < 0 {
			t.Fatalf("Column %d went below zero: %.2f", x, after[x])
		}
	}
	if terr.HeightAt(100) != 0 {
		t.Errorf("Centre column should bottom out at 0, got %.2f", terr.HeightAt(100))
	}
}

func TestCarveAboveSurfaceIsNoop(t *testing.T) {
	// An air burst whose circle never reaches the ground leaves it alone.
	terr := flatTerrain(100, 50, 600)
	terr.Carve(core.Vec2{X: 50, Y: 200}, 20)

	for x, h := range terr.Heights() {
		if h != 50 {
			t.Fatalf("Air burst changed column %d to %.2f", x, h)
		}
	}
}

func TestHeightAtClampsOutOfRange(t *testing.T) {
	heights := []float64{10, 20, 30}
	terr := NewTerrain(heights, 600)

	if h := terr.HeightAt(-5); h != 10 {
		t.Errorf("Query left of the map should clamp to column 0, got %.2f", h)
	}
	if h := terr.HeightAt(999); h != 30 {
		t.Errorf("Query right of the map should clamp to the last column, got %.2f", h)
	}
}

func TestGenerateTerrainPadsAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tankXs := []int{100, 400, 700}

	terr, positions := generateTerrain(rng, 800, 600, tankXs)

	if terr.Width() != 800 {
		t.Fatalf("Expected 800 columns, got %d", terr.Width())
	}
	if len(positions) != len(tankXs) {
		t.Fatalf("Expected %d tank positions, got %d", len(tankXs), len(positions))
	}

	maxHeight := 600 - 2*TankHeight
	for x, h := range terr.Heights() {
		if h < 1 || h > maxHeight {
			t.Fatalf("Column %d out of [1, %.0f]: %.2f", x, maxHeight, h)
		}
	}

	// Each tank sits on a flat pad at its own ground height.
	for i, pos := range positions {
		if int(pos.X) != tankXs[i] {
			t.Errorf("Tank %d placed at x=%.0f, want %d", i, pos.X, tankXs[i])
		}
		for dx := -(int(TankWidth) / 2); dx <= int(TankWidth)/2; dx++ {
			if h := terr.HeightAt(pos.X + float64(dx)); h != pos.Y {
				t.Errorf("Tank %d pad uneven at offset %d: %.2f vs %.2f", i, dx, h, pos.Y)
			}
		}
	}
}
