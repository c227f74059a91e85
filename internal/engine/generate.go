package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-scorch/internal/core"
)

// Terrain generation constants: the map is split into topology features
// (valleys, hills, plateaus) roughly featureSize columns wide, with small
// per-column noise on top and a flat pad levelled under each tank.
const (
	featureSize   = 200
	noiseSize     = 4
	tankPadMargin = 4.0
)

type featurePoint struct {
	x float64
	y float64
}

// generateTerrain builds a seeded random terrain and the resting positions
// of the tanks. tankXs must be strictly increasing column indices.
func generateTerrain(rng *rand.Rand, width int, mapHeight float64, tankXs []int) (*Terrain, []core.Vec2) {
	// Keep headroom above the highest hill so tanks always fit under the sky.
	maxHeight := mapHeight - 2*TankHeight

	points := topology(rng, width, mapHeight, maxHeight)
	heights := make([]float64, width)

	prev := core.ClampF(rng.Float64()*mapHeight, 1, maxHeight)
	next := 0
	for x := 0; x < width; x++ {
		for next < len(points) && points[next].x <= float64(x) {
			next++
		}
		target := prev
		if next < len(points) {
			p := points[next]
			distX := p.x - float64(x)
			if distX > 0 {
				target = prev + (p.y-prev)/distX
			} else {
				target = p.y
			}
		}
		noise := (rng.Float64()*2 - 1) * noiseSize
		prev = core.ClampF(target+noise, 1, maxHeight)
		heights[x] = prev
	}

	// Level a flat pad under each tank so it has solid, even footing.
	pad := TankWidth/2 + tankPadMargin
	tankPos := make([]core.Vec2, 0, len(tankXs))
	for _, tx := range tankXs {
		h := heights[core.Clamp(tx, 0, width-1)]
		lo := core.Clamp(int(math.Floor(float64(tx)-pad)), 0, width-1)
		hi := core.Clamp(int(math.Ceil(float64(tx)+pad)), 0, width-1)
		for x := lo; x <= hi; x++ {
			heights[x] = h
		}
		tankPos = append(tankPos, core.Vec2{X: float64(tx), Y: h})
	}

	return NewTerrain(heights, mapHeight), tankPos
}

// topology produces the feature control points the column walk interpolates
// toward. The same feature kind is never picked three times in a row.
func topology(rng *rand.Rand, width int, mapHeight, maxHeight float64) []featurePoint {
	numFeatures := int(math.Ceil(float64(width) / featureSize))
	kinds := []func(*rand.Rand, float64, float64, float64, float64) []featurePoint{
		valleyPoints,
		hillPoints,
		plateauPoints,
	}

	prevKinds := []int{rng.Intn(len(kinds)), rng.Intn(len(kinds))}
	initHeight := core.ClampF(rng.Float64()*mapHeight, 1, maxHeight)

	var points []featurePoint
	for i := 0; i < numFeatures; i++ {
		var idx int
		for {
			idx = rng.Intn(len(kinds))
			if !(prevKinds[0] == idx && prevKinds[1] == idx) {
				break
			}
		}
		feature := kinds[idx](rng, mapHeight, initHeight, maxHeight, featureSize)
		for _, p := range feature {
			points = append(points, featurePoint{x: p.x + float64(i*featureSize), y: p.y})
		}
		prevKinds = []int{prevKinds[1], idx}
	}
	return points
}

func valleyPoints(rng *rand.Rand, mapHeight, prev, maxHeight, size float64) []featurePoint {
	switch rng.Intn(3) {
	case 0: // deep
		if prev > mapHeight/2 {
			return []featurePoint{
				{size / 4, prev * 5 / 6},
				{size / 2, prev / 4},
				{size, mapHeight / 20},
			}
		}
		return []featurePoint{
			{size / 4, prev / 2},
			{size / 2, mapHeight / 10},
			{size, mapHeight / 20},
		}
	case 1: // shallow
		return []featurePoint{
			{size / 4, prev * 5 / 6},
			{size / 2, prev / 2},
			{size, prev / 4},
		}
	default: // wavy
		return []featurePoint{
			{size / 4, prev / 2},
			{size / 2, prev},
			{size * 3 / 4, prev / 2},
			{size, prev},
		}
	}
}

func hillPoints(rng *rand.Rand, mapHeight, prev, maxHeight, size float64) []featurePoint {
	if rng.Intn(2) == 0 { // steep
		if prev < mapHeight/2 {
			return []featurePoint{
				{size / 4, math.Min(prev*2, maxHeight)},
				{size / 2, math.Min(mapHeight*4/5, maxHeight)},
				{size, math.Min(mapHeight*9/10, maxHeight)},
			}
		}
		return []featurePoint{
			{size / 4, math.Min(mapHeight*4/5, maxHeight)},
			{size / 2, math.Min(mapHeight*9/10, maxHeight)},
			{size, math.Min(mapHeight*9/10, maxHeight)},
		}
	}
	// concave
	return []featurePoint{
		{size / 2, mapHeight / 2},
		{size, math.Min(mapHeight*3/4, maxHeight)},
	}
}

func plateauPoints(rng *rand.Rand, mapHeight, prev, maxHeight, size float64) []featurePoint {
	height := mapHeight/20 + rng.Float64()*(maxHeight-mapHeight/20)
	return []featurePoint{
		{size / 4, height},
		{size, height},
	}
}
