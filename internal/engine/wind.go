package engine

import "math/rand"

// WindGenerator produces the per-turn wind: a signed magnitude drawn
// uniformly from [-maxStrength, +maxStrength]. Draws are independent; the
// generator keeps no memory of prior turns beyond its RNG stream.
type WindGenerator struct {
	rng *rand.Rand
}

// NewWindGenerator creates a generator backed by the given seeded source.
func NewWindGenerator(rng *rand.Rand) *WindGenerator {
	return &WindGenerator{rng: rng}
}

// Next returns a new wind value bounded by maxStrength.
func (w *WindGenerator) Next(maxStrength float64) float64 {
	return (w.rng.Float64()*2 - 1) * maxStrength
}
