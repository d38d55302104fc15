package sim

import (
	"math"
	"math/rand"
)

// Variates samples the distributions used by the model from a single
// deterministic stream. Callers guarantee mean > 0 and stddev >= 0.
type Variates struct {
	rng *rand.Rand
}

// NewVariates wraps rng. rng must not be nil.
func NewVariates(rng *rand.Rand) *Variates {
	if rng == nil {
		panic("NewVariates: rng must not be nil")
	}
	return &Variates{rng: rng}
}

// Exponential returns a non-negative sample with the given mean.
func (v *Variates) Exponential(mean float64) float64 {
	return v.rng.ExpFloat64() * mean
}

// NormalFloor returns max(floor, N(mean, stddev)).
// The floor keeps service times from going unrealistically short or negative.
func (v *Variates) NormalFloor(mean, stddev, floor float64) float64 {
	return math.Max(floor, v.rng.NormFloat64()*stddev+mean)
}

// Bernoulli returns true with probability p.
func (v *Variates) Bernoulli(p float64) bool {
	return v.rng.Float64() < p
}
