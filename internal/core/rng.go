package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with a PCG source so a seed always yields the same
// board.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// Seed fills buf with Alive cells at the given density and Dead elsewhere.
func (r *RNG) Seed(buf []uint8, density float64) {
	for i := range buf {
		if r.Chance(density) {
			buf[i] = Alive
			continue
		}
		buf[i] = Dead
	}
}
