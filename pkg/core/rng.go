package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRandomRNG creates an RNG seeded from the runtime's random source. Runs
// using it are not reproducible.
func NewRandomRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Reseed replaces the generator state so the following draws match a fresh
// NewRNG(seed).
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Chance performs a single Bernoulli draw that succeeds with probability p.
// Values of p at or below zero never succeed, values at or above one always do.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}
