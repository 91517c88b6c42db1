// Package rng wraps math/rand/v2 for deterministic seeding of random soups.
package rng

import "math/rand/v2"

// RNG is a deterministic random source.
type RNG struct {
	r *rand.Rand
}

// New creates an RNG from the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// ChanceN reports true with probability 1/n.
func (r *RNG) ChanceN(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
