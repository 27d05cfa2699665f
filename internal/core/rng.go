package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Every stochastic component takes an explicit *RNG so that episode
// resets and tests are reproducible; nothing in the repository touches the
// global random state.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a random int in [0, n). It panics when n <= 0.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int { return r.r.Perm(n) }

// Sample returns k distinct values drawn uniformly from [0, n) without
// replacement. It panics when k > n.
func (r *RNG) Sample(n, k int) []int {
	if k > n {
		panic("core: sample size exceeds population")
	}
	return r.r.Perm(n)[:k]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
