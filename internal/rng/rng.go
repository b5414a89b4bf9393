// Package rng provides the single deterministic random source a match uses.
//
// Every implementation must share one PRNG seeded from the match seed to
// remain deterministic. Every random draw in the engine — deck shuffles,
// "choose a random enemy," the revenge re-insertion index — goes through
// a Source carried on the match state, never through a package-level
// generator.
package rng

import "math/rand"

// Source is a seeded, replayable random generator. It is cheap to copy by
// reference only; the match state owns exactly one Source for its lifetime.
type Source struct {
	r *rand.Rand
}

// New creates a Source seeded from seed. Same seed, same draw sequence.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform value in [0, n). Panics if n <= 0, same as math/rand.
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a uniform value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Shuffle permutes a slice of length n in place using the swap function,
// matching rand.Rand.Shuffle's contract.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// PickIndex returns a uniformly chosen index among n live candidates, or -1
// if n is zero. Centralizes the "draw uniformly from the current live list"
// rule used throughout the effect resolver and combat tick.
func (s *Source) PickIndex(n int) int {
	if n <= 0 {
		return -1
	}
	if n == 1 {
		return 0
	}
	return s.r.Intn(n)
}
