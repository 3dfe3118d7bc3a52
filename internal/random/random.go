// Package random provides the injectable random source used by the
// simulation engine, the player generator and the bracket builder.
package random

import "math/rand/v2"

// Source is the subset of *rand.Rand used across the domain.
type Source interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type global struct{}

// Global returns a Source backed by the runtime-seeded top-level generator.
// It is safe for concurrent use.
func Global() Source { return global{} }

func (global) Float64() float64                   { return rand.Float64() }
func (global) IntN(n int) int                     { return rand.IntN(n) }
func (global) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// NewSeeded returns a deterministic Source. It is not safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntRange returns a uniformly random integer in [lo, hi].
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick returns a uniformly random element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
