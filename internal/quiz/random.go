package quiz

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness source used for shuffling and direction selection.
type Rand interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandFromTime returns a source seeded from the wall clock.
func NewRandFromTime() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// Shuffle returns a new slice holding every element of items exactly once,
// in random order. items is not modified.
func Shuffle[T any](r Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RandomDirection picks one of the two quiz directions with equal probability.
func RandomDirection(r Rand) Direction {
	if r.IntN(2) == 0 {
		return PresentToPast
	}
	return PastToPresent
}
