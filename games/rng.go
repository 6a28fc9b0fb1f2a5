package games

import (
	"math/rand"
	"time"
)

// Rand is the randomness source the engines draw from. *rand.Rand
// satisfies it; tests inject a seeded source to make rounds
// deterministic.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a time-seeded source for production use
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// WeightedIndex picks an index with probability proportional to its
// weight. Weights must be positive.
func WeightedIndex(rng Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	roll := rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}
