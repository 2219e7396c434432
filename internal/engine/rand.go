package engine

import (
	"math/rand"
	"time"
)

// RandSource is the subset of *rand.Rand the engine needs to spawn tiles.
// Tests substitute a scripted source to pin exact spawn outcomes.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a RandSource seeded with seed, or with the current time
// when seed is 0.
func NewRand(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
