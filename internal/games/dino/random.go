package dino

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource is the single generator the simulation draws from.
// *rand.Rand satisfies it; tests inject a seeded one or a scripted fake.
type RandomSource interface {
	Float64() float64
}

// NewRandom returns a seeded generator. A zero seed uses the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomNum returns an integer uniformly drawn from [min, max].
func randomNum(rng RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	n := int(math.Floor(rng.Float64()*float64(max-min+1))) + min
	// Float64 is in [0, 1), but guard against sources that return 1.
	if n > max {
		n = max
	}
	return n
}
