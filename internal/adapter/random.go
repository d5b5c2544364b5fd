package adapter

import "math/rand/v2"

// Random defines an interface for uniform random draws to enable deterministic tests
//
//go:generate mockgen -source=random.go -destination=../mocks/random.go -package=mocks -mock_names=Random=MockRandom
type Random interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Int64N returns a uniform int64 in [0, n). n must be positive.
	Int64N(n int64) int64
}

// RealRandom implements Random with the auto-seeded math/rand/v2 source
type RealRandom struct{}

// NewRandom creates a new real random source
func NewRandom() Random {
	return &RealRandom{}
}

func (r *RealRandom) IntN(n int) int {
	return rand.IntN(n)
}

func (r *RealRandom) Int64N(n int64) int64 {
	return rand.Int64N(n)
}
