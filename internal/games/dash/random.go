package dash

import "math/rand"

// Source supplies the randomness used for course generation.
// Tests inject scripted sources to make placement deterministic.
type Source interface {
	// Uniform returns an integer in [min, max]. min must not exceed max.
	Uniform(min, max int) int

	// Chance returns true with probability p.
	Chance(p float64) bool
}

// randSource is a Source backed by math/rand.
type randSource struct {
	rng *rand.Rand
}

// NewRandSource creates a seeded Source. The same seed yields the same course.
func NewRandSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns an integer in [min, max].
func (s *randSource) Uniform(min, max int) int {
	if max == min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Chance returns true with probability p.
func (s *randSource) Chance(p float64) bool {
	return s.rng.Float64() < p
}
