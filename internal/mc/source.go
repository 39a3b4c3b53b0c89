package mc

import "math/rand"

// Source is the injected random stream for the Monte Carlo driver.
// A single sequential stream per simulator; reproducibility requires
// that a given seed produce the same draw sequence in the same call
// order. Library code never touches the global rand state.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Range returns a uniform draw in [lo, hi).
	Range(lo, hi float64) float64
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
	// Seed resets the stream for a reproducible replay.
	Seed(seed int64)
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by math/rand with its own state.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 { return s.rng.Float64() }

func (s *randSource) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *randSource) Intn(n int) int { return s.rng.Intn(n) }

func (s *randSource) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}
