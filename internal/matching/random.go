package matching

import "math/rand/v2"

// Source supplies randomness for jitter and match decisions.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the process-wide generator, which is safe for
// concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a reproducible source. Not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
