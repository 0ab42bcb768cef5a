package kappa

import "math/rand/v2"

// Source supplies every probabilistic decision the engine makes. Each decision
// is one NextInt call compared against a precomputed threshold, so substituting
// a fixed-sequence source reproduces any run exactly.
type Source interface {
	// NextInt returns a uniformly distributed integer in [0, maxExclusive).
	NextInt(maxExclusive int) int
}

type systemSource struct{}

func (systemSource) NextInt(maxExclusive int) int {
	return rand.IntN(maxExclusive)
}

// SystemSource returns the default math/rand/v2 backed source.
func SystemSource() Source {
	return systemSource{}
}
