package cohort

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler wraps a seeded PCG source and exposes the draw primitives the
// generation stages need. All distribution draws share the one source, so
// a Sampler fully determines the output stream for a given seed.
type Sampler struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewSampler creates a sampler seeded deterministically from seed.
func NewSampler(seed int64) *Sampler {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return &Sampler{
		src: src,
		rng: rand.New(src),
	}
}

// IntBetween draws a uniform integer in [lo, hi] inclusive.
func (s *Sampler) IntBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Pick draws one of choices with the given weights. Weights must sum to 1;
// the last choice absorbs any floating-point remainder.
func (s *Sampler) Pick(choices []string, weights []float64) string {
	u := s.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

// Normal draws from N(mu, sigma).
func (s *Sampler) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Poisson draws a count from Pois(lambda).
func (s *Sampler) Poisson(lambda float64) int {
	return int(distuv.Poisson{Lambda: lambda, Src: s.src}.Rand())
}

// Binomial draws the number of successes in n trials with probability p.
func (s *Sampler) Binomial(n int, p float64) int {
	if n == 0 {
		return 0
	}
	return int(distuv.Binomial{N: float64(n), P: p, Src: s.src}.Rand())
}

// Bernoulli draws 0 or 1 with success probability p.
func (s *Sampler) Bernoulli(p float64) int {
	return int(distuv.Bernoulli{P: p, Src: s.src}.Rand())
}
