package cohort

import "math"

// Sigmoid maps a log-odds score to a probability. The result is strictly
// inside (0, 1) for any finite input, which is what keeps every Bernoulli
// parameter in the pipeline valid.
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Clip forces x into [lo, hi]. The stages use it to keep Poisson and
// binomial parameters inside their valid domains before sampling; the
// bounds are part of the model, not a safety net.
func Clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// indicator converts a condition into the 0/1 term used by the
// log-odds formulas.
func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
