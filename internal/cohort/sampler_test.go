package cohort

import "testing"

func TestSamplerDeterminism(t *testing.T) {
	a := NewSampler(99)
	b := NewSampler(99)

	for i := 0; i < 1000; i++ {
		if got, want := a.IntBetween(0, 1000), b.IntBetween(0, 1000); got != want {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, got, want)
		}
	}
}

func TestSamplerSeedsDiverge(t *testing.T) {
	a := NewSampler(1)
	b := NewSampler(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.IntBetween(0, 1<<30) == b.IntBetween(0, 1<<30) {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical streams")
	}
}

func TestIntBetweenBounds(t *testing.T) {
	s := NewSampler(7)
	for i := 0; i < 5000; i++ {
		v := s.IntBetween(8, 20)
		if v < 8 || v > 20 {
			t.Fatalf("IntBetween(8, 20) = %d out of range", v)
		}
	}
}

func TestPickRespectsChoices(t *testing.T) {
	s := NewSampler(7)
	choices := []string{"a", "b", "c"}
	weights := []float64{0.2, 0.5, 0.3}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[s.Pick(choices, weights)]++
	}

	for got := range counts {
		found := false
		for _, c := range choices {
			if got == c {
				found = true
			}
		}
		if !found {
			t.Errorf("Pick returned unknown choice %q", got)
		}
	}
	// Loose frequency check: each weight within 3 points of expectation.
	for i, c := range choices {
		frac := float64(counts[c]) / 10000
		if frac < weights[i]-0.03 || frac > weights[i]+0.03 {
			t.Errorf("Pick(%q): observed %.3f, want ~%.2f", c, frac, weights[i])
		}
	}
}

func TestBinomialBounds(t *testing.T) {
	s := NewSampler(11)
	for i := 0; i < 2000; i++ {
		v := s.Binomial(5, 0.3)
		if v < 0 || v > 5 {
			t.Fatalf("Binomial(5, 0.3) = %d out of range", v)
		}
	}
	if got := s.Binomial(0, 0.3); got != 0 {
		t.Errorf("Binomial(0, 0.3) = %d, want 0", got)
	}
}

func TestPoissonNonNegative(t *testing.T) {
	s := NewSampler(13)
	for i := 0; i < 2000; i++ {
		if v := s.Poisson(1.5); v < 0 {
			t.Fatalf("Poisson(1.5) = %d, want >= 0", v)
		}
	}
}

func TestBernoulliIsBinary(t *testing.T) {
	s := NewSampler(17)
	ones := 0
	for i := 0; i < 10000; i++ {
		v := s.Bernoulli(0.5)
		if v != 0 && v != 1 {
			t.Fatalf("Bernoulli(0.5) = %d, want 0 or 1", v)
		}
		ones += v
	}
	frac := float64(ones) / 10000
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("Bernoulli(0.5): observed rate %.3f, want ~0.5", frac)
	}
}
