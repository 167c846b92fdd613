package cohort

import (
	"math"
	"testing"
)

func TestSigmoid(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{name: "zero", z: 0, want: 0.5},
		{name: "one", z: 1, want: 1 / (1 + math.Exp(-1))},
		{name: "minus one", z: -1, want: 1 / (1 + math.Exp(1))},
		{name: "large positive", z: 50, want: 1},
		{name: "large negative", z: -50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sigmoid(tt.z)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sigmoid(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestSigmoidStaysInOpenInterval(t *testing.T) {
	// Every log-odds score the stages produce is bounded well inside
	// this range, so Bernoulli parameters are never exactly 0 or 1.
	for z := -40.0; z <= 40; z += 1 {
		p := Sigmoid(z)
		if !(p > 0 && p < 1) {
			t.Errorf("Sigmoid(%v) = %v, want strictly inside (0,1)", z, p)
		}
	}
}

func TestSigmoidMonotonic(t *testing.T) {
	prev := Sigmoid(-10)
	for z := -9.5; z <= 10; z += 0.5 {
		cur := Sigmoid(z)
		if cur <= prev {
			t.Fatalf("Sigmoid not increasing at z=%v: %v <= %v", z, cur, prev)
		}
		prev = cur
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{name: "inside", x: 0.5, lo: 0, hi: 1, want: 0.5},
		{name: "below", x: -2, lo: 0, hi: 1, want: 0},
		{name: "above", x: 3, lo: 0, hi: 1, want: 1},
		{name: "at lower bound", x: -3, lo: -3, hi: 3, want: -3},
		{name: "at upper bound", x: 3, lo: -3, hi: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clip(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestIndicator(t *testing.T) {
	if indicator(true) != 1 {
		t.Error("indicator(true) != 1")
	}
	if indicator(false) != 0 {
		t.Error("indicator(false) != 0")
	}
}
