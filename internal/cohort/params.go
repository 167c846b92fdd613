package cohort

import "fmt"

// Params controls a single generation run. The zero value is not valid;
// use DefaultParams and override fields as needed.
type Params struct {
	// N is the number of person records to generate.
	N int

	// Seed initializes the random source. Two runs with identical
	// (N, Seed, TreatmentRate) produce identical tables.
	Seed int64

	// TreatmentRate is the marginal probability of assigning variant B.
	// Must lie strictly inside (0, 1).
	TreatmentRate float64
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		N:             20000,
		Seed:          42,
		TreatmentRate: 0.5,
	}
}

// Validate checks the parameters before any random draw happens.
func (p Params) Validate() error {
	if p.N <= 0 {
		return fmt.Errorf("n must be positive, got %d", p.N)
	}
	if p.TreatmentRate <= 0 || p.TreatmentRate >= 1 {
		return fmt.Errorf("treatment_rate must be in (0, 1), got %g", p.TreatmentRate)
	}
	return nil
}
