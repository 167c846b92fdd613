// Package cohort generates a synthetic outreach A/B test cohort with a
// known, heterogeneous treatment effect.
//
// Generation runs five stages over one seeded sampler: demographics and a
// vulnerability score, behavioral covariates, independent variant
// assignment, engagement mediators (opened/clicked), and the two binary
// outcomes. Variant assignment never conditions on a covariate, so the
// A/B comparison in the output is unbiased by construction. Variant B
// carries a positive effect on scheduling that is larger for high-barriers,
// older, and higher-risk records, partly flowing through engagement.
package cohort

import "math"

// Generate runs the full pipeline and returns the populated table.
// It is a pure function of its parameters: no I/O, no shared state, and
// the same (N, Seed, TreatmentRate) always yields the same table.
func Generate(p Params) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := NewSampler(p.Seed)
	t := newTable(p.N)

	drawDemographics(s, t)
	drawBehavioral(s, t)
	assignVariant(s, t, p.TreatmentRate)
	simulateEngagement(s, t)
	simulateOutcomes(s, t)
	roundScores(t)

	return t, nil
}

// drawDemographics fills age, sex, region, and the age-correlated risk
// score (clipped to [0, 1]).
func drawDemographics(s *Sampler, t *Table) {
	n := t.Len()
	for i := 0; i < n; i++ {
		t.Age[i] = s.IntBetween(18, 85)
	}
	for i := 0; i < n; i++ {
		t.Sex[i] = s.Pick([]string{SexF, SexM}, []float64{0.52, 0.48})
	}
	for i := 0; i < n; i++ {
		t.Region[i] = s.Pick(
			[]string{RegionATLCore, RegionATLMetro, RegionNorthGA, RegionSouthGA},
			[]float64{0.35, 0.35, 0.15, 0.15})
	}
	for i := 0; i < n; i++ {
		t.RiskScore[i] = Clip(0.15+0.007*float64(t.Age[i]-18)+s.Normal(0, 0.12), 0, 1)
	}
}

// drawBehavioral fills prior-engagement counts, the barriers index, and
// delivery channel/timing. Counts scale with risk; barriers are elevated
// for the rural regions and the oldest records.
func drawBehavioral(s *Sampler, t *Table) {
	n := t.Len()
	for i := 0; i < n; i++ {
		t.PriorInteractions90[i] = s.Poisson(Clip(0.6+2.0*t.RiskScore[i], 0.2, 4.0))
	}
	for i := 0; i < n; i++ {
		t.PriorAppointments1y[i] = s.Poisson(Clip(0.3+1.3*t.RiskScore[i], 0.1, 3.0))
	}
	for i := 0; i < n; i++ {
		p := Clip(0.08+0.18*(1-t.RiskScore[i]), 0.05, 0.35)
		t.MissedAppointments[i] = s.Binomial(t.PriorAppointments1y[i]+1, p)
	}
	for i := 0; i < n; i++ {
		t.BarriersIndex[i] = Clip(
			s.Normal(0, 1)+
				0.8*indicator(t.Region[i] == RegionSouthGA)+
				0.25*indicator(t.Region[i] == RegionNorthGA)+
				0.15*indicator(t.Age[i] > 70),
			-3, 3)
	}
	for i := 0; i < n; i++ {
		t.Channel[i] = s.Pick(
			[]string{ChannelSMS, ChannelEmail, ChannelIVR},
			[]float64{0.65, 0.25, 0.10})
	}
	for i := 0; i < n; i++ {
		t.SendHour[i] = s.IntBetween(8, 20)
	}
	for i := 0; i < n; i++ {
		t.Weekday[i] = s.IntBetween(0, 6)
	}
}

// assignVariant randomizes the treatment label. It reads no covariate:
// conditioning on one would bias every downstream effect estimate and
// defeat the dataset's purpose.
func assignVariant(s *Sampler, t *Table, treatmentRate float64) {
	n := t.Len()
	for i := 0; i < n; i++ {
		if s.Bernoulli(treatmentRate) == 1 {
			t.MessageVariant[i] = VariantB
		} else {
			t.MessageVariant[i] = VariantA
		}
	}
}

// simulateEngagement draws the two chained mediators. Variant B gets a
// direct log-odds bonus on both (0.10 open, 0.15 click), so part of its
// outcome effect flows through engagement rather than directly.
func simulateEngagement(s *Sampler, t *Table) {
	n := t.Len()
	for i := 0; i < n; i++ {
		openLogit := -0.4 +
			0.25*indicator(t.Channel[i] == ChannelSMS) +
			0.10*indicator(t.Channel[i] == ChannelEmail) -
			0.22*t.BarriersIndex[i] +
			0.08*math.Log1p(float64(t.PriorInteractions90[i])) +
			0.10*indicator(t.SendHour[i] >= 17) +
			0.08*indicator(t.Weekday[i] >= 5) +
			0.10*indicator(t.MessageVariant[i] == VariantB)
		t.Opened[i] = s.Bernoulli(Sigmoid(openLogit))
	}
	for i := 0; i < n; i++ {
		clickLogit := -1.2 +
			0.45*float64(t.Opened[i]) +
			0.18*indicator(t.Channel[i] == ChannelSMS) -
			0.20*t.BarriersIndex[i] +
			0.10*math.Log1p(float64(t.PriorAppointments1y[i])) +
			0.15*indicator(t.MessageVariant[i] == VariantB)
		t.Clicked[i] = s.Bernoulli(Sigmoid(clickLogit))
	}
}

// simulateOutcomes draws scheduled_7d with the heterogeneous treatment
// term, then completed_30d conditional on scheduling.
func simulateOutcomes(s *Sampler, t *Table) {
	n := t.Len()
	for i := 0; i < n; i++ {
		base := -2.0 +
			0.95*t.RiskScore[i] -
			0.55*t.BarriersIndex[i] +
			0.25*math.Log1p(float64(t.PriorAppointments1y[i])) -
			0.35*indicator(t.MissedAppointments[i] > 0) +
			0.55*float64(t.Opened[i]) +
			0.75*float64(t.Clicked[i]) +
			0.12*indicator(t.Channel[i] == ChannelSMS)

		// The treatment term is zero for variant A. For B it is largest
		// for high-barriers, older, and higher-risk records.
		hetero := 0.0
		if t.MessageVariant[i] == VariantB {
			hetero = 0.18 +
				0.10*indicator(t.BarriersIndex[i] > 1.0) +
				0.08*indicator(t.Age[i] >= 60) +
				0.10*indicator(t.RiskScore[i] >= 0.6)
		}

		t.Scheduled7d[i] = s.Bernoulli(Sigmoid(base + hetero))
	}
	for i := 0; i < n; i++ {
		compBase := -1.7 +
			2.2*float64(t.Scheduled7d[i]) +
			0.35*t.RiskScore[i] -
			0.45*t.BarriersIndex[i] -
			0.25*indicator(t.MissedAppointments[i] > 0) +
			0.10*math.Log1p(float64(t.PriorAppointments1y[i]))
		t.Completed30d[i] = s.Bernoulli(Sigmoid(compBase))
	}
}

// roundScores rounds the real-valued columns to 3 decimals once all
// downstream draws have consumed the unrounded values. Exports and the
// in-memory table therefore agree exactly.
func roundScores(t *Table) {
	for i := range t.RiskScore {
		t.RiskScore[i] = math.Round(t.RiskScore[i]*1000) / 1000
	}
	for i := range t.BarriersIndex {
		t.BarriersIndex[i] = math.Round(t.BarriersIndex[i]*1000) / 1000
	}
}
