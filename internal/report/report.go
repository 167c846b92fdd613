// Package report computes the console-facing summary of a generated
// cohort: a row preview, scheduling rate by variant, and the subgroup
// uplift breakdown.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/nvandessel/synthab/internal/cohort"
)

// VariantStats summarizes one treatment arm.
type VariantStats struct {
	Count         int     `json:"count"`
	ScheduledRate float64 `json:"scheduled_rate"`
}

// SubgroupUplift holds the B-A scheduling gap inside a subgroup and in
// its complement.
type SubgroupUplift struct {
	Name    string  `json:"name"`
	Inside  float64 `json:"inside"`
	Outside float64 `json:"outside"`
}

// Summary is the full report for one cohort.
type Summary struct {
	Rows                    int                     `json:"rows"`
	Header                  []string                `json:"header"`
	Preview                 [][]string              `json:"preview"`
	Variants                map[string]VariantStats `json:"variants"`
	ATE                     float64                 `json:"ate"`
	Subgroups               []SubgroupUplift        `json:"subgroups"`
	CompletedGivenScheduled float64                 `json:"completed_given_scheduled"`
	CompletedGivenNot       float64                 `json:"completed_given_not_scheduled"`
}

// Summarize builds the summary with up to previewRows preview rows.
func Summarize(t *cohort.Table, previewRows int) Summary {
	if previewRows > t.Len() {
		previewRows = t.Len()
	}
	preview := make([][]string, 0, previewRows)
	for i := 0; i < previewRows; i++ {
		preview = append(preview, rowCells(t, i))
	}

	s := Summary{
		Rows:     t.Len(),
		Header:   cohort.Columns,
		Preview:  preview,
		Variants: map[string]VariantStats{},
	}

	for _, v := range []string{cohort.VariantA, cohort.VariantB} {
		rate, n := meanWhere(t.Scheduled7d, func(i int) bool { return t.MessageVariant[i] == v })
		s.Variants[v] = VariantStats{Count: n, ScheduledRate: orZero(rate)}
	}
	s.ATE = s.Variants[cohort.VariantB].ScheduledRate - s.Variants[cohort.VariantA].ScheduledRate

	subgroups := []struct {
		name string
		keep func(i int) bool
	}{
		{"barriers_index > 1", func(i int) bool { return t.BarriersIndex[i] > 1.0 }},
		{"age >= 60", func(i int) bool { return t.Age[i] >= 60 }},
		{"risk_score >= 0.6", func(i int) bool { return t.RiskScore[i] >= 0.6 }},
	}
	for _, sg := range subgroups {
		inside := variantGap(t, sg.keep)
		outside := variantGap(t, func(i int) bool { return !sg.keep(i) })
		s.Subgroups = append(s.Subgroups, SubgroupUplift{
			Name:    sg.name,
			Inside:  orZero(inside),
			Outside: orZero(outside),
		})
	}

	completed, _ := meanWhere(t.Completed30d, func(i int) bool { return t.Scheduled7d[i] == 1 })
	notCompleted, _ := meanWhere(t.Completed30d, func(i int) bool { return t.Scheduled7d[i] == 0 })
	s.CompletedGivenScheduled = orZero(completed)
	s.CompletedGivenNot = orZero(notCompleted)

	return s
}

// orZero maps the NaN an empty selection produces to 0 so summaries stay
// JSON-encodable for tiny cohorts.
func orZero(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}

// Render formats the summary for the console.
func (s Summary) Render() string {
	var sb strings.Builder

	if len(s.Preview) > 0 {
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(s.Header, "\t"))
		for _, row := range s.Preview {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		w.Flush()
		sb.WriteString("\n")
	}

	sb.WriteString("Scheduling rate by variant:\n")
	for _, v := range []string{cohort.VariantA, cohort.VariantB} {
		vs := s.Variants[v]
		fmt.Fprintf(&sb, "  %s  %.4f  (%d records)\n", v, vs.ScheduledRate, vs.Count)
	}
	fmt.Fprintf(&sb, "Average treatment effect (B-A): %+.4f\n", s.ATE)

	sb.WriteString("\nUplift by subgroup (inside / outside):\n")
	for _, sg := range s.Subgroups {
		fmt.Fprintf(&sb, "  %-20s %+.4f / %+.4f\n", sg.Name, sg.Inside, sg.Outside)
	}

	fmt.Fprintf(&sb, "\nCompletion rate: %.4f scheduled vs %.4f unscheduled\n",
		s.CompletedGivenScheduled, s.CompletedGivenNot)

	return sb.String()
}

// rowCells formats one record in column order, matching the export
// rendering of each field.
func rowCells(t *cohort.Table, i int) []string {
	return []string{
		strconv.Itoa(t.ID[i]),
		strconv.Itoa(t.Age[i]),
		t.Sex[i],
		t.Region[i],
		strconv.FormatFloat(t.RiskScore[i], 'g', -1, 64),
		strconv.FormatFloat(t.BarriersIndex[i], 'g', -1, 64),
		strconv.Itoa(t.PriorInteractions90[i]),
		strconv.Itoa(t.PriorAppointments1y[i]),
		strconv.Itoa(t.MissedAppointments[i]),
		t.Channel[i],
		strconv.Itoa(t.SendHour[i]),
		strconv.Itoa(t.Weekday[i]),
		t.MessageVariant[i],
		strconv.Itoa(t.Opened[i]),
		strconv.Itoa(t.Clicked[i]),
		strconv.Itoa(t.Scheduled7d[i]),
		strconv.Itoa(t.Completed30d[i]),
	}
}

// meanWhere returns the mean of a binary column over the selected rows
// and how many rows were selected. An empty selection yields NaN.
func meanWhere(vals []int, keep func(i int) bool) (float64, int) {
	xs := make([]float64, 0, len(vals))
	for i, v := range vals {
		if keep(i) {
			xs = append(xs, float64(v))
		}
	}
	if len(xs) == 0 {
		return math.NaN(), 0
	}
	return stat.Mean(xs, nil), len(xs)
}

// variantGap is rate(B) - rate(A) of scheduled_7d within the selection.
func variantGap(t *cohort.Table, keep func(i int) bool) float64 {
	rateB, _ := meanWhere(t.Scheduled7d, func(i int) bool {
		return keep(i) && t.MessageVariant[i] == cohort.VariantB
	})
	rateA, _ := meanWhere(t.Scheduled7d, func(i int) bool {
		return keep(i) && t.MessageVariant[i] == cohort.VariantA
	})
	return rateB - rateA
}
