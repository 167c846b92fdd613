// Package mcp provides an MCP (Model Context Protocol) server for synthab.
package mcp

// GenerateInput defines the input for the synthab_generate tool.
type GenerateInput struct {
	N             int     `json:"n,omitempty" jsonschema:"Number of records to generate (default: 20000)"`
	Seed          int64   `json:"seed,omitempty" jsonschema:"Random seed for reproducible output (default: 42)"`
	TreatmentRate float64 `json:"treatment_rate,omitempty" jsonschema:"Probability that a record is assigned variant B (0.0-1.0 exclusive, default: 0.5)"`
	Out           string  `json:"out,omitempty" jsonschema:"Output file path (default: data/cdc_outreach_ab_synthetic.csv)"`
	Format        string  `json:"format,omitempty" jsonschema:"Output format: 'csv' or 'sqlite' (default: 'csv')"`
}

// GenerateOutput defines the output for the synthab_generate tool.
type GenerateOutput struct {
	RunID    string       `json:"run_id" jsonschema:"Unique identifier recorded in the run manifest"`
	Rows     int          `json:"rows" jsonschema:"Number of records written"`
	Output   string       `json:"output" jsonschema:"Path of the written dataset"`
	Format   string       `json:"format" jsonschema:"Format the dataset was written in"`
	VariantA VariantStats `json:"variant_a" jsonschema:"Control arm statistics"`
	VariantB VariantStats `json:"variant_b" jsonschema:"Treatment arm statistics"`
	ATE      float64      `json:"ate" jsonschema:"Difference in scheduling rate between variants B and A"`
}

// VariantStats summarizes one experiment arm.
type VariantStats struct {
	Count         int     `json:"count" jsonschema:"Number of records in the arm"`
	ScheduledRate float64 `json:"scheduled_rate" jsonschema:"Share of records with scheduled_7d = 1"`
}

// SummaryInput defines the input for the synthab_summary tool.
type SummaryInput struct {
	Path    string `json:"path" jsonschema:"Path to a previously generated CSV dataset"`
	Preview int    `json:"preview,omitempty" jsonschema:"Number of preview rows to include (default: 0)"`
}

// SummaryOutput defines the output for the synthab_summary tool.
type SummaryOutput struct {
	Rows                    int              `json:"rows" jsonschema:"Number of records in the dataset"`
	VariantA                VariantStats     `json:"variant_a" jsonschema:"Control arm statistics"`
	VariantB                VariantStats     `json:"variant_b" jsonschema:"Treatment arm statistics"`
	ATE                     float64          `json:"ate" jsonschema:"Difference in scheduling rate between variants B and A"`
	Subgroups               []SubgroupUplift `json:"subgroups" jsonschema:"Scheduling uplift inside and outside each predefined subgroup"`
	CompletedGivenScheduled float64          `json:"completed_given_scheduled" jsonschema:"Completion rate among records that scheduled"`
	CompletedGivenNot       float64          `json:"completed_given_not" jsonschema:"Completion rate among records that did not schedule"`
}

// SubgroupUplift reports the variant gap inside and outside a subgroup.
type SubgroupUplift struct {
	Name    string  `json:"name" jsonschema:"Subgroup condition (e.g. 'barriers_index > 1')"`
	Inside  float64 `json:"inside" jsonschema:"B minus A scheduling gap inside the subgroup"`
	Outside float64 `json:"outside" jsonschema:"B minus A scheduling gap outside the subgroup"`
}
