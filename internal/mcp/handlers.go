package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/synthab/internal/cohort"
	"github.com/nvandessel/synthab/internal/export"
	"github.com/nvandessel/synthab/internal/report"
)

// registerTools registers all synthab MCP tools with the server.
func (s *Server) registerTools() error {
	// Register synthab_generate tool
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "synthab_generate",
		Description: "Generate a synthetic CDC outreach A/B test dataset and write it to disk",
	}, s.handleGenerate)

	// Register synthab_summary tool
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "synthab_summary",
		Description: "Summarize a previously generated dataset: variant rates, uplift, and subgroup gaps",
	}, s.handleSummary)

	return nil
}

// handleGenerate generates a cohort and exports it in the requested format.
func (s *Server) handleGenerate(ctx context.Context, req *sdk.CallToolRequest, args GenerateInput) (*sdk.CallToolResult, GenerateOutput, error) {
	params := cohort.DefaultParams()
	if args.N != 0 {
		params.N = args.N
	}
	if args.Seed != 0 {
		params.Seed = args.Seed
	}
	if args.TreatmentRate != 0 {
		params.TreatmentRate = args.TreatmentRate
	}

	format := args.Format
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "sqlite" {
		return nil, GenerateOutput{}, fmt.Errorf("invalid format: %s (valid: csv, sqlite)", format)
	}

	out := args.Out
	if out == "" {
		name := export.DefaultCSVName
		if format == "sqlite" {
			name = "cdc_outreach_ab_synthetic.db"
		}
		out = filepath.Join("data", name)
	}

	table, err := cohort.Generate(params)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	switch format {
	case "csv":
		err = export.WriteCSV(out, table)
	case "sqlite":
		err = export.WriteSQLite(ctx, out, table)
	}
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	rec := export.NewRunRecord(params, table.Len(), out, format)
	if err := export.AppendRun(filepath.Dir(out), rec); err != nil {
		return nil, GenerateOutput{}, err
	}

	summary := report.Summarize(table, 0)
	output := GenerateOutput{
		RunID:    rec.RunID,
		Rows:     table.Len(),
		Output:   out,
		Format:   format,
		VariantA: variantStats(summary, cohort.VariantA),
		VariantB: variantStats(summary, cohort.VariantB),
		ATE:      summary.ATE,
	}

	return nil, output, nil
}

// handleSummary reads a CSV dataset back and summarizes it.
func (s *Server) handleSummary(ctx context.Context, req *sdk.CallToolRequest, args SummaryInput) (*sdk.CallToolResult, SummaryOutput, error) {
	if args.Path == "" {
		return nil, SummaryOutput{}, fmt.Errorf("path is required")
	}

	table, err := export.ReadCSV(args.Path)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	summary := report.Summarize(table, args.Preview)
	output := SummaryOutput{
		Rows:                    summary.Rows,
		VariantA:                variantStats(summary, cohort.VariantA),
		VariantB:                variantStats(summary, cohort.VariantB),
		ATE:                     summary.ATE,
		Subgroups:               make([]SubgroupUplift, 0, len(summary.Subgroups)),
		CompletedGivenScheduled: summary.CompletedGivenScheduled,
		CompletedGivenNot:       summary.CompletedGivenNot,
	}
	for _, sg := range summary.Subgroups {
		output.Subgroups = append(output.Subgroups, SubgroupUplift{
			Name:    sg.Name,
			Inside:  sg.Inside,
			Outside: sg.Outside,
		})
	}

	return nil, output, nil
}

func variantStats(s report.Summary, variant string) VariantStats {
	v := s.Variants[variant]
	return VariantStats{
		Count:         v.Count,
		ScheduledRate: v.ScheduledRate,
	}
}
