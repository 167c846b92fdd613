package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nvandessel/synthab/internal/cohort"
	"github.com/nvandessel/synthab/internal/config"
	"github.com/nvandessel/synthab/internal/export"
	"github.com/nvandessel/synthab/internal/logging"
	"github.com/nvandessel/synthab/internal/report"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic outreach cohort and write it to disk",
		Long: `Generate a synthetic CDC outreach A/B test dataset.

Parameter precedence is flags > environment > config file > defaults.
Environment variables use the SYNTHAB_ prefix (SYNTHAB_N, SYNTHAB_SEED,
SYNTHAB_TREATMENT_RATE, SYNTHAB_OUTPUT_DIR, SYNTHAB_FORMAT).

Examples:
  synthab generate                            # 20000 rows, seed 42, data/cdc_outreach_ab_synthetic.csv
  synthab generate --n 1000 --seed 7          # small reproducible cohort
  synthab generate --format sqlite            # write a SQLite database instead of CSV
  synthab generate --preview 5                # print the first 5 rows with the summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			tracer := logging.NewTraceLogger(cfg.Output.Dir, cfg.Logging.Level)
			defer tracer.Close()

			params := cohort.Params{
				N:             cfg.Generate.N,
				Seed:          cfg.Generate.Seed,
				TreatmentRate: cfg.Generate.TreatmentRate,
			}

			logger.Debug("generating cohort",
				"n", params.N, "seed", params.Seed, "treatment_rate", params.TreatmentRate)
			tracer.Log(map[string]any{
				"event": "generate_start",
				"n":     params.N,
				"seed":  params.Seed,
			})

			start := time.Now()
			table, err := cohort.Generate(params)
			if err != nil {
				return fmt.Errorf("failed to generate cohort: %w", err)
			}
			logger.Debug("cohort generated", "rows", table.Len(), "elapsed", time.Since(start))

			out := cfg.OutputPath()
			switch cfg.Output.Format {
			case "csv":
				err = export.WriteCSV(out, table)
			case "sqlite":
				err = export.WriteSQLite(cmd.Context(), out, table)
			}
			if err != nil {
				return fmt.Errorf("failed to write dataset: %w", err)
			}
			logger.Info("dataset written", "path", out, "rows", table.Len(), "format", cfg.Output.Format)

			rec := export.NewRunRecord(params, table.Len(), out, cfg.Output.Format)
			if err := export.AppendRun(cfg.Output.Dir, rec); err != nil {
				return fmt.Errorf("failed to record run: %w", err)
			}
			tracer.Log(map[string]any{
				"event":  "generate_done",
				"run_id": rec.RunID,
				"rows":   table.Len(),
				"output": out,
			})

			preview, _ := cmd.Flags().GetInt("preview")
			summary := report.Summarize(table, preview)

			if jsonOut {
				result := map[string]any{
					"run_id":  rec.RunID,
					"output":  out,
					"format":  cfg.Output.Format,
					"summary": summary,
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n\n", table.Len(), out)
			fmt.Fprint(cmd.OutOrStdout(), summary.Render())
			return nil
		},
	}

	cmd.Flags().Int("n", 0, "Number of records to generate (default 20000)")
	cmd.Flags().Int64("seed", 0, "Random seed (default 42)")
	cmd.Flags().Float64("treatment-rate", 0, "Probability of variant B assignment (default 0.5)")
	cmd.Flags().String("out", "", "Output file path (default data/cdc_outreach_ab_synthetic.csv)")
	cmd.Flags().String("format", "", "Output format: csv or sqlite (default csv)")
	cmd.Flags().Int("preview", 0, "Number of preview rows to print with the summary")
	cmd.Flags().String("config", "", "Path to a config file (default ~/.synthab/config.yaml)")

	return cmd
}

// resolveConfig loads configuration and applies any flags the user set.
// Flags win over environment variables, which win over the config file.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("n") {
		cfg.Generate.N, _ = cmd.Flags().GetInt("n")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("treatment-rate") {
		cfg.Generate.TreatmentRate, _ = cmd.Flags().GetFloat64("treatment-rate")
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("out") {
		out, _ := cmd.Flags().GetString("out")
		cfg.Output.Dir = filepath.Dir(out)
		cfg.Output.File = filepath.Base(out)
	}

	return cfg, nil
}
