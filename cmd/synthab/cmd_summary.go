package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/synthab/internal/export"
	"github.com/nvandessel/synthab/internal/report"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <file.csv>",
		Short: "Summarize a previously generated dataset",
		Long: `Read a generated CSV dataset back and print variant scheduling rates,
the B minus A uplift, subgroup gaps, and completion conditionals.

Examples:
  synthab summary data/cdc_outreach_ab_synthetic.csv
  synthab summary --preview 10 data/cdc_outreach_ab_synthetic.csv
  synthab summary --json data/cdc_outreach_ab_synthetic.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			preview, _ := cmd.Flags().GetInt("preview")

			table, err := export.ReadCSV(args[0])
			if err != nil {
				return fmt.Errorf("failed to read dataset: %w", err)
			}

			summary := report.Summarize(table, preview)

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
			}

			fmt.Fprint(cmd.OutOrStdout(), summary.Render())
			return nil
		},
	}

	cmd.Flags().Int("preview", 0, "Number of preview rows to print")

	return cmd
}
