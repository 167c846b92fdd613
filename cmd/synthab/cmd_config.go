package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nvandessel/synthab/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage synthab configuration",
		Long: `View and modify synthab configuration settings.

Configuration is stored in ~/.synthab/config.yaml.

Examples:
  synthab config list                      # Show all settings
  synthab config get generate.n            # Get a specific setting
  synthab config set generate.seed 7       # Set a setting
  synthab config set output.format sqlite`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration (~/.synthab/config.yaml):")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Generate Settings:")
			fmt.Fprintf(out, "  generate.n:               %d\n", cfg.Generate.N)
			fmt.Fprintf(out, "  generate.seed:            %d\n", cfg.Generate.Seed)
			fmt.Fprintf(out, "  generate.treatment_rate:  %.2f\n", cfg.Generate.TreatmentRate)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Output Settings:")
			fmt.Fprintf(out, "  output.dir:               %s\n", cfg.Output.Dir)
			fmt.Fprintf(out, "  output.file:              %s\n", cfg.Output.File)
			fmt.Fprintf(out, "  output.format:            %s\n", cfg.Output.Format)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Logging Settings:")
			fmt.Fprintf(out, "  logging.level:            %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			value, found := getConfigValue(cfg, key)
			if !found {
				if jsonOut {
					json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
						"error": "key not found",
						"key":   key,
					})
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Unknown configuration key: %s\n", key)
				}
				return nil
			}

			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
				})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
			}

			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]
			value := args[1]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := setConfigValue(cfg, key, value); err != nil {
				if jsonOut {
					json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
						"error": err.Error(),
						"key":   key,
					})
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
				}
				return nil
			}

			if err := saveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"status": "updated",
					"key":    key,
					"value":  value,
				})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			}

			return nil
		},
	}
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (interface{}, bool) {
	switch key {
	case "generate.n":
		return cfg.Generate.N, true
	case "generate.seed":
		return cfg.Generate.Seed, true
	case "generate.treatment_rate":
		return cfg.Generate.TreatmentRate, true
	case "output.dir":
		return cfg.Output.Dir, true
	case "output.file":
		return cfg.Output.File, true
	case "output.format":
		return cfg.Output.Format, true
	case "logging.level":
		return cfg.Logging.Level, true
	default:
		return nil, false
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "generate.n":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid n: %s (must be an integer)", value)
		}
		if n <= 0 {
			return fmt.Errorf("n must be positive, got %d", n)
		}
		cfg.Generate.N = n
	case "generate.seed":
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %s (must be an integer)", value)
		}
		cfg.Generate.Seed = seed
	case "generate.treatment_rate":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid treatment rate: %s (must be a number)", value)
		}
		if rate <= 0 || rate >= 1 {
			return fmt.Errorf("treatment rate must be in (0, 1), got %g", rate)
		}
		cfg.Generate.TreatmentRate = rate
	case "output.dir":
		cfg.Output.Dir = value
	case "output.file":
		if value == "" {
			return fmt.Errorf("output file must not be empty")
		}
		cfg.Output.File = value
	case "output.format":
		if value != "csv" && value != "sqlite" {
			return fmt.Errorf("invalid format: %s (valid: csv, sqlite)", value)
		}
		cfg.Output.Format = value
	case "logging.level":
		if value != "info" && value != "debug" && value != "trace" {
			return fmt.Errorf("invalid log level: %s (valid: info, debug, trace)", value)
		}
		cfg.Logging.Level = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// saveConfig writes the configuration to ~/.synthab/config.yaml.
func saveConfig(cfg *config.Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	synthabDir := filepath.Join(homeDir, ".synthab")
	if err := os.MkdirAll(synthabDir, 0700); err != nil {
		return fmt.Errorf("failed to create .synthab directory: %w", err)
	}

	configPath := filepath.Join(synthabDir, "config.yaml")
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
