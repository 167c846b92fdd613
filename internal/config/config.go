// Package config provides unified configuration loading for synthab.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config contains all synthab settings. Precedence in the CLI is
// flags > environment > file > defaults.
type Config struct {
	// Generate holds the default generation parameters.
	Generate GenerateConfig `json:"generate" yaml:"generate"`

	// Output controls where and how the dataset is written.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GenerateConfig holds the generation parameters.
type GenerateConfig struct {
	// N is the number of records to generate.
	N int `json:"n" yaml:"n" env:"SYNTHAB_N"`

	// Seed initializes the random source.
	Seed int64 `json:"seed" yaml:"seed" env:"SYNTHAB_SEED"`

	// TreatmentRate is the marginal probability of variant B, in (0, 1).
	TreatmentRate float64 `json:"treatment_rate" yaml:"treatment_rate" env:"SYNTHAB_TREATMENT_RATE"`
}

// OutputConfig controls the export destination.
type OutputConfig struct {
	// Dir is the output directory, created if absent.
	Dir string `json:"dir" yaml:"dir" env:"SYNTHAB_OUTPUT_DIR"`

	// File is the output file name inside Dir.
	File string `json:"file" yaml:"file" env:"SYNTHAB_OUTPUT_FILE"`

	// Format selects the export: "csv" or "sqlite".
	Format string `json:"format" yaml:"format" env:"SYNTHAB_FORMAT"`
}

// LoggingConfig configures synthab's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level" env:"SYNTHAB_LOG_LEVEL"`
}

// Default returns a Config with the standard settings.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			N:             20000,
			Seed:          42,
			TreatmentRate: 0.5,
		},
		Output: OutputConfig{
			Dir:    "data",
			File:   "cdc_outreach_ab_synthetic.csv",
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.synthab/config.yaml -> environment.
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(homeDir, ".synthab", "config.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			cfg, err = LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Environment
// variables still override the file's values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Generate.N <= 0 {
		return fmt.Errorf("n must be positive, got %d", c.Generate.N)
	}
	if c.Generate.TreatmentRate <= 0 || c.Generate.TreatmentRate >= 1 {
		return fmt.Errorf("treatment_rate must be in (0, 1), got %g", c.Generate.TreatmentRate)
	}

	validFormats := map[string]bool{"csv": true, "sqlite": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid format: %s (valid: csv, sqlite)", c.Output.Format)
	}
	if c.Output.File == "" {
		return fmt.Errorf("output file must not be empty")
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// OutputPath joins the configured directory and file name.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.File)
}
