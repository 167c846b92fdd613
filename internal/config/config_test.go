package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	if config.Generate.N != 20000 {
		t.Errorf("expected N 20000, got %d", config.Generate.N)
	}
	if config.Generate.Seed != 42 {
		t.Errorf("expected Seed 42, got %d", config.Generate.Seed)
	}
	if config.Generate.TreatmentRate != 0.5 {
		t.Errorf("expected TreatmentRate 0.5, got %f", config.Generate.TreatmentRate)
	}

	if config.Output.Dir != "data" {
		t.Errorf("expected Output.Dir 'data', got '%s'", config.Output.Dir)
	}
	if config.Output.File != "cdc_outreach_ab_synthetic.csv" {
		t.Errorf("expected Output.File 'cdc_outreach_ab_synthetic.csv', got '%s'", config.Output.File)
	}
	if config.Output.Format != "csv" {
		t.Errorf("expected Output.Format 'csv', got '%s'", config.Output.Format)
	}

	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
generate:
  n: 500
  seed: 7
  treatment_rate: 0.3

output:
  dir: out
  file: cohort.csv
  format: sqlite

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Generate.N != 500 {
		t.Errorf("expected N 500, got %d", config.Generate.N)
	}
	if config.Generate.Seed != 7 {
		t.Errorf("expected Seed 7, got %d", config.Generate.Seed)
	}
	if config.Generate.TreatmentRate != 0.3 {
		t.Errorf("expected TreatmentRate 0.3, got %f", config.Generate.TreatmentRate)
	}
	if config.Output.Dir != "out" {
		t.Errorf("expected Output.Dir 'out', got '%s'", config.Output.Dir)
	}
	if config.Output.Format != "sqlite" {
		t.Errorf("expected Output.Format 'sqlite', got '%s'", config.Output.Format)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
generate:
  n: 1000
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Generate.N != 1000 {
		t.Errorf("expected N 1000, got %d", config.Generate.N)
	}
	if config.Generate.Seed != 42 {
		t.Errorf("expected default Seed 42, got %d", config.Generate.Seed)
	}
	if config.Output.Format != "csv" {
		t.Errorf("expected default Output.Format 'csv', got '%s'", config.Output.Format)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("generate: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFromFile(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SYNTHAB_N", "250")
	t.Setenv("SYNTHAB_TREATMENT_RATE", "0.25")
	t.Setenv("SYNTHAB_FORMAT", "sqlite")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
generate:
  n: 1000
  seed: 9
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Generate.N != 250 {
		t.Errorf("expected env override N 250, got %d", config.Generate.N)
	}
	if config.Generate.TreatmentRate != 0.25 {
		t.Errorf("expected env override TreatmentRate 0.25, got %f", config.Generate.TreatmentRate)
	}
	if config.Output.Format != "sqlite" {
		t.Errorf("expected env override Format 'sqlite', got '%s'", config.Output.Format)
	}
	if config.Generate.Seed != 9 {
		t.Errorf("expected file Seed 9, got %d", config.Generate.Seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:    "zero n",
			modify:  func(c *Config) { c.Generate.N = 0 },
			wantErr: "n must be positive",
		},
		{
			name:    "negative n",
			modify:  func(c *Config) { c.Generate.N = -5 },
			wantErr: "n must be positive",
		},
		{
			name:    "treatment rate at zero",
			modify:  func(c *Config) { c.Generate.TreatmentRate = 0 },
			wantErr: "treatment_rate must be in (0, 1)",
		},
		{
			name:    "treatment rate at one",
			modify:  func(c *Config) { c.Generate.TreatmentRate = 1 },
			wantErr: "treatment_rate must be in (0, 1)",
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "parquet" },
			wantErr: "invalid format",
		},
		{
			name:    "empty output file",
			modify:  func(c *Config) { c.Output.File = "" },
			wantErr: "output file must not be empty",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:   "empty log level is allowed",
			modify: func(c *Config) { c.Logging.Level = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	config := Default()
	if got := config.OutputPath(); got != filepath.Join("data", "cdc_outreach_ab_synthetic.csv") {
		t.Errorf("unexpected output path: %s", got)
	}
}
