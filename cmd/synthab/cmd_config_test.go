package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runConfigCmd(t *testing.T, args ...string) string {
	t.Helper()
	rootCmd := newTestRootCmd()
	rootCmd.AddCommand(newConfigCmd())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(append([]string{"config"}, args...))

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config %v failed: %v", args, err)
	}
	return buf.String()
}

func TestConfigList(t *testing.T) {
	isolateHome(t, t.TempDir())

	got := runConfigCmd(t, "list")
	for _, want := range []string{"generate.n", "generate.seed", "output.format", "logging.level"} {
		if !strings.Contains(got, want) {
			t.Errorf("list output missing %q: %q", want, got)
		}
	}
}

func TestConfigGetSet(t *testing.T) {
	isolateHome(t, t.TempDir())

	got := runConfigCmd(t, "get", "generate.seed")
	if !strings.Contains(got, "generate.seed = 42") {
		t.Errorf("expected default seed 42, got %q", got)
	}

	runConfigCmd(t, "set", "generate.seed", "7")

	got = runConfigCmd(t, "get", "generate.seed")
	if !strings.Contains(got, "generate.seed = 7") {
		t.Errorf("expected updated seed 7, got %q", got)
	}

	// The change persisted to ~/.synthab/config.yaml
	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".synthab", "config.yaml")); err != nil {
		t.Errorf("config file should exist after set: %v", err)
	}
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	isolateHome(t, t.TempDir())

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer n", "generate.n", "lots"},
		{"negative n", "generate.n", "-1"},
		{"rate out of range", "generate.treatment_rate", "1.5"},
		{"unknown format", "output.format", "parquet"},
		{"unknown level", "logging.level", "verbose"},
		{"unknown key", "nope.nope", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runConfigCmd(t, "set", tt.key, tt.value)
			if !strings.Contains(got, "Error:") && !strings.Contains(got, "unknown") {
				t.Errorf("expected rejection, got %q", got)
			}
		})
	}
}

func TestConfigGetUnknownKey(t *testing.T) {
	isolateHome(t, t.TempDir())

	got := runConfigCmd(t, "get", "nope.nope")
	if !strings.Contains(got, "Unknown configuration key") {
		t.Errorf("expected unknown-key message, got %q", got)
	}
}

func TestConfigListJSON(t *testing.T) {
	isolateHome(t, t.TempDir())

	got := runConfigCmd(t, "list", "--json")

	var cfg map[string]any
	if err := json.Unmarshal([]byte(got), &cfg); err != nil {
		t.Fatalf("list --json output is not valid JSON: %v", err)
	}
}
