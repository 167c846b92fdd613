package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nvandessel/synthab/internal/cohort"
)

// RunRecord captures one generation run in the runs.jsonl manifest next to
// the output file. The manifest is append-only; each run gets a fresh id.
type RunRecord struct {
	RunID         string  `json:"run_id"`
	N             int     `json:"n"`
	Seed          int64   `json:"seed"`
	TreatmentRate float64 `json:"treatment_rate"`
	Rows          int     `json:"rows"`
	Output        string  `json:"output"`
	Format        string  `json:"format"`
	Time          string  `json:"time,omitempty"`
}

// NewRunRecord builds a manifest entry for a completed run.
func NewRunRecord(p cohort.Params, rows int, output, format string) RunRecord {
	return RunRecord{
		RunID:         uuid.NewString(),
		N:             p.N,
		Seed:          p.Seed,
		TreatmentRate: p.TreatmentRate,
		Rows:          rows,
		Output:        output,
		Format:        format,
	}
}

// AppendRun appends rec as a single JSONL line to dir/runs.jsonl, stamping
// the current time. The directory is created if absent.
func AppendRun(dir string, rec RunRecord) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	rec.Time = time.Now().UTC().Format(time.RFC3339Nano)

	path := filepath.Join(dir, "runs.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("failed to write manifest entry: %w", err)
	}
	return nil
}
