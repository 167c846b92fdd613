package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/csv"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/nvandessel/synthab/internal/cohort"
)

// DefaultCSVName is the file the generate command writes when no output
// path is given.
const DefaultCSVName = "cdc_outreach_ab_synthetic.csv"

// WriteCSV writes the table to path with a header row, creating the parent
// directory if needed. Directory creation is idempotent.
func WriteCSV(path string, t *cohort.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	rec := newRecord(t)
	defer rec.Release()

	w := csv.NewWriter(f, Schema(), csv.WithHeader(true))
	if err := w.Write(rec); err != nil {
		f.Close()
		return fmt.Errorf("failed to write csv: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ReadCSV loads a previously exported cohort back into a table. The file
// must carry the exact schema WriteCSV produces.
func ReadCSV(path string) (*cohort.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f, Schema(), csv.WithHeader(true), csv.WithChunk(4096))
	defer r.Release()

	t := &cohort.Table{}
	for r.Next() {
		appendChunk(t, r.Record())
	}
	if err := r.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("no rows in %s", path)
	}
	return t, nil
}

// newRecord converts the table into a single Arrow record batch.
func newRecord(t *cohort.Table) arrow.Record {
	b := array.NewRecordBuilder(memory.NewGoAllocator(), Schema())
	defer b.Release()

	b.Field(0).(*array.Int64Builder).AppendValues(int64s(t.ID), nil)
	b.Field(1).(*array.Int64Builder).AppendValues(int64s(t.Age), nil)
	b.Field(2).(*array.StringBuilder).AppendValues(t.Sex, nil)
	b.Field(3).(*array.StringBuilder).AppendValues(t.Region, nil)
	b.Field(4).(*array.Float64Builder).AppendValues(t.RiskScore, nil)
	b.Field(5).(*array.Float64Builder).AppendValues(t.BarriersIndex, nil)
	b.Field(6).(*array.Int64Builder).AppendValues(int64s(t.PriorInteractions90), nil)
	b.Field(7).(*array.Int64Builder).AppendValues(int64s(t.PriorAppointments1y), nil)
	b.Field(8).(*array.Int64Builder).AppendValues(int64s(t.MissedAppointments), nil)
	b.Field(9).(*array.StringBuilder).AppendValues(t.Channel, nil)
	b.Field(10).(*array.Int64Builder).AppendValues(int64s(t.SendHour), nil)
	b.Field(11).(*array.Int64Builder).AppendValues(int64s(t.Weekday), nil)
	b.Field(12).(*array.StringBuilder).AppendValues(t.MessageVariant, nil)
	b.Field(13).(*array.Int64Builder).AppendValues(int64s(t.Opened), nil)
	b.Field(14).(*array.Int64Builder).AppendValues(int64s(t.Clicked), nil)
	b.Field(15).(*array.Int64Builder).AppendValues(int64s(t.Scheduled7d), nil)
	b.Field(16).(*array.Int64Builder).AppendValues(int64s(t.Completed30d), nil)

	return b.NewRecord()
}

// appendChunk appends one record batch's rows onto the table.
func appendChunk(t *cohort.Table, rec arrow.Record) {
	n := int(rec.NumRows())

	id := rec.Column(0).(*array.Int64)
	age := rec.Column(1).(*array.Int64)
	sex := rec.Column(2).(*array.String)
	region := rec.Column(3).(*array.String)
	risk := rec.Column(4).(*array.Float64)
	barriers := rec.Column(5).(*array.Float64)
	interactions := rec.Column(6).(*array.Int64)
	appointments := rec.Column(7).(*array.Int64)
	missed := rec.Column(8).(*array.Int64)
	channel := rec.Column(9).(*array.String)
	sendHour := rec.Column(10).(*array.Int64)
	weekday := rec.Column(11).(*array.Int64)
	variant := rec.Column(12).(*array.String)
	opened := rec.Column(13).(*array.Int64)
	clicked := rec.Column(14).(*array.Int64)
	scheduled := rec.Column(15).(*array.Int64)
	completed := rec.Column(16).(*array.Int64)

	for i := 0; i < n; i++ {
		t.ID = append(t.ID, int(id.Value(i)))
		t.Age = append(t.Age, int(age.Value(i)))
		t.Sex = append(t.Sex, sex.Value(i))
		t.Region = append(t.Region, region.Value(i))
		t.RiskScore = append(t.RiskScore, risk.Value(i))
		t.BarriersIndex = append(t.BarriersIndex, barriers.Value(i))
		t.PriorInteractions90 = append(t.PriorInteractions90, int(interactions.Value(i)))
		t.PriorAppointments1y = append(t.PriorAppointments1y, int(appointments.Value(i)))
		t.MissedAppointments = append(t.MissedAppointments, int(missed.Value(i)))
		t.Channel = append(t.Channel, channel.Value(i))
		t.SendHour = append(t.SendHour, int(sendHour.Value(i)))
		t.Weekday = append(t.Weekday, int(weekday.Value(i)))
		t.MessageVariant = append(t.MessageVariant, variant.Value(i))
		t.Opened = append(t.Opened, int(opened.Value(i)))
		t.Clicked = append(t.Clicked, int(clicked.Value(i)))
		t.Scheduled7d = append(t.Scheduled7d, int(scheduled.Value(i)))
		t.Completed30d = append(t.Completed30d, int(completed.Value(i)))
	}
}

func int64s(v []int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}
