// Package export persists a generated cohort: CSV via Arrow, an optional
// sqlite table, and a JSONL run manifest. The generator itself never does
// I/O; everything that touches the filesystem lives here.
package export

import "github.com/apache/arrow/go/v17/arrow"

// Schema returns the Arrow schema shared by the CSV writer and reader.
// Field order matches cohort.Columns exactly.
func Schema() *arrow.Schema {
	fields := []arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "age", Type: arrow.PrimitiveTypes.Int64},
		{Name: "sex", Type: arrow.BinaryTypes.String},
		{Name: "region", Type: arrow.BinaryTypes.String},
		{Name: "risk_score", Type: arrow.PrimitiveTypes.Float64},
		{Name: "barriers_index", Type: arrow.PrimitiveTypes.Float64},
		{Name: "prior_cdc_interactions_90d", Type: arrow.PrimitiveTypes.Int64},
		{Name: "prior_appointments_1y", Type: arrow.PrimitiveTypes.Int64},
		{Name: "missed_appointments_1y", Type: arrow.PrimitiveTypes.Int64},
		{Name: "channel", Type: arrow.BinaryTypes.String},
		{Name: "send_hour", Type: arrow.PrimitiveTypes.Int64},
		{Name: "weekday", Type: arrow.PrimitiveTypes.Int64},
		{Name: "message_variant", Type: arrow.BinaryTypes.String},
		{Name: "opened", Type: arrow.PrimitiveTypes.Int64},
		{Name: "clicked", Type: arrow.PrimitiveTypes.Int64},
		{Name: "scheduled_7d", Type: arrow.PrimitiveTypes.Int64},
		{Name: "completed_30d", Type: arrow.PrimitiveTypes.Int64},
	}
	return arrow.NewSchema(fields, nil)
}
