package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nvandessel/synthab/internal/cohort"
)

const createCohortTable = `
CREATE TABLE cohort (
	id INTEGER PRIMARY KEY,
	age INTEGER NOT NULL,
	sex TEXT NOT NULL,
	region TEXT NOT NULL,
	risk_score REAL NOT NULL,
	barriers_index REAL NOT NULL,
	prior_cdc_interactions_90d INTEGER NOT NULL,
	prior_appointments_1y INTEGER NOT NULL,
	missed_appointments_1y INTEGER NOT NULL,
	channel TEXT NOT NULL,
	send_hour INTEGER NOT NULL,
	weekday INTEGER NOT NULL,
	message_variant TEXT NOT NULL,
	opened INTEGER NOT NULL,
	clicked INTEGER NOT NULL,
	scheduled_7d INTEGER NOT NULL,
	completed_30d INTEGER NOT NULL
)`

const insertCohortRow = `
INSERT INTO cohort (
	id, age, sex, region, risk_score, barriers_index,
	prior_cdc_interactions_90d, prior_appointments_1y, missed_appointments_1y,
	channel, send_hour, weekday, message_variant,
	opened, clicked, scheduled_7d, completed_30d
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// WriteSQLite writes the table into a `cohort` table at path, replacing
// any previous export in the same database file. All rows go in one
// transaction.
func WriteSQLite(ctx context.Context, path string, t *cohort.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS cohort`); err != nil {
		return fmt.Errorf("failed to reset cohort table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createCohortTable); err != nil {
		return fmt.Errorf("failed to create cohort table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertCohortRow)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		_, err := stmt.ExecContext(ctx,
			t.ID[i], t.Age[i], t.Sex[i], t.Region[i],
			t.RiskScore[i], t.BarriersIndex[i],
			t.PriorInteractions90[i], t.PriorAppointments1y[i], t.MissedAppointments[i],
			t.Channel[i], t.SendHour[i], t.Weekday[i], t.MessageVariant[i],
			t.Opened[i], t.Clicked[i], t.Scheduled7d[i], t.Completed30d[i],
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
