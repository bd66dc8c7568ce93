package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent, so it
// is safe to run on each start.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id           TEXT PRIMARY KEY,
		source       TEXT NOT NULL,
		fetched_at   TEXT NOT NULL,
		record_count INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_snapshots_fetched ON snapshots(fetched_at)`,

	`CREATE TABLE IF NOT EXISTS snapshot_records (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		name        TEXT NOT NULL,
		phase       TEXT NOT NULL DEFAULT ''
		            CHECK(phase IN ('', 'design', 'estimating', 'production')),
		owner       TEXT NOT NULL DEFAULT '',
		start_raw   TEXT NOT NULL DEFAULT '',
		end_raw     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (snapshot_id, seq, phase)
	)`,
}
