package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs in full on every startup.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS records (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		date       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		activities TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_date ON records(date)`,

	// daily_draft holds the in-progress activity list and summary for the
	// current day, independent of any record row.
	`CREATE TABLE IF NOT EXISTS daily_draft (
		id         TEXT PRIMARY KEY DEFAULT 'default',
		activities TEXT NOT NULL DEFAULT '',
		summary    TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,

	`INSERT OR IGNORE INTO daily_draft (id, activities, summary, updated_at)
		VALUES ('default', '', '', '')`,

	// End-of-day summary on closed records (richer variant).
	`ALTER TABLE records ADD COLUMN summary TEXT NOT NULL DEFAULT ''`,
}
