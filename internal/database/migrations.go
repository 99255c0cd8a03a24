package database

import (
	"context"
	"database/sql"
)

// Migrate creates the database schema if it does not exist yet.
// Stage definitions are not stored here: built-in stages live in code and
// custom stages live in the settings row, so schema evolution never needs a
// stage-table backfill.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS candidates (
			id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			applicant_id TEXT NOT NULL,
			posting_id TEXT NOT NULL,
			resume_ref TEXT,
			status TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 0,
			match_score INTEGER NOT NULL DEFAULT -1,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (applicant_id) REFERENCES candidates(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS status_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			application_id TEXT NOT NULL,
			status TEXT NOT NULL,
			note TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (application_id) REFERENCES applications(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS pipeline_settings (
			user_id TEXT PRIMARY KEY,
			custom_stages TEXT,
			background_theme TEXT NOT NULL DEFAULT 'none',
			custom_background_url TEXT,
			column_transparency INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_status
			ON applications(status)`,
		`CREATE INDEX IF NOT EXISTS idx_status_history_application
			ON status_history(application_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
