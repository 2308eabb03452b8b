package store

import (
	"context"
	"database/sql"
	"fmt"

	"jobyaari-engine/internal/domain"
)

// SchemaVersion is the PRAGMA user_version Migrate brings a file up to.
const SchemaVersion = 2

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= SchemaVersion {
		return tx.Commit()
	}

	// ---- Schema v1: jobs ----

	if v < 1 {
		if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  url TEXT NOT NULL,
  posted_date TEXT NOT NULL,
  qualification TEXT NOT NULL,
  experience TEXT NOT NULL,
  description TEXT NOT NULL
);
`); err != nil {
			return err
		}

		if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_category
ON jobs(category);
`); err != nil {
			return err
		}
	}

	// ---- Schema v2: export metadata ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS export_meta (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d;`, SchemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

// CountByCategory returns row counts keyed by category.
func CountByCategory(ctx context.Context, db *sql.DB) (map[domain.Category]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT category, COUNT(*) FROM jobs GROUP BY category;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[domain.Category]int{}
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		out[domain.Category(cat)] = n
	}
	return out, rows.Err()
}
