package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobyaari-engine/internal/domain"
)

// InsertJobs writes every record in one transaction; either all rows land or none do.
func InsertJobs(ctx context.Context, db *sql.DB, jobs []domain.JobRecord) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO jobs (title, category, url, posted_date, qualification, experience, description)
VALUES (?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, j := range jobs {
		if _, err := stmt.ExecContext(ctx,
			j.Title, string(j.Category), j.URL, j.PostedDate, j.Qualification, j.Experience, j.Description,
		); err != nil {
			return 0, fmt.Errorf("insert job %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(jobs), nil
}

// SetMeta upserts one export_meta entry.
func SetMeta(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO export_meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}

func GetMeta(ctx context.Context, db *sql.DB, key string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT value FROM export_meta WHERE key = ?;`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}
