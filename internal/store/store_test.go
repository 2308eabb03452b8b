package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobyaari-engine/internal/domain"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "jobs.db"), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

// listJobs reads rows back in insertion order. An empty category returns everything.
func listJobs(ctx context.Context, db *sql.DB, category domain.Category) ([]domain.JobRecord, error) {
	query := `
SELECT title, category, url, posted_date, qualification, experience, description
FROM jobs
WHERE (? = '' OR category = ?)
ORDER BY id ASC;
`
	rows, err := db.QueryContext(ctx, query, string(category), string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		var j domain.JobRecord
		var cat string
		if err := rows.Scan(
			&j.Title,
			&cat,
			&j.URL,
			&j.PostedDate,
			&j.Qualification,
			&j.Experience,
			&j.Description,
		); err != nil {
			return nil, err
		}
		j.Category = domain.Category(cat)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, SchemaVersion, v)
}

func TestInsertAndListJobs(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	jobs := []domain.JobRecord{
		domain.NewJobRecord("Junior Engineer", domain.Engineering, "https://www.jobyaari.com/a"),
		domain.NewJobRecord("Lab Technician", domain.Science, "https://www.jobyaari.com/b"),
		domain.NewJobRecord("Site Engineer", domain.Engineering, "https://www.jobyaari.com/c"),
	}
	n, err := InsertJobs(ctx, db.Pool, jobs)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := listJobs(ctx, db.Pool, "")
	require.NoError(t, err)
	assert.Equal(t, jobs, all)

	eng, err := listJobs(ctx, db.Pool, domain.Engineering)
	require.NoError(t, err)
	require.Len(t, eng, 2)
	assert.Equal(t, "Site Engineer", eng[1].Title)

	counts, err := CountByCategory(ctx, db.Pool)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Category]int{domain.Engineering: 2, domain.Science: 1}, counts)
}

func TestInsertJobsEmpty(t *testing.T) {
	db := openTemp(t)
	n, err := InsertJobs(context.Background(), db.Pool, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMeta(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	v, err := GetMeta(ctx, db.Pool, "generated_at")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, SetMeta(ctx, db.Pool, "generated_at", "2026-01-01"))
	require.NoError(t, SetMeta(ctx, db.Pool, "generated_at", "2026-01-02"))
	v, err = GetMeta(ctx, db.Pool, "generated_at")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", v)
}

func TestOpenFreshReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.sqlite")
	ctx := context.Background()

	db, err := Open(path, Options{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db.Pool))
	_, err = InsertJobs(ctx, db.Pool, []domain.JobRecord{domain.NewJobRecord("Old Row", domain.Science, "https://www.jobyaari.com/old")})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path, Options{Fresh: true})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db.Pool))
	counts, err := CountByCategory(ctx, db.Pool)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestOpenBusyTimeout(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		opts Options
		want int
	}{
		{Options{}, 5000},
		{Options{BusyTimeout: 250 * time.Millisecond}, 250},
	} {
		db, err := Open(filepath.Join(dir, "busy.sqlite"), tc.opts)
		require.NoError(t, err)
		var ms int
		require.NoError(t, db.Pool.QueryRow(`PRAGMA busy_timeout;`).Scan(&ms))
		assert.Equal(t, tc.want, ms)
		require.NoError(t, db.Close())
	}
}
