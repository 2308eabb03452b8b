// Package export writes the current collection out as a downloadable table.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/store"
)

const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ContentType returns the MIME type served for format.
func ContentType(format string) (string, error) {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8", nil
	case FormatSQLite:
		return "application/vnd.sqlite3", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FileName is the download name for an export taken at now: jobyaari_jobs_YYYYMMDD.<ext>.
func FileName(now time.Time, ext string) string {
	return fmt.Sprintf("jobyaari_jobs_%s.%s", now.Format("20060102"), ext)
}

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, jobs []domain.JobRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.FieldNames); err != nil {
		return err
	}
	for _, j := range jobs {
		if err := cw.Write(j.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary describes what an SQLite export file holds, as read back from the file itself.
type Summary struct {
	Rows        int                     `json:"rows"`
	PerCategory map[domain.Category]int `json:"per_category"`
	GeneratedAt string                  `json:"generated_at"`
}

// WriteSQLite creates a fresh database at path holding jobs. Any existing file is replaced.
func WriteSQLite(ctx context.Context, path string, jobs []domain.JobRecord, now time.Time) (Summary, error) {
	db, err := store.Open(path, store.Options{Fresh: true})
	if err != nil {
		return Summary{}, fmt.Errorf("open export db: %w", err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		return Summary{}, fmt.Errorf("migrate export db: %w", err)
	}
	if _, err := store.InsertJobs(ctx, db.Pool, jobs); err != nil {
		return Summary{}, err
	}
	if err := store.SetMeta(ctx, db.Pool, metaGeneratedAt, now.UTC().Format(time.RFC3339)); err != nil {
		return Summary{}, err
	}

	sum, err := summarize(ctx, db)
	if err != nil {
		return Summary{}, err
	}
	log.Info().Str("path", path).Int("rows", sum.Rows).Msg("sqlite export written")
	return sum, nil
}

const metaGeneratedAt = "generated_at"

func summarize(ctx context.Context, db *store.DB) (Summary, error) {
	counts, err := store.CountByCategory(ctx, db.Pool)
	if err != nil {
		return Summary{}, fmt.Errorf("count export rows: %w", err)
	}
	at, err := store.GetMeta(ctx, db.Pool, metaGeneratedAt)
	if err != nil {
		return Summary{}, fmt.Errorf("read export meta: %w", err)
	}
	sum := Summary{PerCategory: counts, GeneratedAt: at}
	for _, n := range counts {
		sum.Rows += n
	}
	return sum, nil
}
