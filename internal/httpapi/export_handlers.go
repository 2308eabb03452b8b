package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/export"
	"jobyaari-engine/internal/session"
)

type ExportHandler struct {
	Session *session.Session
	Dir     string
	Now     func() time.Time
}

// Export streams the filtered collection as ?format=csv (default) or ?format=sqlite.
func (h ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatCSV
	}
	ct, err := export.ContentType(format)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadFormat, err.Error())
		return
	}
	f, ok := filtersFrom(r)
	if !ok {
		badCategory(w, r, http.StatusBadRequest, r.URL.Query().Get("category"))
		return
	}
	jobs := h.Session.Jobs(f)

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	name := export.FileName(now, format)

	switch format {
	case export.FormatCSV:
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		if err := export.WriteCSV(w, jobs); err != nil {
			log.Error().Err(err).Str("request_id", RequestIDFrom(r.Context())).Msg("csv export failed")
		}
	case export.FormatSQLite:
		if err := h.serveSQLite(w, r, jobs, ct, name, now); err != nil {
			WriteError(w, r, http.StatusInternalServerError, CodeExportFailed, err.Error())
		}
	}
}

func (h ExportHandler) serveSQLite(w http.ResponseWriter, r *http.Request, jobs []domain.JobRecord, ct, name string, now time.Time) error {
	tmp, err := os.CreateTemp(h.Dir, "export-*.sqlite")
	if err != nil {
		return err
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(path)

	sum, err := export.WriteSQLite(r.Context(), path, jobs, now)
	if err != nil {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("X-Export-Rows", strconv.Itoa(sum.Rows))
	w.Header().Set("X-Export-Generated-At", sum.GeneratedAt)
	if _, err := io.Copy(w, src); err != nil && r.Context().Err() == nil {
		log.Warn().Err(err).Msg("sqlite export stream interrupted")
	}
	return nil
}
