package httpapi

import (
	"net/http"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/query"
	"jobyaari-engine/internal/session"
)

type JobsHandler struct {
	Session *session.Session
}

type jobsResponse struct {
	Total   int                `json:"total"`
	Filters query.Filters      `json:"filters"`
	Jobs    []domain.JobRecord `json:"jobs"`
}

// List runs the structured search: ?category=&experience=&qualification=&keyword=
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	f, ok := filtersFrom(r)
	if !ok {
		badCategory(w, r, http.StatusBadRequest, r.URL.Query().Get("category"))
		return
	}
	jobs := h.Session.Jobs(f)
	if jobs == nil {
		jobs = []domain.JobRecord{}
	}
	WriteJSON(w, http.StatusOK, jobsResponse{Total: len(jobs), Filters: f, Jobs: jobs})
}

// Explore is the exact-value multiselect: ?category=Science,Commerce&experience=Fresher
func (h JobsHandler) Explore(w http.ResponseWriter, r *http.Request) {
	jobs := query.Select(h.Session.Records(), multi(r, "category"), multi(r, "experience"))
	if jobs == nil {
		jobs = []domain.JobRecord{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"total": len(jobs), "jobs": jobs})
}

type statsResponse struct {
	Total         int                     `json:"total"`
	Categories    map[domain.Category]int `json:"categories"`
	Experience    map[string]int          `json:"experience"`
	Qualification map[string]int          `json:"qualification"`
}

func (h JobsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	idx := h.Session.Index()
	WriteJSON(w, http.StatusOK, statsResponse{
		Total:         idx.Total,
		Categories:    idx.Counts(),
		Experience:    idx.Experience,
		Qualification: idx.Qualification,
	})
}
