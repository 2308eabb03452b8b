package httpapi

import (
	"net/http"
	"strings"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/query"
)

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		WriteError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	}
}

// filtersFrom reads the search filters from the query string. An unknown category is an error.
func filtersFrom(r *http.Request) (query.Filters, bool) {
	q := r.URL.Query()
	f := query.Filters{
		Experience:    strings.TrimSpace(q.Get("experience")),
		Qualification: strings.TrimSpace(q.Get("qualification")),
		Keyword:       strings.TrimSpace(q.Get("keyword")),
	}
	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		cat, ok := domain.ParseCategory(raw)
		if !ok {
			return f, false
		}
		f.Category = cat
	}
	return f, true
}

// multi collects a repeated or comma-separated query parameter.
func multi(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
