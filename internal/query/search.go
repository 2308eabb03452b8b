package query

import (
	"strings"

	"jobyaari-engine/internal/domain"
)

// Search applies every non-empty filter as a case-insensitive test and ANDs them.
// Category compares whole values; the other filters use substring containment, keyword
// against title or description. No filters returns jobs unchanged.
func Search(jobs []domain.JobRecord, f Filters) []domain.JobRecord {
	if f.Empty() {
		return jobs
	}

	exp := strings.ToLower(f.Experience)
	qual := strings.ToLower(f.Qualification)
	kw := strings.ToLower(f.Keyword)

	out := make([]domain.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		if f.Category != "" && !strings.EqualFold(string(j.Category), string(f.Category)) {
			continue
		}
		if exp != "" && !strings.Contains(strings.ToLower(j.Experience), exp) {
			continue
		}
		if qual != "" && !strings.Contains(strings.ToLower(j.Qualification), qual) {
			continue
		}
		if kw != "" &&
			!strings.Contains(strings.ToLower(j.Title), kw) &&
			!strings.Contains(strings.ToLower(j.Description), kw) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// Select keeps records whose category and experience are among the given exact values.
// An empty list leaves that column unfiltered.
func Select(jobs []domain.JobRecord, categories, experiences []string) []domain.JobRecord {
	if len(categories) == 0 && len(experiences) == 0 {
		return jobs
	}
	cats := toSet(categories)
	exps := toSet(experiences)

	out := make([]domain.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		if len(cats) > 0 && !cats[string(j.Category)] {
			continue
		}
		if len(exps) > 0 && !exps[j.Experience] {
			continue
		}
		out = append(out, j)
	}
	return out
}

func toSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		if x != "" {
			m[x] = true
		}
	}
	return m
}
