package query

import (
	"strings"

	"jobyaari-engine/internal/domain"
)

// Filters narrow a search. Zero-value fields do not filter.
type Filters struct {
	Category      domain.Category `json:"category,omitempty"`
	Experience    string          `json:"experience,omitempty"`
	Qualification string          `json:"qualification,omitempty"`
	Keyword       string          `json:"keyword,omitempty"`
}

func (f Filters) Empty() bool {
	return f.Category == "" && f.Experience == "" && f.Qualification == "" && f.Keyword == ""
}

// ExperiencePhrases are checked in order; the first one contained in a question wins.
var ExperiencePhrases = []string{"fresher", "1 year", "2 year", "3 year", "5 year", "experience"}

// ListingTriggers ask for matches to be appended even when no filter was detected.
var ListingTriggers = []string{"show", "list", "get"}

// Parsed is the best-effort reading of a free-text question.
type Parsed struct {
	Filters Filters
	Listing bool
}

// WantsMatches reports whether the answer should carry a formatted match listing.
func (p Parsed) WantsMatches() bool {
	return p.Filters.Category != "" || p.Filters.Experience != "" || p.Listing
}

// Parse detects category and experience filters by plain substring containment on the
// lower-cased question. Keywords and qualifications are never inferred from free text.
func Parse(question string) Parsed {
	q := strings.ToLower(question)

	var p Parsed
	for _, c := range domain.Categories {
		if strings.Contains(q, strings.ToLower(string(c))) {
			p.Filters.Category = c
			break
		}
	}
	for _, phrase := range ExperiencePhrases {
		if strings.Contains(q, phrase) {
			p.Filters.Experience = phrase
			break
		}
	}
	for _, w := range ListingTriggers {
		if strings.Contains(q, w) {
			p.Listing = true
			break
		}
	}
	return p
}
