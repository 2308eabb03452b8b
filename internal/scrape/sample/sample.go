// Package sample generates deterministic placeholder postings for categories whose
// live page produced too few records.
package sample

import (
	"fmt"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/scrape/util"
)

// RepeatFactor bounds output to RepeatFactor full passes over a category's templates.
const RepeatFactor = 3

var templates = map[domain.Category][]string{
	domain.Engineering: {
		"Junior Engineer - Civil Department",
		"Assistant Engineer - Mechanical",
		"Technical Assistant - Electrical",
		"Senior Engineer - Public Works",
		"Project Engineer - Infrastructure",
	},
	domain.Science: {
		"Research Associate - Biotechnology",
		"Lab Technician - Chemistry",
		"Scientific Officer - Physics",
		"Research Scientist - Environmental Science",
		"Junior Scientist - Agricultural Research",
	},
	domain.Commerce: {
		"Accounts Assistant",
		"Tax Consultant",
		"Financial Analyst",
		"Audit Officer",
		"Commercial Executive",
	},
	domain.Education: {
		"Primary Teacher - Government School",
		"Lecturer - Higher Education",
		"Assistant Professor",
		"Education Officer",
		"School Principal",
	},
}

var qualifications = map[domain.Category][]string{
	domain.Engineering: {"B.Tech/B.E.", "M.Tech", "Diploma in Engineering"},
	domain.Science:     {"M.Sc", "Ph.D", "B.Sc with experience"},
	domain.Commerce:    {"B.Com", "M.Com", "MBA Finance", "CA/ICWA"},
	domain.Education:   {"B.Ed", "M.Ed", "M.A./M.Sc with B.Ed", "Ph.D"},
}

// ExperienceLevels is shared by every category.
var ExperienceLevels = []string{"Fresher", "1-2 years", "2-5 years", "3+ years", "5+ years"}

// Templates returns a copy of the title templates for cat.
func Templates(cat domain.Category) []string {
	return append([]string(nil), templates[cat]...)
}

// Max is the most records Generate will ever return for cat.
func Max(cat domain.Category) int {
	return RepeatFactor * len(templates[cat])
}

// Generate returns min(count, Max(cat)) records. It is pure: the same inputs always
// produce the same ordered output.
func Generate(baseURL string, cat domain.Category, count int) []domain.JobRecord {
	n := min(count, Max(cat))
	if n <= 0 || len(qualifications[cat]) == 0 {
		return nil
	}

	out := make([]domain.JobRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Record(baseURL, cat, i))
	}
	return out
}

// Record builds the i-th synthetic record for cat. Callers must keep cat within the fixed set.
func Record(baseURL string, cat domain.Category, i int) domain.JobRecord {
	tpls := templates[cat]
	quals := qualifications[cat]
	return domain.JobRecord{
		Title:         fmt.Sprintf("%s - Position %d", tpls[i%len(tpls)], i+1),
		Category:      cat,
		URL:           util.JoinPath(baseURL, fmt.Sprintf("%s-jobs/job-%d/", cat.Slug(), i+1)),
		PostedDate:    fmt.Sprintf("%d days ago", (i%30)+1),
		Qualification: quals[i%len(quals)],
		Experience:    ExperienceLevels[i%len(ExperienceLevels)],
		Description:   fmt.Sprintf("Excellent opportunity for %s professionals. Apply online through official notification.", cat),
	}
}
