package query

import (
	"fmt"
	"strings"

	"jobyaari-engine/internal/domain"
)

const NoMatches = "No jobs found matching your criteria."

// FormatMatches renders up to limit jobs as a numbered list.
func FormatMatches(jobs []domain.JobRecord, limit int) string {
	if len(jobs) == 0 {
		return NoMatches
	}
	shown := jobs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d job(s). Here are the top %d:\n\n", len(jobs), len(shown))
	for i, j := range shown {
		fmt.Fprintf(&b, "%d. %s\n", i+1, j.Title)
		fmt.Fprintf(&b, "   Category: %s\n", j.Category)
		fmt.Fprintf(&b, "   Qualification: %s\n", j.Qualification)
		fmt.Fprintf(&b, "   Experience: %s\n", j.Experience)
		fmt.Fprintf(&b, "   Posted: %s\n", j.PostedDate)
		fmt.Fprintf(&b, "   Link: %s\n\n", j.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}
