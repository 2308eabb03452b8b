// Package index derives read-only summaries (category partitions and frequency tables)
// from the flat job collection.
package index

import (
	"fmt"
	"strings"

	"jobyaari-engine/internal/domain"
)

type Index struct {
	ByCategory    map[domain.Category][]domain.JobRecord
	Experience    map[string]int
	Qualification map[string]int
	Total         int
}

// Build recomputes the index from scratch. Every record lands in the partition of its own
// category, so Total always equals the sum of partition sizes.
func Build(jobs []domain.JobRecord) *Index {
	idx := &Index{
		ByCategory:    make(map[domain.Category][]domain.JobRecord, len(domain.Categories)),
		Experience:    make(map[string]int),
		Qualification: make(map[string]int),
	}
	for _, c := range domain.Categories {
		idx.ByCategory[c] = nil
	}
	for _, j := range jobs {
		idx.ByCategory[j.Category] = append(idx.ByCategory[j.Category], j)
		idx.Experience[j.Experience]++
		idx.Qualification[j.Qualification]++
		idx.Total++
	}
	return idx
}

func (x *Index) Count(cat domain.Category) int {
	return len(x.ByCategory[cat])
}

// Examples returns up to n records of cat in collection order.
func (x *Index) Examples(cat domain.Category, n int) []domain.JobRecord {
	jobs := x.ByCategory[cat]
	if n < len(jobs) {
		jobs = jobs[:max(n, 0)]
	}
	return jobs
}

// Counts returns per-category sizes for the fixed categories.
func (x *Index) Counts() map[domain.Category]int {
	out := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		out[c] = x.Count(c)
	}
	return out
}

// Digest renders per-category counts with up to n example titles each.
func (x *Index) Digest(n int) string {
	var b strings.Builder
	for _, c := range domain.Categories {
		fmt.Fprintf(&b, "\n%s: %d jobs available", c, x.Count(c))
		for _, j := range x.Examples(c, n) {
			fmt.Fprintf(&b, "\n  - %s (Qualification: %s, Experience: %s)", j.Title, j.Qualification, j.Experience)
		}
	}
	return b.String()
}
