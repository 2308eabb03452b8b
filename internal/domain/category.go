package domain

import "strings"

type Category string

const (
	Engineering Category = "Engineering"
	Science     Category = "Science"
	Commerce    Category = "Commerce"
	Education   Category = "Education"
)

// Categories is the fixed iteration order used by scraping, indexing and query parsing.
var Categories = []Category{Engineering, Science, Commerce, Education}

// ParseCategory matches case-insensitively against the fixed set.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	for _, x := range Categories {
		if c == x {
			return true
		}
	}
	return false
}

// Slug is the lower-case form used in page paths ("engineering-jobs").
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}
