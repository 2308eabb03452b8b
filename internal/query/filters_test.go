package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobyaari-engine/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		q       string
		cat     domain.Category
		exp     string
		listing bool
	}{
		{"Show me Science jobs with 1 year experience", domain.Science, "1 year", true},
		{"What are the latest notifications in Engineering?", domain.Engineering, "", false},
		{"Tell me Education qualification for teacher posts", domain.Education, "", false},
		{"List all Commerce jobs", domain.Commerce, "", true},
		{"Show fresher jobs in Engineering", domain.Engineering, "fresher", true},
		{"engineering or science?", domain.Engineering, "", false},
		{"how much experience do I need", "", "experience", false},
		{"hello there", "", "", false},
		{"what can I GET", "", "", true},
	}
	for _, tt := range tests {
		p := Parse(tt.q)
		assert.Equal(t, tt.cat, p.Filters.Category, tt.q)
		assert.Equal(t, tt.exp, p.Filters.Experience, tt.q)
		assert.Equal(t, tt.listing, p.Listing, tt.q)
		assert.Empty(t, p.Filters.Keyword, tt.q)
		assert.Empty(t, p.Filters.Qualification, tt.q)
	}
}

func TestWantsMatches(t *testing.T) {
	assert.True(t, Parse("Science please").WantsMatches())
	assert.True(t, Parse("fresher roles").WantsMatches())
	assert.True(t, Parse("list everything").WantsMatches())
	assert.False(t, Parse("hello").WantsMatches())
}

func TestFiltersEmpty(t *testing.T) {
	assert.True(t, Filters{}.Empty())
	assert.False(t, Filters{Keyword: "x"}.Empty())
}
