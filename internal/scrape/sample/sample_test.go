package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobyaari-engine/internal/domain"
)

const base = "https://www.jobyaari.com"

func TestGenerateIsDeterministic(t *testing.T) {
	for _, cat := range domain.Categories {
		a := Generate(base, cat, 15)
		b := Generate(base, cat, 15)
		assert.Equal(t, a, b, cat)
	}
}

func TestGenerateCapsCount(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{15, 15},
		{40, 15},
	}
	for _, tt := range tests {
		got := Generate(base, domain.Engineering, tt.count)
		assert.Len(t, got, tt.want, "count=%d", tt.count)
	}
	assert.Equal(t, RepeatFactor*len(Templates(domain.Science)), Max(domain.Science))
}

func TestGenerateUnknownCategory(t *testing.T) {
	assert.Empty(t, Generate(base, domain.Category("Arts"), 10))
	assert.Zero(t, Max(domain.Category("Arts")))
}

func TestGenerateFields(t *testing.T) {
	jobs := Generate(base, domain.Commerce, 7)
	require.Len(t, jobs, 7)

	first := jobs[0]
	assert.Equal(t, "Accounts Assistant - Position 1", first.Title)
	assert.Equal(t, domain.Commerce, first.Category)
	assert.Equal(t, "https://www.jobyaari.com/commerce-jobs/job-1/", first.URL)
	assert.Equal(t, "1 days ago", first.PostedDate)
	assert.Equal(t, "B.Com", first.Qualification)
	assert.Equal(t, "Fresher", first.Experience)
	assert.Contains(t, first.Description, "Commerce professionals")

	// index 5 wraps templates (5), qualifications (4) and experience levels (5)
	sixth := jobs[5]
	assert.Equal(t, "Accounts Assistant - Position 6", sixth.Title)
	assert.Equal(t, "M.Com", sixth.Qualification)
	assert.Equal(t, "Fresher", sixth.Experience)
	assert.Equal(t, "6 days ago", sixth.PostedDate)
}

func TestRecordMatchesGenerate(t *testing.T) {
	jobs := Generate(base, domain.Education, 12)
	for i, j := range jobs {
		assert.Equal(t, j, Record(base, domain.Education, i))
	}
}
