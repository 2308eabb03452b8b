package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Junior Engineer - Civil", CleanText("  Junior\n\tEngineer -  Civil  "))
	assert.Equal(t, "", CleanText(" \n "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short...", Truncate("short", 200, "..."))
	assert.Equal(t, "abc...", Truncate("abcdef", 3, "..."))
	assert.Equal(t, "ééé...", Truncate("éééé", 3, "..."))
	assert.Equal(t, "...", Truncate("abc", -1, "..."))
}

func TestResolveURL(t *testing.T) {
	base := "https://www.jobyaari.com"
	tests := []struct {
		href string
		want string
	}{
		{"/engineering-jobs/job-1/", "https://www.jobyaari.com/engineering-jobs/job-1/"},
		{"job-2", "https://www.jobyaari.com/job-2"},
		{"https://other.example/x", "https://other.example/x"},
		{"   ", base},
		{"", base},
		{"http://[::1", base},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveURL(base, tt.href), tt.href)
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "https://x.com/science-jobs/", JoinPath("https://x.com/", "/science-jobs/"))
	assert.Equal(t, "https://x.com/a", JoinPath("https://x.com", "a"))
}

func TestPacedLimiterZeroIntervalDoesNotBlock(t *testing.T) {
	hl := NewPacedLimiter(0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 10; i++ {
		require.NoError(t, hl.WaitURL(ctx, "https://www.jobyaari.com/science-jobs/"))
	}
}

func TestPacedLimiterSpacesSameHost(t *testing.T) {
	hl := NewPacedLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, hl.WaitURL(ctx, "https://a.example/1"))
	require.NoError(t, hl.WaitURL(ctx, "https://a.example/2"))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestHostLimiterHonoursContext(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, hl.WaitURL(ctx, "https://b.example/"))
	cancel()
	assert.Error(t, hl.WaitURL(ctx, "https://b.example/"))
}
