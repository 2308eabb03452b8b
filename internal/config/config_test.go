package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	out, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK(), res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Len(t, out.Source.Categories, 4)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9000\nquery:\n  match_limit: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, 8, cfg.Query.MatchLimit)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 15, cfg.Corpus.FallbackCount)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Source.BaseURL = " https://example.test/ "
	cfg.LLM.Provider = " GoogleAI "
	cfg.Source.Categories = map[string]string{"science": "sci/", "Astrology": "stars/"}
	cfg.Query.MatchLimit = 0
	cfg.Corpus.FallbackCount = -1
	cfg.Source.PaceMS = 50

	out, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Equal(t, "https://example.test", out.Source.BaseURL)
	assert.Equal(t, "googleai", out.LLM.Provider)
	assert.Equal(t, map[string]string{"Science": "sci/"}, out.Source.Categories)
	assert.Contains(t, res.Errors, `source.categories: unknown category "Astrology"`)
	assert.Contains(t, res.Errors, "query.match_limit must be > 0")
	assert.Contains(t, res.Errors, "corpus.fallback_count must be > 0")
	assert.NotEmpty(t, res.Warnings)
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "openai"
	assert.ErrorContains(t, Validate(cfg), "llm.provider")
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := Default()
	require.NoError(t, SaveAtomic(path, cfg))
	cfg.App.Port = 9100
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, got.App.Port)
	assert.FileExists(t, path+".bak")
	assert.NoFileExists(t, path+".tmp")

	bad := Default()
	bad.App.Port = 0
	assert.Error(t, SaveAtomic(path, bad))
}

func TestEnsureUserConfig(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	// no bundled default: written from Default
	path, err := EnsureUserConfig(dataDir, filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().App.Port, cfg.App.Port)

	// existing user file is left alone
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 1234\n"), 0o644))
	_, err = EnsureUserConfig(dataDir, "ignored.yml")
	require.NoError(t, err)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.App.Port)
}

func TestEnsureUserConfigCopiesBundledDefault(t *testing.T) {
	src := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(src, []byte("app:\n  port: 4242\n"), 0o644))

	path, err := EnsureUserConfig(t.TempDir(), src)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "app:\n  port: 4242\n", string(b))
}
