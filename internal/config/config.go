// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port     int    `yaml:"port" json:"port"`
		DataDir  string `yaml:"data_dir" json:"data_dir"`
		LogLevel string `yaml:"log_level" json:"log_level"`
		Pretty   bool   `yaml:"pretty_logs" json:"pretty_logs"`

		// RefreshMinutes > 0 re-scrapes periodically; 0 refreshes only at startup and on request.
		RefreshMinutes int `yaml:"refresh_minutes" json:"refresh_minutes"`
	} `yaml:"app" json:"app"`

	Source struct {
		BaseURL        string `yaml:"base_url" json:"base_url"`
		UserAgent      string `yaml:"user_agent" json:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
		PaceMS         int    `yaml:"pace_ms" json:"pace_ms"`
		MaxFragments   int    `yaml:"max_fragments" json:"max_fragments"`
		Concurrency    int    `yaml:"concurrency" json:"concurrency"`

		// Categories maps a category name to its page path under base_url.
		Categories map[string]string `yaml:"categories" json:"categories"`
	} `yaml:"source" json:"source"`

	Corpus struct {
		MinGenuine    int `yaml:"min_genuine" json:"min_genuine"`
		FallbackCount int `yaml:"fallback_count" json:"fallback_count"`
	} `yaml:"corpus" json:"corpus"`

	LLM struct {
		Provider       string  `yaml:"provider" json:"provider"`
		Model          string  `yaml:"model" json:"model"`
		ServerURL      string  `yaml:"server_url" json:"server_url"`
		Temperature    float64 `yaml:"temperature" json:"temperature"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		KeyringAccount string  `yaml:"keyring_account" json:"keyring_account"`
		APIKeyEnv      string  `yaml:"api_key_env" json:"api_key_env"`
	} `yaml:"llm" json:"llm"`

	Query struct {
		MatchLimit    int `yaml:"match_limit" json:"match_limit"`
		ExampleTitles int `yaml:"example_titles" json:"example_titles"`
	} `yaml:"query" json:"query"`
}

// Default returns the settings used when the file omits a key.
func Default() Config {
	var c Config
	c.App.Port = 38471
	c.App.DataDir = "."
	c.App.LogLevel = "info"

	c.Source.BaseURL = "https://www.jobyaari.com"
	c.Source.TimeoutSeconds = 10
	c.Source.PaceMS = 1000
	c.Source.MaxFragments = 20
	c.Source.Concurrency = 1
	c.Source.Categories = map[string]string{
		"Engineering": "engineering-jobs/",
		"Science":     "science-jobs/",
		"Commerce":    "commerce-jobs/",
		"Education":   "education-jobs/",
	}

	c.Corpus.MinGenuine = 5
	c.Corpus.FallbackCount = 15

	c.LLM.Provider = "ollama"
	c.LLM.Model = "llama3:8b"
	c.LLM.ServerURL = "http://localhost:11434"
	c.LLM.Temperature = 0.7
	c.LLM.TimeoutSeconds = 120
	c.LLM.KeyringAccount = "llm_api_key"
	c.LLM.APIKeyEnv = "GOOGLE_API_KEY"

	c.Query.MatchLimit = 5
	c.Query.ExampleTitles = 3
	return c
}

// Load overlays the YAML file at path on Default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) PageTimeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

func (c Config) Pace() time.Duration {
	return time.Duration(c.Source.PaceMS) * time.Millisecond
}

func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.App.RefreshMinutes) * time.Minute
}

func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}
