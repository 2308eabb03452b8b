package config

import (
	"fmt"
	"net/url"
	"strings"

	"jobyaari-engine/internal/domain"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Providers the llm client knows how to build.
var Providers = []string{"ollama", "googleai"}

// NormalizeAndValidate returns a normalized copy along with any problems found.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Source.BaseURL = strings.TrimRight(strings.TrimSpace(out.Source.BaseURL), "/")
	out.LLM.Provider = strings.ToLower(strings.TrimSpace(out.LLM.Provider))
	out.App.LogLevel = strings.ToLower(strings.TrimSpace(out.App.LogLevel))

	// category keys are canonicalized so "science" and "Science" land on the same page
	cats := make(map[string]string, len(out.Source.Categories))
	for name, path := range out.Source.Categories {
		c, ok := domain.ParseCategory(name)
		if !ok {
			res.addErr("source.categories: unknown category %q", name)
			continue
		}
		path = strings.TrimSpace(path)
		if path == "" {
			res.addErr("source.categories.%s: path is required", c)
			continue
		}
		cats[string(c)] = path
	}
	out.Source.Categories = cats

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.RefreshMinutes < 0 {
		res.addErr("app.refresh_minutes must be >= 0")
	} else if out.App.RefreshMinutes > 0 && out.App.RefreshMinutes < 5 {
		res.addWarn("app.refresh_minutes is very low (%d); every refresh fetches all category pages.", out.App.RefreshMinutes)
	}

	if u, err := url.Parse(out.Source.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("source.base_url must be an absolute URL, got %q", out.Source.BaseURL)
	}
	if out.Source.TimeoutSeconds <= 0 {
		res.addErr("source.timeout_seconds must be > 0")
	}
	if out.Source.PaceMS < 0 {
		res.addErr("source.pace_ms must be >= 0")
	} else if out.Source.PaceMS < 200 {
		res.addWarn("source.pace_ms is very low (%d); the site may throttle requests.", out.Source.PaceMS)
	}
	if out.Source.MaxFragments <= 0 {
		res.addErr("source.max_fragments must be > 0")
	}
	if out.Source.Concurrency <= 0 {
		res.addErr("source.concurrency must be > 0")
	}
	if len(cats) < len(domain.Categories) {
		res.addWarn("source.categories lists %d of %d categories; the rest use their default page.", len(cats), len(domain.Categories))
	}

	if out.Corpus.MinGenuine <= 0 {
		res.addErr("corpus.min_genuine must be > 0")
	}
	if out.Corpus.FallbackCount <= 0 {
		res.addErr("corpus.fallback_count must be > 0")
	}

	known := false
	for _, p := range Providers {
		if out.LLM.Provider == p {
			known = true
		}
	}
	if !known {
		res.addErr("llm.provider must be one of %s, got %q", strings.Join(Providers, ", "), out.LLM.Provider)
	}
	if strings.TrimSpace(out.LLM.Model) == "" {
		res.addWarn("llm.model is empty; the provider default will be used.")
	}
	if out.LLM.Temperature < 0 || out.LLM.Temperature > 2 {
		res.addErr("llm.temperature must be within 0..2")
	}
	if out.LLM.TimeoutSeconds <= 0 {
		res.addErr("llm.timeout_seconds must be > 0")
	}

	if out.Query.MatchLimit <= 0 {
		res.addErr("query.match_limit must be > 0")
	}
	if out.Query.ExampleTitles <= 0 {
		res.addErr("query.example_titles must be > 0")
	}

	return out, res
}
