package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"jobyaari-engine/internal/config"
	"jobyaari-engine/internal/llm"
	"jobyaari-engine/internal/query"
	"jobyaari-engine/internal/scrape"
	"jobyaari-engine/internal/secrets"
)

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// shutdownHandler lets a local parent process stop the engine with the token it was given.
func shutdownHandler(token string, stop context.CancelFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))

		// respond first, then stop
		go func() {
			time.Sleep(50 * time.Millisecond)
			stop()
		}()
	}
}

func newBuilder(cfg config.Config) *scrape.Builder {
	fetcher := scrape.NewHTTPFetcher(cfg.PageTimeout(), cfg.Pace(), cfg.Source.UserAgent)
	return scrape.NewBuilder(scrape.BuilderConfig{
		BaseURL:       cfg.Source.BaseURL,
		Sources:       scrape.SourcesFromPaths(cfg.Source.BaseURL, cfg.Source.Categories),
		MaxFragments:  cfg.Source.MaxFragments,
		MinGenuine:    cfg.Corpus.MinGenuine,
		FallbackCount: cfg.Corpus.FallbackCount,
		Concurrency:   cfg.Source.Concurrency,
	}, fetcher)
}

// newResolver never fails: without a usable backend every answer is the apology.
func newResolver(ctx context.Context, cfg config.Config) *query.Resolver {
	opts := llm.Options{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		ServerURL:   cfg.LLM.ServerURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLMTimeout(),
	}
	if opts.Provider == llm.ProviderGoogleAI {
		key, err := secrets.GetAPIKey(cfg.LLM.KeyringAccount, cfg.LLM.APIKeyEnv)
		if err != nil {
			log.Warn().Err(err).Msg("no api key for googleai")
		}
		opts.APIKey = key
	}

	var completer query.Completer
	client, err := llm.New(ctx, opts)
	if err != nil {
		log.Error().Err(err).Str("provider", opts.Provider).Msg("llm backend unavailable; chat will apologise")
	} else {
		log.Info().Str("provider", opts.Provider).Str("model", client.Model()).Msg("llm backend ready")
		completer = client
	}
	return query.NewResolver(completer, cfg.Query.MatchLimit).WithExamples(cfg.Query.ExampleTitles)
}
