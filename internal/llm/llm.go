// Package llm adapts langchaingo text-generation backends to a single prompt-in,
// text-out call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	ProviderOllama   = "ollama"
	ProviderGoogleAI = "googleai"

	DefaultOllamaModel = "llama3:8b"
	DefaultGoogleModel = "gemini-2.5-flash"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	ErrMissingAPIKey       = errors.New("llm api key not set")
)

type Options struct {
	Provider    string
	Model       string
	ServerURL   string // ollama only
	APIKey      string // googleai only
	Temperature float64
	Timeout     time.Duration // per completion; 0 means none
}

type Client struct {
	model       llms.Model
	name        string
	temperature float64
	timeout     time.Duration
}

// New builds the backend for opts.Provider. Nothing is contacted until the first Complete.
func New(ctx context.Context, opts Options) (*Client, error) {
	var (
		model llms.Model
		err   error
	)
	name := strings.TrimSpace(opts.Model)

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case ProviderOllama, "":
		if name == "" {
			name = DefaultOllamaModel
		}
		o := []ollama.Option{ollama.WithModel(name)}
		if opts.ServerURL != "" {
			o = append(o, ollama.WithServerURL(opts.ServerURL))
		}
		model, err = ollama.New(o...)
	case ProviderGoogleAI:
		if name == "" {
			name = DefaultGoogleModel
		}
		if strings.TrimSpace(opts.APIKey) == "" {
			return nil, ErrMissingAPIKey
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(opts.APIKey),
			googleai.WithDefaultModel(name),
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, opts.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s client: %w", opts.Provider, err)
	}

	return NewWithModel(model, name, opts.Temperature, opts.Timeout), nil
}

// NewWithModel wraps an already constructed model.
func NewWithModel(model llms.Model, name string, temperature float64, timeout time.Duration) *Client {
	return &Client{model: model, name: name, temperature: temperature, timeout: timeout}
}

func (c *Client) Model() string { return c.name }

// Complete sends prompt as a single human message and returns the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.model == nil {
		return "", errors.New("llm client not initialised")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(c.temperature))
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}
	log.Debug().
		Str("model", c.name).
		Dur("took", time.Since(start)).
		Int("prompt_len", len(prompt)).
		Msg("completion done")
	return resp, nil
}
