package llm

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply    string
	err      error
	delay    time.Duration
	lastOpts llms.CallOptions
	lastText string
}

func (f *fakeModel) GenerateContent(ctx context.Context, msgs []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.lastOpts = llms.CallOptions{}
	for _, o := range options {
		o(&f.lastOpts)
	}
	if len(msgs) > 0 && len(msgs[0].Parts) > 0 {
		if tc, ok := msgs[0].Parts[0].(llms.TextContent); ok {
			f.lastText = tc.Text
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestCompletePassesPromptAndTemperature(t *testing.T) {
	m := &fakeModel{reply: "There are 20 Science jobs."}
	c := NewWithModel(m, "fake", 0.7, time.Second)

	out, err := c.Complete(context.Background(), "How many Science jobs?")
	require.NoError(t, err)
	assert.Equal(t, "There are 20 Science jobs.", out)
	assert.Equal(t, "How many Science jobs?", m.lastText)
	assert.InDelta(t, 0.7, m.lastOpts.Temperature, 1e-9)
}

func TestCompleteWrapsBackendError(t *testing.T) {
	boom := errors.New("boom")
	c := NewWithModel(&fakeModel{err: boom}, "fake", 0, 0)

	_, err := c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "fake")
}

func TestCompleteTimesOut(t *testing.T) {
	c := NewWithModel(&fakeModel{reply: "late", delay: time.Second}, "fake", 0, 20*time.Millisecond)

	_, err := c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNilClient(t *testing.T) {
	var c *Client
	_, err := c.Complete(context.Background(), "x")
	assert.Error(t, err)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Options{Provider: "openai"})
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestNewGoogleAIRequiresKey(t *testing.T) {
	_, err := New(context.Background(), Options{Provider: "googleai"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewOllamaDefaultsModel(t *testing.T) {
	c, err := New(context.Background(), Options{Provider: "Ollama", ServerURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultOllamaModel, c.Model())
}

func TestOllamaUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	c, err := New(context.Background(), Options{Provider: "ollama", ServerURL: url, Timeout: 2 * time.Second})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hello")
	assert.Error(t, err)
}
