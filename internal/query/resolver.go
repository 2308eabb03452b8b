package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/index"
)

var ErrBackendUnavailable = errors.New("language model backend unavailable")

// Completer is the text-completion backend: prompt in, response out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DefaultMatchLimit is how many matches are listed under an answer.
const DefaultMatchLimit = 5

type Resolver struct {
	llm      Completer
	limit    int
	examples int
}

func NewResolver(llm Completer, limit int) *Resolver {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	return &Resolver{llm: llm, limit: limit, examples: ExamplesPerCategory}
}

// WithExamples sets how many example titles per category the prompt carries.
func (r *Resolver) WithExamples(n int) *Resolver {
	if n > 0 {
		r.examples = n
	}
	return r
}

// Answer asks the backend about question and, when the question names a category or
// experience level or asks to show/list/get, appends the formatted matches.
// Backend failures become an apology; Answer never returns an error.
func (r *Resolver) Answer(ctx context.Context, question string, jobs []domain.JobRecord, idx *index.Index) string {
	reply, err := r.complete(ctx, question, idx)
	if err != nil {
		log.Error().Err(err).Msg("completion failed")
		return Apology(err)
	}

	p := Parse(question)
	if p.WantsMatches() {
		reply += "\n\n" + FormatMatches(Search(jobs, p.Filters), r.limit)
	}
	return reply
}

func (r *Resolver) complete(ctx context.Context, question string, idx *index.Index) (reply string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrBackendUnavailable, rec)
		}
	}()
	if r.llm == nil {
		return "", fmt.Errorf("%w: no backend configured", ErrBackendUnavailable)
	}

	prompt, err := renderPrompt(idx, question, r.examples)
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}
	reply, err = r.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return reply, nil
}

// Apology is the user-facing answer when the backend cannot be used.
func Apology(err error) string {
	return fmt.Sprintf("I apologize, but I encountered an error: %v. "+
		"The language model backend is unreachable; please make sure it is running (for Ollama: ollama serve).", err)
}
