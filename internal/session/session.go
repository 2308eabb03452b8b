// Package session owns the mutable application state: the current collection, its
// index and the chat transcript.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/events"
	"jobyaari-engine/internal/index"
	"jobyaari-engine/internal/query"
	"jobyaari-engine/internal/scrape"
)

var ErrRefreshInProgress = errors.New("refresh already running")

// CorpusBuilder produces a fresh collection. *scrape.Builder satisfies it.
type CorpusBuilder interface {
	Build(ctx context.Context) scrape.Corpus
}

// Answerer resolves one question against a collection. *query.Resolver satisfies it.
type Answerer interface {
	Answer(ctx context.Context, question string, jobs []domain.JobRecord, idx *index.Index) string
}

// Status mirrors the last refresh. Times are RFC3339, empty until set.
type Status struct {
	LastRunAt   string                                   `json:"last_run_at"`
	LastOkAt    string                                   `json:"last_ok_at"`
	LastError   string                                   `json:"last_error"`
	Records     int                                      `json:"records"`
	Running     bool                                     `json:"running"`
	PerCategory map[domain.Category]scrape.CategoryStats `json:"per_category,omitempty"`
}

type RefreshResult struct {
	Records     int                                      `json:"records"`
	Warnings    []string                                 `json:"warnings,omitempty"`
	PerCategory map[domain.Category]scrape.CategoryStats `json:"per_category"`
	Took        time.Duration                            `json:"took"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

type snapshot struct {
	jobs []domain.JobRecord
	idx  *index.Index
}

type Session struct {
	builder  CorpusBuilder
	answerer Answerer

	state   atomic.Pointer[snapshot]
	running atomic.Bool
	status  atomic.Value // Status

	mu         sync.Mutex
	transcript []Turn

	// OnChange, when set, is told about refreshes and transcript changes.
	OnChange func(event string, data any)

	now func() time.Time
}

func New(builder CorpusBuilder, answerer Answerer) *Session {
	s := &Session{builder: builder, answerer: answerer, now: time.Now}
	s.state.Store(&snapshot{idx: index.Build(nil)})
	s.status.Store(Status{})
	return s
}

// Refresh rebuilds the collection and swaps it in atomically. Only one refresh runs at a time;
// an overlapping call returns ErrRefreshInProgress without touching state. A build cut short
// by ctx leaves the previous collection in place and returns ctx's error.
func (s *Session) Refresh(ctx context.Context) (RefreshResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return RefreshResult{}, ErrRefreshInProgress
	}
	defer s.running.Store(false)
	return s.refresh(ctx)
}

// RefreshAsync claims the refresh slot and runs the rebuild in the background.
// It reports ErrRefreshInProgress synchronously when another refresh holds the slot.
func (s *Session) RefreshAsync(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	go func() {
		defer s.running.Store(false)
		if _, err := s.refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("background refresh failed")
		}
	}()
	return nil
}

func (s *Session) refresh(ctx context.Context) (RefreshResult, error) {
	start := s.now()
	prev := s.Status()
	s.status.Store(Status{
		LastRunAt:   start.Format(time.RFC3339),
		LastOkAt:    prev.LastOkAt,
		Records:     prev.Records,
		PerCategory: prev.PerCategory,
		Running:     true,
	})
	s.notify(events.RefreshStarted, nil)

	corpus := s.builder.Build(ctx)

	if err := ctx.Err(); err != nil {
		s.status.Store(Status{
			LastRunAt:   s.now().Format(time.RFC3339),
			LastOkAt:    prev.LastOkAt,
			LastError:   err.Error(),
			Records:     prev.Records,
			PerCategory: prev.PerCategory,
		})
		log.Warn().Err(err).Msg("refresh cancelled, keeping previous collection")
		s.notify(events.RefreshDone, RefreshResult{Records: prev.Records, PerCategory: prev.PerCategory, Warnings: []string{err.Error()}})
		return RefreshResult{}, err
	}

	next := &snapshot{jobs: corpus.Records, idx: index.Build(corpus.Records)}
	s.state.Store(next)

	res := RefreshResult{
		Records:     len(corpus.Records),
		PerCategory: corpus.PerCategory,
		Took:        s.now().Sub(start),
	}
	for _, w := range corpus.Warnings {
		res.Warnings = append(res.Warnings, w.Error())
	}

	done := s.now().Format(time.RFC3339)
	st := Status{
		LastRunAt:   done,
		LastOkAt:    done,
		Records:     res.Records,
		PerCategory: corpus.PerCategory,
	}
	if len(res.Warnings) > 0 {
		st.LastError = res.Warnings[0]
	}
	s.status.Store(st)

	log.Info().Int("records", res.Records).Int("warnings", len(res.Warnings)).
		Dur("took", res.Took).Msg("refresh done")
	s.notify(events.RefreshDone, res)
	return res, nil
}

func (s *Session) Status() Status {
	st := s.status.Load().(Status)
	st.Running = s.running.Load()
	return st
}

// Records returns the current collection. Callers must not modify it.
func (s *Session) Records() []domain.JobRecord {
	return s.state.Load().jobs
}

func (s *Session) Index() *index.Index {
	return s.state.Load().idx
}

// Jobs applies the structured search to the current collection.
func (s *Session) Jobs(f query.Filters) []domain.JobRecord {
	return query.Search(s.Records(), f)
}

// Chat records the question, resolves it against the current state and records the answer.
// Both turns are kept even when the backend fails.
func (s *Session) Chat(ctx context.Context, question string) string {
	snap := s.state.Load()
	s.appendTurn(RoleUser, question)

	answer := s.answerer.Answer(ctx, question, snap.jobs, snap.idx)

	turn := s.appendTurn(RoleAssistant, answer)
	s.notify(events.ChatTurn, turn)
	return answer
}

// QuickPrompt is the canned question behind a category shortcut.
func QuickPrompt(cat domain.Category) string {
	return "Show me latest " + string(cat) + " jobs"
}

func (s *Session) QuickAction(ctx context.Context, cat domain.Category) string {
	return s.Chat(ctx, QuickPrompt(cat))
}

func (s *Session) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Turn(nil), s.transcript...)
}

func (s *Session) ClearTranscript() {
	s.mu.Lock()
	s.transcript = nil
	s.mu.Unlock()
	s.notify(events.TranscriptCleared, nil)
}

func (s *Session) appendTurn(role, content string) Turn {
	t := Turn{Role: role, Content: content, At: s.now().UTC()}
	s.mu.Lock()
	s.transcript = append(s.transcript, t)
	s.mu.Unlock()
	return t
}

func (s *Session) notify(event string, data any) {
	if s.OnChange != nil {
		s.OnChange(event, data)
	}
}
