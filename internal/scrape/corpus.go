package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/scrape/sample"
	"jobyaari-engine/internal/scrape/util"
)

// Source maps a category to the page listing its postings.
type Source struct {
	Category domain.Category
	URL      string
}

// DefaultSources builds the four category pages under base, e.g. <base>/science-jobs/.
func DefaultSources(base string) []Source {
	out := make([]Source, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, Source{Category: c, URL: util.JoinPath(base, c.Slug()+"-jobs/")})
	}
	return out
}

// SourcesFromPaths resolves per-category page paths against base. Categories missing
// from paths keep their default page; unknown keys are ignored.
func SourcesFromPaths(base string, paths map[string]string) []Source {
	out := DefaultSources(base)
	for i, src := range out {
		for name, p := range paths {
			if c, ok := domain.ParseCategory(name); ok && c == src.Category && p != "" {
				out[i].URL = util.JoinPath(base, p)
			}
		}
	}
	return out
}

type BuilderConfig struct {
	BaseURL       string
	Sources       []Source
	MaxFragments  int // candidate fragments examined per page
	MinGenuine    int // below this many extracted records a category is topped up
	FallbackCount int // synthetic records requested when topping up
	Concurrency   int // parallel page fetches; <= 0 means one at a time
	Rules         []Rule
}

func (c BuilderConfig) withDefaults() BuilderConfig {
	if len(c.Sources) == 0 {
		c.Sources = DefaultSources(c.BaseURL)
	}
	if c.MaxFragments <= 0 {
		c.MaxFragments = 20
	}
	if c.MinGenuine <= 0 {
		c.MinGenuine = 5
	}
	if c.FallbackCount <= 0 {
		c.FallbackCount = 15
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	return c
}

type CategoryStats struct {
	Genuine   int    `json:"genuine"`
	Synthetic int    `json:"synthetic"`
	Error     string `json:"error,omitempty"`
}

// Corpus is the flat collection produced by one refresh, in category order.
type Corpus struct {
	Records     []domain.JobRecord
	Warnings    []*FetchError
	PerCategory map[domain.Category]CategoryStats
}

type Builder struct {
	cfg       BuilderConfig
	fetcher   PageFetcher
	extractor *Extractor
}

func NewBuilder(cfg BuilderConfig, fetcher PageFetcher) *Builder {
	cfg = cfg.withDefaults()
	return &Builder{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: NewExtractor(cfg.BaseURL, cfg.Rules),
	}
}

type categoryResult struct {
	jobs []domain.JobRecord
	err  *FetchError
}

// Build fetches every category page, extracts postings and tops up thin categories with
// sample postings. Fetch failures are reported in Corpus.Warnings and never abort the build.
func (b *Builder) Build(ctx context.Context) Corpus {
	results := make([]categoryResult, len(b.cfg.Sources))

	var g errgroup.Group
	g.SetLimit(b.cfg.Concurrency)
	for i, src := range b.cfg.Sources {
		g.Go(func() error {
			jobs, err := b.scrapeCategory(ctx, src)
			results[i] = categoryResult{jobs: jobs, err: err}
			return nil // best-effort: one category never cancels the others
		})
	}
	_ = g.Wait()

	out := Corpus{PerCategory: make(map[domain.Category]CategoryStats, len(results))}
	for i, src := range b.cfg.Sources {
		res := results[i]
		stats := CategoryStats{Genuine: len(res.jobs)}
		jobs := res.jobs

		if res.err != nil {
			log.Warn().Err(res.err.Err).Str("category", string(src.Category)).Str("url", src.URL).
				Msg("category fetch failed; using sample postings")
			out.Warnings = append(out.Warnings, res.err)
			stats.Error = res.err.Error()
		}
		if len(jobs) < b.cfg.MinGenuine {
			extra := sample.Generate(b.cfg.BaseURL, src.Category, b.cfg.FallbackCount)
			stats.Synthetic = len(extra)
			jobs = append(jobs, extra...)
		}

		log.Info().Str("category", string(src.Category)).
			Int("genuine", stats.Genuine).Int("synthetic", stats.Synthetic).
			Msg("category scraped")
		out.PerCategory[src.Category] = stats
		out.Records = append(out.Records, jobs...)
	}
	return out
}

func (b *Builder) scrapeCategory(ctx context.Context, src Source) ([]domain.JobRecord, *FetchError) {
	fail := func(err error) ([]domain.JobRecord, *FetchError) {
		return nil, &FetchError{Category: src.Category, URL: src.URL, Err: err}
	}

	page, err := b.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return fail(err)
	}
	if !page.OK() {
		return fail(fmt.Errorf("%w %d", ErrBadStatus, page.Status))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Content))
	if err != nil {
		return fail(fmt.Errorf("parsing HTML: %w", err))
	}

	return b.ExtractAll(doc.Selection, src.Category), nil
}

// ExtractAll runs the extractor over the candidate fragments under root, discarding misses.
func (b *Builder) ExtractAll(root *goquery.Selection, cat domain.Category) []domain.JobRecord {
	var jobs []domain.JobRecord
	Fragments(root, DefaultFragmentRule, b.cfg.MaxFragments).Each(func(i int, frag *goquery.Selection) {
		job, err := b.extractor.Extract(frag, cat)
		if err != nil {
			if !errors.Is(err, ErrNoTitle) {
				log.Debug().Err(err).Str("category", string(cat)).Int("fragment", i).Msg("fragment skipped")
			}
			return
		}
		jobs = append(jobs, job)
	})
	return jobs
}
