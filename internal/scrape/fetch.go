package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/scrape/util"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxPageBytes = 8 << 20
)

var ErrBadStatus = errors.New("unexpected status")

// Page is the raw result of fetching one address.
type Page struct {
	Status  int
	Content []byte
}

func (p *Page) OK() bool {
	return p != nil && p.Status >= 200 && p.Status <= 299
}

// PageFetcher retrieves one page. Implementations may time out or fail at the transport level.
type PageFetcher interface {
	Fetch(ctx context.Context, address string) (*Page, error)
}

// FetchError reports a category whose page could not be retrieved or parsed.
type FetchError struct {
	Category domain.Category
	URL      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Category, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type HTTPFetcher struct {
	hc        *http.Client
	limiter   *util.HostLimiter
	timeout   time.Duration
	userAgent string
}

// NewHTTPFetcher bounds every page by timeout and spaces requests to one host by pace.
func NewHTTPFetcher(timeout, pace time.Duration, userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		hc:        &http.Client{Timeout: timeout},
		limiter:   util.NewPacedLimiter(pace),
		timeout:   timeout,
		userAgent: userAgent,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, address string) (*Page, error) {
	if err := f.limiter.WaitURL(ctx, address); err != nil {
		return nil, err
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return &Page{Status: res.StatusCode, Content: body}, nil
}
