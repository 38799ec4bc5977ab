// Package http provides an HTTP-based implementation of hours.Fetcher.
// The office page is static HTML served from a fixed URL, so a plain HTTP
// client without JavaScript rendering is sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/ceramic-mug/hours"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements hours.Fetcher at compile time.
var _ hours.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves the office page over HTTP. Responses are converted to
// UTF-8 using the declared content-type charset before being returned.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps requests per second against the source. A user-driven
// retry loop should not hammer the office site.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the URL as UTF-8 text. Transport failures
// carry EUNAVAILABLE; payloads that cannot be decoded as text carry EDECODE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", hours.Errorf(hours.EUNAVAILABLE, "rate limit wait: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", hours.Errorf(hours.EINVALID, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", hours.Errorf(hours.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", hours.Errorf(hours.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", hours.Errorf(hours.EDECODE, "failed to load content")
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", hours.Errorf(hours.EUNAVAILABLE, "read %s: %v", url, err)
	}

	if !utf8.Valid(body) {
		return "", hours.Errorf(hours.EDECODE, "failed to load content")
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
