// Package http provides HTTP-based implementations of contactfind.Fetcher
// and contactfind.SitemapService for static sites that don't require
// JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/contactfind/contactfind"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (15s).
const DefaultFetchTimeout = 15 * time.Second

// userAgents is the read-only identity-rotation pool. Requests cycle through
// it so a crawl does not present a single client identity to every site.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
}

// Ensure Fetcher implements contactfind.Fetcher at compile time.
var _ contactfind.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	next    atomic.Uint64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client, mainly for tests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
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

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, following redirects.
// The response status is classified into application error codes:
// EUNAVAILABLE for 429 and 5xx (retryable), ENOTFOUND for 404/410, and
// EFORBIDDEN for 401/403.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*contactfind.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EINVALID, "invalid url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		// Timeouts and connection failures are transient from the
		// orchestrator's point of view.
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if code, ok := classifyStatus(resp.StatusCode); ok {
		return nil, contactfind.Errorf(code, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &contactfind.FetchResult{
		URL:      url,
		FinalURL: finalURL,
		HTML:     string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// userAgent returns the next identity from the rotation pool.
func (f *Fetcher) userAgent() string {
	n := f.next.Add(1)
	return userAgents[(n-1)%uint64(len(userAgents))]
}

// classifyStatus maps a non-success HTTP status to an application error code.
// The second result is false for success statuses.
func classifyStatus(status int) (string, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", false
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return contactfind.EFORBIDDEN, true
	case status == http.StatusNotFound || status == http.StatusGone:
		return contactfind.ENOTFOUND, true
	case status == http.StatusTooManyRequests || status >= 500:
		return contactfind.EUNAVAILABLE, true
	default:
		return contactfind.EINTERNAL, true
	}
}
