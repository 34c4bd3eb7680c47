package contactfind

import "context"

// FetchResult holds the outcome of fetching a single URL.
type FetchResult struct {
	// URL is the URL that was requested.
	URL string

	// FinalURL is the URL after following redirects. Strategies inspect it
	// to detect login walls (e.g. a LinkedIn page redirecting to /login).
	FinalURL string

	// HTML is the page content. For browser-backed fetchers this is the
	// rendered DOM after JavaScript execution.
	HTML string
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
//
// Fetch errors carry application error codes that classify the failure:
// EUNAVAILABLE for transient conditions (timeouts, 5xx, 429) that the caller
// may retry, ENOTFOUND for hard 404s, and EFORBIDDEN for access-denied
// responses. The context controls timeout and cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases underlying resources (connections, browser processes).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
