// Package rod provides a browser-backed implementation of contactfind.Fetcher
// for sites that render contact details with JavaScript (directory widgets,
// social profiles).
package rod

import (
	"context"
	"fmt"

	"github.com/contactfind/contactfind"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements contactfind.Fetcher at compile time.
var _ contactfind.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML along with the
// final URL after any client-side or server-side redirects, so callers can
// detect login walls.
//
// Navigation and load failures are reported as EUNAVAILABLE: from the
// orchestrator's point of view a browser failure on one URL is transient.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*contactfind.FetchResult, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Create a new page
	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	// Navigate to URL
	if err := page.Navigate(url); err != nil {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}

	// Wait for page to load
	if err := page.WaitLoad(); err != nil {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "loading %s: %v", url, err)
	}

	// Get rendered HTML
	html, err := page.HTML()
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	// The page info carries the URL after redirects
	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &contactfind.FetchResult{
		URL:      url,
		FinalURL: finalURL,
		HTML:     html,
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
