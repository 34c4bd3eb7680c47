package contactfind

import "context"

// PagePriority orders candidate page fetches within a strategy.
// Higher values are fetched first.
type PagePriority int

// Page priorities, most reliable sources first.
const (
	PriorityFallback PagePriority = iota // generic in-page link
	PriorityNavigation                   // nav/menu link mentioning contact or about
	PriorityContactPath                  // constructed contact-path suffix or footer link
	PrioritySeed                         // strategy entry point (home page, search page)
)

// PageLead is a candidate page discovered by a strategy: a URL to fetch with
// the priority it should be fetched at and a label naming where it came from.
type PageLead struct {
	URL      string
	Priority PagePriority
	Source   string
}

// URLFrontier manages a per-company fetch queue with deduplication, so
// concurrent strategies never fetch the same URL twice for one company.
type URLFrontier interface {
	// Push adds a lead to the frontier.
	// Returns false if the URL has already been seen.
	Push(lead PageLead) bool

	// Pop returns the next lead by priority.
	// Returns false if the frontier is empty.
	Pop() (PageLead, bool)

	// Len returns the number of leads in the queue.
	Len() int

	// Seen returns true if the URL has been queued or processed.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
