package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/contactfind/contactfind"
)

// indiamartSearchURL is the directory search endpoint; the query string is
// appended URL-escaped.
const indiamartSearchURL = "https://dir.indiamart.com/search.mp?ss="

// indiamartMaxListings bounds how many listing links are followed per query.
const indiamartMaxListings = 3

// IndiaMartStrategy resolves contacts from the IndiaMART business directory.
// Contact widgets are extracted directly from the search-results page, then
// the top listing links are followed and extracted in turn.
type IndiaMartStrategy struct {
	Env *Env
}

func (s *IndiaMartStrategy) Name() string { return "indiamart" }

func (s *IndiaMartStrategy) Resolve(ctx context.Context, query contactfind.CompanyQuery) error {
	e := s.Env

	// Multiple query phrasings: directory listings often index a company
	// under its trade category rather than its bare name.
	queries := []string{
		query.Name,
		query.Name + " suppliers",
		query.Name + " manufacturers",
	}

	for _, q := range queries {
		if e.Aggregator.IsComplete(query.Name) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := e.fetchPage(ctx, indiamartSearchURL+url.QueryEscape(q))
		if err != nil {
			if e.Logger != nil {
				e.Logger.Debug("directory search failed", "query", q, "error", err)
			}
			continue
		}

		// The results page itself carries call-now widgets and snippets.
		e.harvest(query.Name, page, "indiamart")
		if e.Aggregator.IsComplete(query.Name) {
			return nil
		}

		var seeds []contactfind.PageLead
		for _, link := range listingLinks(e, page, indiamartMaxListings) {
			seeds = append(seeds, contactfind.PageLead{
				URL:      link,
				Priority: contactfind.PriorityContactPath,
				Source:   "directory listing",
			})
		}
		if len(seeds) == 0 {
			continue
		}

		_, err = e.crawlSite(ctx, query.Name, seeds, crawlOptions{
			source: "indiamart",
			onPage: func(_ contactfind.PageLead, page *contactfind.FetchResult) {
				e.recordExternalWebsite(query.Name, page)
			},
		})
		if err != nil && ctx.Err() != nil {
			return err
		}
	}
	return nil
}

// listingLinks picks the top n supplier listing links from a search-results
// page, skipping further search pages and category indexes.
func listingLinks(e *Env, page *contactfind.FetchResult, n int) []string {
	var out []string
	for _, link := range e.Parser.LinksMatching(page.HTML, page.FinalURL, "indiamart.com") {
		lower := strings.ToLower(link)
		if strings.Contains(lower, "search.mp") || strings.Contains(lower, "/impcat/") {
			continue
		}
		out = append(out, link)
		if len(out) == n {
			break
		}
	}
	return out
}
