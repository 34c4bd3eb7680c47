package crawl

import (
	"context"
	"strings"

	"github.com/contactfind/contactfind"
)

// contactPathSuffixes are likely contact-page paths probed on every site.
var contactPathSuffixes = []string{
	"contact", "contact-us", "contactus", "about", "about-us", "reach-us",
}

// alternateTLDs are tried in order when a guessed homepage 404s.
var alternateTLDs = []string{".com", ".in", ".co.in", ".co", ".org", ".net"}

// sitemapContactURLLimit bounds how many sitemap-discovered contact URLs are
// seeded per site.
const sitemapContactURLLimit = 5

// WebsiteStrategy resolves contacts from the company's own site: a known or
// guessed homepage, constructed contact paths, and in-page contact links.
type WebsiteStrategy struct {
	Env *Env
}

func (s *WebsiteStrategy) Name() string { return "website" }

// Resolve crawls the company's website. When the homepage URL is a guess and
// the guess 404s, alternate TLD spellings of the slug are tried; the first
// reachable site is committed to and recorded as the company's website.
func (s *WebsiteStrategy) Resolve(ctx context.Context, query contactfind.CompanyQuery) error {
	e := s.Env

	var bases []string
	addBase := func(u string) {
		u = strings.TrimRight(u, "/")
		if u == "" {
			return
		}
		for _, b := range bases {
			if b == u {
				return
			}
		}
		bases = append(bases, u)
	}

	// A website learned from the places lookup or another strategy wins
	// over guesses.
	addBase(e.Aggregator.Website(query.Name))
	addBase(query.Website)
	if slug := contactfind.SlugifyName(query.Name, "-"); slug != "" {
		for _, tld := range alternateTLDs {
			addBase("http://www." + slug + tld)
		}
	}

	for _, base := range bases {
		if e.Aggregator.IsComplete(query.Name) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		seeds := []contactfind.PageLead{
			{URL: base, Priority: contactfind.PrioritySeed, Source: "home page"},
		}
		for _, suffix := range contactPathSuffixes {
			seeds = append(seeds, contactfind.PageLead{
				URL:      base + "/" + suffix,
				Priority: contactfind.PriorityContactPath,
				Source:   "contact path",
			})
		}
		if e.Sitemaps != nil {
			urls, err := e.Sitemaps.DiscoverContactURLs(ctx, base, sitemapContactURLLimit)
			if err == nil {
				for _, u := range urls {
					seeds = append(seeds, contactfind.PageLead{
						URL:      u,
						Priority: contactfind.PriorityContactPath,
						Source:   "sitemap",
					})
				}
			}
		}

		base := base
		processed, err := e.crawlSite(ctx, query.Name, seeds, crawlOptions{
			source: "website",
			onPage: func(_ contactfind.PageLead, _ *contactfind.FetchResult) {
				e.Aggregator.SetWebsite(query.Name, base)
			},
		})
		if err != nil && ctx.Err() != nil {
			return err
		}
		// A site that answered at all is the right domain. Alternate TLDs
		// exist only to recover from a dead guess.
		if processed > 0 {
			return nil
		}
	}
	return nil
}
