package crawl

import (
	"context"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/contactfind/contactfind"
)

// linkedinSearchURL is the company search endpoint; the company name is
// appended URL-escaped.
const linkedinSearchURL = "https://www.linkedin.com/search/results/companies/?keywords="

// linkedinMaxProfiles bounds how many ranked company pages are visited.
const linkedinMaxProfiles = 3

// LinkedInStrategy resolves contacts from LinkedIn: search by company name,
// rank result links by name similarity, then visit the top company pages and
// their about sub-pages. A login-wall redirect aborts the strategy for the
// company; no credentials are available.
type LinkedInStrategy struct {
	Env *Env
}

func (s *LinkedInStrategy) Name() string { return "linkedin" }

func (s *LinkedInStrategy) Resolve(ctx context.Context, query contactfind.CompanyQuery) error {
	e := s.Env

	var profiles []string
	page, err := e.fetchPage(ctx, linkedinSearchURL+url.QueryEscape(query.Name))
	if err != nil {
		if contactfind.ErrorCode(err) == contactfind.EFORBIDDEN {
			return err
		}
	} else {
		if IsLoginWall(page.FinalURL) {
			return contactfind.Errorf(contactfind.EFORBIDDEN, "login wall at %s", page.FinalURL)
		}
		links := e.Parser.LinksMatching(page.HTML, page.FinalURL, "linkedin.com/company/")
		profiles = rankProfileLinks(query.Name, links, linkedinMaxProfiles)
	}

	// Direct slug guesses when search yielded nothing similar.
	if len(profiles) == 0 {
		for _, variant := range contactfind.NameVariants(query.Name) {
			profiles = append(profiles, "https://www.linkedin.com/company/"+variant)
			if len(profiles) == linkedinMaxProfiles {
				break
			}
		}
	}

	for _, profile := range profiles {
		if e.Aggregator.IsComplete(query.Name) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		profile = strings.TrimRight(profile, "/")
		seeds := []contactfind.PageLead{
			{URL: profile, Priority: contactfind.PrioritySeed, Source: "company page"},
			{URL: profile + "/about/", Priority: contactfind.PriorityContactPath, Source: "about page"},
		}
		_, err := e.crawlSite(ctx, query.Name, seeds, crawlOptions{
			source:          "linkedin",
			detectLoginWall: true,
			onPage: func(_ contactfind.PageLead, page *contactfind.FetchResult) {
				e.recordExternalWebsite(query.Name, page)
			},
		})
		if err != nil {
			if contactfind.ErrorCode(err) == contactfind.EFORBIDDEN {
				return err
			}
			if ctx.Err() != nil {
				return err
			}
		}
	}
	return nil
}

// rankProfileLinks orders candidate profile links by name similarity to the
// company name and returns the top n plausible matches. Links whose slug is
// not similar to the name at all are dropped.
func rankProfileLinks(companyName string, links []string, n int) []string {
	type scored struct {
		url   string
		score float64
	}

	seen := make(map[string]bool)
	var ranked []scored
	for _, link := range links {
		slugName := profileSlugName(link)
		if slugName == "" || seen[link] {
			continue
		}
		seen[link] = true
		if !contactfind.NamesAreSimilar(companyName, slugName) {
			continue
		}
		ranked = append(ranked, scored{url: link, score: contactfind.SimilarityScore(companyName, slugName)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.url)
	}
	return out
}

// profileSlugName turns a profile URL's last path segment into a comparable
// name, e.g. "acme-widgets-pvt-ltd" into "acme widgets pvt ltd".
func profileSlugName(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	seg := path.Base(strings.TrimRight(u.Path, "/"))
	if seg == "." || seg == "/" {
		return ""
	}
	seg = strings.ReplaceAll(seg, "-", " ")
	seg = strings.ReplaceAll(seg, "_", " ")
	return seg
}
