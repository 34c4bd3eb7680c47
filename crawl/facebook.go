package crawl

import (
	"context"

	"github.com/contactfind/contactfind"
)

// facebookBaseURL is the profile URL prefix; slug variants are appended.
const facebookBaseURL = "https://www.facebook.com/"

// FacebookStrategy resolves contacts from a company's Facebook page. Profile
// slugs are guessed from name variants (hyphenated, concatenated, acronym)
// and each page's about sub-page is visited. A login-wall redirect aborts the
// strategy for the company.
type FacebookStrategy struct {
	Env *Env
}

func (s *FacebookStrategy) Name() string { return "facebook" }

func (s *FacebookStrategy) Resolve(ctx context.Context, query contactfind.CompanyQuery) error {
	e := s.Env

	for _, variant := range contactfind.NameVariants(query.Name) {
		if e.Aggregator.IsComplete(query.Name) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		profile := facebookBaseURL + variant
		seeds := []contactfind.PageLead{
			{URL: profile, Priority: contactfind.PrioritySeed, Source: "profile page"},
			{URL: profile + "/about/", Priority: contactfind.PriorityContactPath, Source: "about page"},
		}
		_, err := e.crawlSite(ctx, query.Name, seeds, crawlOptions{
			source:          "facebook",
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
