// Package crawl provides contact-resolution orchestration. It coordinates
// the source strategies that turn a bare company name into page fetches,
// merges extracted candidates through a first-valid-wins aggregator, and
// bounds the work with per-domain rate limits, retries and page budgets.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/contactfind/contactfind"
)

// Strategy resolves contact details for one company from one source.
// Implementations stop issuing fetches once the aggregator reports the
// company complete, or on reaching their terminal condition (login wall,
// leads exhausted).
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, query contactfind.CompanyQuery) error
}

// Frontier configuration for strategy crawls.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 2000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// defaultMaxPages bounds the fetches one strategy run may issue per company.
	defaultMaxPages = 12
)

// Env holds the collaborators shared by all source strategies for one run.
type Env struct {
	Fetcher    contactfind.Fetcher
	Parser     contactfind.PageParser
	Extractor  contactfind.TextExtractor
	Converter  contactfind.Converter
	AI         contactfind.ContactExtractor
	Aggregator *Aggregator
	Limiter    contactfind.DomainLimiter
	Sitemaps   contactfind.SitemapService
	Logger     *slog.Logger

	// MaxPages bounds fetches per strategy run. Zero means defaultMaxPages.
	MaxPages    int
	RetryDelays []time.Duration
}

func (e *Env) maxPages() int {
	if e.MaxPages > 0 {
		return e.MaxPages
	}
	return defaultMaxPages
}

// fetchPage rate-limits by host, then fetches with retry on transient errors.
func (e *Env) fetchPage(ctx context.Context, rawURL string) (*contactfind.FetchResult, error) {
	if e.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, contactfind.Errorf(contactfind.EINVALID, "invalid url %q: %v", rawURL, err)
		}
		if err := e.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	var logf LogFunc
	if e.Logger != nil {
		logf = func(format string, args ...any) {
			e.Logger.Debug(fmt.Sprintf(format, args...))
		}
	}
	return FetchWithRetryDelays(ctx, rawURL, e.Fetcher.Fetch, logf, delays)
}

// crawlOptions configures one crawlSite run.
type crawlOptions struct {
	// source labels accepted candidates in the aggregated record.
	source string

	// detectLoginWall aborts the crawl with EFORBIDDEN when a fetched page
	// lands on an authentication redirect.
	detectLoginWall bool

	// onPage, if set, is called for every successfully fetched page.
	onPage func(lead contactfind.PageLead, page *contactfind.FetchResult)
}

// crawlSite drains a frontier seeded with the given leads, harvesting contact
// candidates from each fetched page and pushing in-page contact leads back
// onto the frontier. It stops when the company's record is complete, the page
// budget is spent, or the frontier empties, then runs the AI fallback on the
// best unharvested page if fields are still missing.
//
// Returns the number of pages fetched. A hard 404 on a seed lead aborts the
// run immediately, since it means the site guess itself is wrong.
func (e *Env) crawlSite(ctx context.Context, company string, seeds []contactfind.PageLead, opts crawlOptions) (int, error) {
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, s := range seeds {
		frontier.Push(s)
	}

	var processed int
	var aiPage *contactfind.FetchResult
	var aiPageLikely bool

	for processed < e.maxPages() {
		if e.Aggregator.IsComplete(company) {
			break
		}
		lead, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		page, err := e.fetchPage(ctx, lead.URL)
		if err != nil {
			code := contactfind.ErrorCode(err)
			if opts.detectLoginWall && code == contactfind.EFORBIDDEN {
				return processed, err
			}
			if lead.Priority == contactfind.PrioritySeed && code == contactfind.ENOTFOUND {
				return processed, err
			}
			if e.Logger != nil {
				e.Logger.Debug("fetch failed", "url", lead.URL, "error", err)
			}
			continue
		}
		processed++

		if opts.detectLoginWall && IsLoginWall(page.FinalURL) {
			return processed, contactfind.Errorf(contactfind.EFORBIDDEN, "login wall at %s", page.FinalURL)
		}

		if opts.onPage != nil {
			opts.onPage(lead, page)
		}

		found := e.harvest(company, page, opts.source)

		for _, l := range e.Parser.ContactLeads(page.HTML, page.FinalURL) {
			frontier.Push(l)
		}

		// Remember the most promising page for the AI fallback: prefer a
		// page the classifier thinks is a contact page, else the last one.
		if !found {
			likely := e.likelyContactPage(page)
			if aiPage == nil || likely || !aiPageLikely {
				aiPage, aiPageLikely = page, likely
			}
		}
	}

	if !e.Aggregator.IsComplete(company) {
		e.aiFallback(ctx, company, aiPage, opts.source)
	}
	return processed, nil
}

// harvest extracts candidates from a fetched page and offers them to the
// aggregator. Returns true if any candidate was accepted, flushing the
// record opportunistically in that case.
func (e *Env) harvest(company string, page *contactfind.FetchResult, source string) bool {
	contacts, err := e.Parser.Contacts(page.HTML)
	if err != nil {
		return false
	}

	var found bool
	for _, c := range contacts.Emails {
		if e.Aggregator.RecordCandidate(company, contactfind.FieldEmail, c.Value, source) {
			found = true
		}
	}
	for _, c := range contacts.Phones {
		if e.Aggregator.RecordCandidate(company, contactfind.FieldPhone, c.Value, source) {
			found = true
		}
	}

	if found {
		if err := e.Aggregator.Flush(company); err != nil && e.Logger != nil {
			e.Logger.Warn("flush failed", "company", company, "error", err)
		}
	}
	return found
}

// likelyContactPage classifies a fetched page using its extracted title and
// body text.
func (e *Env) likelyContactPage(page *contactfind.FetchResult) bool {
	if e.Extractor == nil {
		return false
	}
	res, err := e.Extractor.Extract(page.HTML)
	if err != nil {
		return false
	}
	return contactfind.IsLikelyContactPage(page.FinalURL, res.Title, res.Text)
}

// aiFallback asks the AI extractor for the missing fields using the page's
// content. Model output re-enters the aggregator as ordinary candidates and
// failures are swallowed: the fallback never fails louder than "not found".
func (e *Env) aiFallback(ctx context.Context, company string, page *contactfind.FetchResult, source string) {
	if e.AI == nil || page == nil {
		return
	}

	content := page.HTML
	if e.Converter != nil {
		if md, err := e.Converter.Convert(page.HTML); err == nil {
			content = md
		}
	}

	contact, err := e.AI.ExtractContact(ctx, contactfind.ContactExtractRequest{
		CompanyName: company,
		Website:     e.Aggregator.Website(company),
		Content:     content,
	})
	if err != nil {
		return
	}

	label := source + " (ai)"
	accepted := e.Aggregator.RecordCandidate(company, contactfind.FieldEmail, contact.Email, label)
	if e.Aggregator.RecordCandidate(company, contactfind.FieldPhone, contact.Phone, label) {
		accepted = true
	}
	if accepted {
		if err := e.Aggregator.Flush(company); err != nil && e.Logger != nil {
			e.Logger.Warn("flush failed", "company", company, "error", err)
		}
	}
}

// recordExternalWebsite records the first external link that is not another
// social or directory profile as the company's website.
func (e *Env) recordExternalWebsite(company string, page *contactfind.FetchResult) {
	if e.Aggregator.Website(company) != "" {
		return
	}
	for _, link := range e.Parser.ExternalLinks(page.HTML, page.FinalURL) {
		if isSocialOrDirectoryHost(link) {
			continue
		}
		e.Aggregator.SetWebsite(company, link)
		return
	}
}

// loginWallMarkers are URL fragments of authentication redirects on social
// and professional networks.
var loginWallMarkers = []string{"login", "checkpoint", "authwall", "signup"}

// IsLoginWall reports whether a final URL after redirects is an
// authentication page rather than the requested content.
func IsLoginWall(finalURL string) bool {
	lower := strings.ToLower(finalURL)
	for _, marker := range loginWallMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

var socialDirectoryHosts = []string{
	"linkedin.com", "facebook.com", "twitter.com", "x.com", "instagram.com",
	"youtube.com", "indiamart.com", "google.com", "wa.me", "whatsapp.com",
}

func isSocialOrDirectoryHost(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return true
	}
	host := strings.ToLower(u.Host)
	for _, h := range socialDirectoryHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
