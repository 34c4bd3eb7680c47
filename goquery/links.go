package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactfind/contactfind"
)

// leadConfig defines a CSS selector with its priority and source label.
type leadConfig struct {
	selector string
	priority contactfind.PagePriority
	source   string
}

// leadConfigs order in-page contact leads by where they were found. Footer
// links are the strongest signal, then navigation menus, then any anchor
// whose href or text mentions contact/about.
var leadConfigs = []leadConfig{
	{"footer a[href], .footer a[href], #footer a[href], [class*=footer] a[href]", contactfind.PriorityContactPath, "footer link"},
	{"nav a[href], .nav a[href], #nav a[href], .menu a[href], #menu a[href], .navigation a[href]", contactfind.PriorityNavigation, "nav link"},
	{"a[href*=contact], a[href*=about]", contactfind.PriorityNavigation, "contact link"},
	{"a[href]", contactfind.PriorityFallback, "page link"},
}

// ContactLeads extracts links that likely lead to contact or about pages.
// Only same-host links whose href or anchor text mentions "contact",
// "about", "reach" or "touch" are returned; duplicates keep the highest
// priority occurrence and document order is preserved otherwise.
func (p *Parser) ContactLeads(html string, baseURL string) []contactfind.PageLead {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]int)
	var leads []contactfind.PageLead

	for _, config := range leadConfigs {
		doc.Find(config.selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" || isNonHTTPLink(href) {
				return
			}
			if !mentionsContact(href) && !mentionsContact(sel.Text()) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" || !isSameHost(base, resolved) {
				return
			}

			lead := contactfind.PageLead{
				URL:      resolved,
				Priority: config.priority,
				Source:   config.source,
			}
			if idx, ok := seen[resolved]; ok {
				if config.priority > leads[idx].Priority {
					leads[idx] = lead
				}
			} else {
				seen[resolved] = len(leads)
				leads = append(leads, lead)
			}
		})
	}

	return leads
}

// LinksMatching returns absolute hrefs whose resolved URL contains substr,
// in document order without duplicates.
func (p *Parser) LinksMatching(html string, baseURL string, substr string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		if !strings.Contains(strings.ToLower(resolved), strings.ToLower(substr)) {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})
	return links
}

// ExternalLinks returns absolute http(s) links pointing at hosts other than
// baseURL's, in document order without duplicates. Strategies use this to
// hop from a directory or social profile to the company's own site.
func (p *Parser) ExternalLinks(html string, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return
		}
		u, err := url.Parse(href)
		if err != nil || u.Host == "" || u.Host == base.Host {
			return
		}
		u.Fragment = ""
		link := u.String()
		if seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})
	return links
}

// mentionsContact reports whether a href or anchor text points at a contact
// or about page.
func mentionsContact(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "contact") ||
		strings.Contains(s, "about") ||
		strings.Contains(s, "reach") ||
		strings.Contains(s, "touch")
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential. Fragments are stripped for deduplication.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
