package mock

import "github.com/contactfind/contactfind"

var _ contactfind.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of contactfind.PageParser. Nil
// function fields behave as "found nothing", so tests only set the methods
// they care about.
type PageParser struct {
	ContactsFn      func(html string) (*contactfind.PageContacts, error)
	ContactLeadsFn  func(html string, baseURL string) []contactfind.PageLead
	LinksMatchingFn func(html string, baseURL string, substr string) []string
	ExternalLinksFn func(html string, baseURL string) []string
}

func (p *PageParser) Contacts(html string) (*contactfind.PageContacts, error) {
	if p.ContactsFn == nil {
		return &contactfind.PageContacts{}, nil
	}
	return p.ContactsFn(html)
}

func (p *PageParser) ContactLeads(html string, baseURL string) []contactfind.PageLead {
	if p.ContactLeadsFn == nil {
		return nil
	}
	return p.ContactLeadsFn(html, baseURL)
}

func (p *PageParser) LinksMatching(html string, baseURL string, substr string) []string {
	if p.LinksMatchingFn == nil {
		return nil
	}
	return p.LinksMatchingFn(html, baseURL, substr)
}

func (p *PageParser) ExternalLinks(html string, baseURL string) []string {
	if p.ExternalLinksFn == nil {
		return nil
	}
	return p.ExternalLinksFn(html, baseURL)
}
