package contactfind

// PageContacts holds the validated contact candidates extracted from one
// page, each list ordered most-reliable-first (mailto:/tel: links, then
// footer, contact and about containers, structured data, keyword blocks).
type PageContacts struct {
	Emails []Candidate
	Phones []Candidate
}

// BestEmail returns the value of the top-ranked email candidate, or "".
func (p *PageContacts) BestEmail() (value, context string) {
	if len(p.Emails) == 0 {
		return "", ""
	}
	return p.Emails[0].Value, p.Emails[0].Context
}

// BestPhone returns the value of the top-ranked phone candidate, or "".
func (p *PageContacts) BestPhone() (value, context string) {
	if len(p.Phones) == 0 {
		return "", ""
	}
	return p.Phones[0].Value, p.Phones[0].Context
}

// PageParser locates contact-bearing substructure in fetched pages and
// produces validated candidates and follow-up leads.
type PageParser interface {
	// Contacts extracts validated email and phone candidates from a page.
	Contacts(html string) (*PageContacts, error)

	// ContactLeads returns in-page links that likely lead to contact or
	// about pages, prioritized by where they were found (footer and nav
	// links outrank body links).
	ContactLeads(html string, baseURL string) []PageLead

	// LinksMatching returns absolute hrefs whose URL contains substr,
	// resolved against baseURL, in document order without duplicates.
	LinksMatching(html string, baseURL string, substr string) []string

	// ExternalLinks returns absolute http(s) links pointing at hosts other
	// than baseURL's, in document order without duplicates.
	ExternalLinks(html string, baseURL string) []string
}
