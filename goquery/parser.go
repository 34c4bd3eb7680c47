// Package goquery provides HTML parsing for contact extraction: locating
// contact-bearing substructure (footers, address blocks, structured data),
// harvesting mailto:/tel: links, and discovering contact-page leads.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactfind/contactfind"
)

// Compile-time interface verification.
var _ contactfind.PageParser = (*Parser)(nil)

// Parser implements contactfind.PageParser using goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Contacts extracts validated email and phone candidates from a page.
//
// Candidates are collected in reliability order: explicit mailto:/tel: links
// first, then each contact section returned by ContactSections. Within one
// list the first entry is the page's best candidate for that field.
func (p *Parser) Contacts(html string) (*contactfind.PageContacts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EINVALID, "failed to parse HTML: %v", err)
	}

	contacts := &contactfind.PageContacts{}
	seenEmail := make(map[string]bool)
	seenPhone := make(map[string]bool)

	addEmail := func(value, context string) {
		if value == "" || seenEmail[value] {
			return
		}
		seenEmail[value] = true
		contacts.Emails = append(contacts.Emails, contactfind.Candidate{
			Kind: contactfind.FieldEmail, Value: value, Context: context,
		})
	}
	addPhone := func(value, context string) {
		if value == "" || seenPhone[value] {
			return
		}
		seenPhone[value] = true
		contacts.Phones = append(contacts.Phones, contactfind.Candidate{
			Kind: contactfind.FieldPhone, Value: value, Context: context,
		})
	}

	// mailto: and tel: links are the most reliable source on any page.
	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		addEmail(contactfind.EmailFromMailto(href), "mailto link")
	})
	doc.Find(`a[href^="tel:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		addPhone(contactfind.PhoneFromTel(href), "tel link")
	})

	for _, section := range contactSectionsFromDoc(doc) {
		for _, email := range contactfind.ExtractEmails(section.Text) {
			addEmail(email, section.Label)
		}
		for _, phone := range contactfind.ExtractPhones(section.Text) {
			addPhone(phone, section.Label)
		}
	}

	return contacts, nil
}
