package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contactfind/contactfind"
)

// Section is an HTML fragment likely to carry contact details.
type Section struct {
	// Label names the fragment type for provenance, e.g. "footer".
	Label string

	// Text is the fragment's visible text. For structured-data sections it
	// is the space-joined email/telephone values found in the block.
	Text string
}

// sectionSelector pairs a CSS selector with its provenance label.
// The list is ordered by reliability: footers and structured data have
// proven the most trustworthy sources of real contact details.
type sectionSelector struct {
	label    string
	selector string
}

var sectionSelectors = []sectionSelector{
	{"footer", "footer, .footer, #footer, [class*=footer], [id*=footer]"},
	{"contact section", ".contact, #contact, [class*=contact], [id*=contact], address, .address, .location, .get-in-touch"},
	{"about section", ".about, #about, [class*=about-us], [id*=about-us]"},
}

// contactBlockKeywords mark generic text blocks worth scanning.
var contactBlockKeywords = []string{"email", "mail", "phone", "call", "contact", "tel"}

// ContactSections returns the contact-bearing fragments of a page in
// priority order: footer containers, contact/address/location elements,
// about containers, schema.org ld+json blocks, then generic text blocks
// (p, div, li) containing a contact-indicator keyword.
func ContactSections(html string) ([]Section, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EINVALID, "failed to parse HTML: %v", err)
	}
	return contactSectionsFromDoc(doc), nil
}

func contactSectionsFromDoc(doc *goquery.Document) []Section {
	var sections []Section

	for _, ss := range sectionSelectors {
		doc.Find(ss.selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if text == "" {
				return
			}
			sections = append(sections, Section{Label: ss.label, Text: text})
		})
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		if text := structuredDataText(sel.Text()); text != "" {
			sections = append(sections, Section{Label: "structured data", Text: text})
		}
	})

	doc.Find("p, div, li").Each(func(_ int, sel *goquery.Selection) {
		// Only leaf-ish blocks: skip containers whose children are blocks
		// themselves, otherwise the whole page matches via the root div.
		if sel.ChildrenFiltered("p, div, li").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		lower := strings.ToLower(text)
		for _, kw := range contactBlockKeywords {
			if strings.Contains(lower, kw) {
				sections = append(sections, Section{Label: "contact block", Text: text})
				return
			}
		}
	})

	return sections
}

// structuredDataText parses an ld+json block and returns its email and
// telephone values joined as text, so they flow through the same validators
// as free-text candidates. Returns "" when the block yields nothing.
func structuredDataText(raw string) string {
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return ""
	}

	var values []string
	switch v := data.(type) {
	case map[string]any:
		values = structuredContactValues(v)
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				values = append(values, structuredContactValues(obj)...)
			}
		}
	}
	return strings.Join(values, " ")
}

// structuredContactValues pulls email/telephone strings out of a schema.org
// object, looking at the top level and under contactPoint (object or list).
func structuredContactValues(obj map[string]any) []string {
	var values []string

	appendString := func(v any) {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}

	for _, key := range []string{"email", "telephone", "phone"} {
		appendString(obj[key])
	}

	switch cp := obj["contactPoint"].(type) {
	case map[string]any:
		for _, key := range []string{"email", "telephone", "phone"} {
			appendString(cp[key])
		}
	case []any:
		for _, item := range cp {
			point, ok := item.(map[string]any)
			if !ok {
				continue
			}
			for _, key := range []string{"email", "telephone", "phone"} {
				appendString(point[key])
			}
		}
	}

	return values
}
