// Package trafilatura extracts readable text from fetched pages using
// go-trafilatura, stripping navigation and other boilerplate so the
// contact-page classifier and the AI fallback see only real content.
package trafilatura

import (
	"strings"

	"github.com/contactfind/contactfind"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements contactfind.TextExtractor at compile time.
var _ contactfind.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main body text.
// Contact pages are often too sparse for main-content detection (a bare
// footer, a stub profile); when trafilatura finds nothing, the document's
// raw text is returned instead so the classifier still sees the page.
func (e *Extractor) Extract(rawHTML string) (*contactfind.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, contactfind.Errorf(contactfind.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		if text := documentText(rawHTML); text != "" {
			return &contactfind.ExtractResult{Text: text}, nil
		}
		return nil, err
	}

	text := result.ContentText
	if text == "" {
		text = documentText(rawHTML)
	}

	return &contactfind.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}

// documentText concatenates the document's text nodes, skipping script and
// style subtrees.
func documentText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}
