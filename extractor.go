package contactfind

// ExtractResult holds the readable content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main body text with markup removed.
	Text string
}

// TextExtractor extracts readable text from HTML pages, removing boilerplate.
// The contact-page classifier runs over the extracted title and text, and the
// AI fallback receives extracted (not raw) content to stay within its input
// budget.
type TextExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML content into Markdown. Used to reduce page markup
// to compact text before handing it to the AI fallback extractor.
type Converter interface {
	Convert(html string) (string, error)
}
