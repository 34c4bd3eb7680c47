package contactfind

import "context"

// ContactExtractRequest is the input to the AI-assisted fallback extractor.
type ContactExtractRequest struct {
	CompanyName string
	Website     string

	// Content is page content, typically Markdown or plain text. The
	// implementation truncates it to its own input budget.
	Content string
}

// ContactExtractor extracts contact details from page content using a
// generative model when deterministic extraction has come up empty.
//
// Implementations must re-validate everything the model returns with the
// same deterministic validators used for regular extraction - the model's
// output is a candidate, never an authority. Call failures (network, quota,
// malformed responses) yield an empty Contact and a nil error: the fallback
// never fails louder than "no candidate found".
type ContactExtractor interface {
	ExtractContact(ctx context.Context, req ContactExtractRequest) (Contact, error)
}

// NameExtractor extracts company names from document text (e.g. text pulled
// out of an uploaded PDF). Results are deduplicated and sorted so repeated
// runs over the same text produce identical lists.
type NameExtractor interface {
	ExtractCompanyNames(ctx context.Context, documentText string) ([]string, error)
}
