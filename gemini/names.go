package gemini

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/contactfind/contactfind"
	"google.golang.org/genai"
)

// Ensure NameExtractor implements contactfind.NameExtractor at compile time.
var _ contactfind.NameExtractor = (*NameExtractor)(nil)

// NameExtractor implements contactfind.NameExtractor using Google Gemini.
type NameExtractor struct {
	client *genai.Client
}

// NewNameExtractor creates a new NameExtractor.
func NewNameExtractor(client *genai.Client) *NameExtractor {
	return &NameExtractor{client: client}
}

// ExtractCompanyNames lists the company names mentioned in document text.
// The result is deduplicated and sorted so repeated runs over the same text
// produce identical lists.
func (e *NameExtractor) ExtractCompanyNames(ctx context.Context, documentText string) ([]string, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, contactfind.Errorf(contactfind.EINVALID, "document text required")
	}

	prompt := BuildNamesPrompt(documentText)
	config := BuildNamesConfig()

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "gemini returned nil result")
	}

	return ParseNamesResponse(result.Text()), nil
}

// BuildNamesConfig returns the GenerateContentConfig for name extraction.
func BuildNamesConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You list the distinct company names mentioned in a document. " +
					"You only report names that appear in the document text.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildNamesPrompt builds the name-extraction prompt.
func BuildNamesPrompt(documentText string) string {
	var sb strings.Builder
	sb.WriteString("List every distinct company name mentioned in the document below.\n")
	sb.WriteString("Answer with exactly one JSON array of strings, e.g. [\"Acme Widgets Pvt Ltd\"].\n")
	sb.WriteString("Use each company's full name as written. Do not include duplicates or commentary.\n\n")
	sb.WriteString("<document>\n")
	sb.WriteString(documentText)
	sb.WriteString("\n</document>")
	return sb.String()
}

// ParseNamesResponse parses a model answer into a deduplicated, sorted name
// list. A strict JSON array is tried first, then line-by-line parsing of the
// raw text.
func ParseNamesResponse(raw string) []string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var names []string
	if err := json.Unmarshal([]byte(cleaned), &names); err != nil {
		for _, line := range strings.Split(cleaned, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
			line = strings.Trim(line, `",`)
			if line != "" && line != "[" && line != "]" {
				names = append(names, line)
			}
		}
	}

	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
