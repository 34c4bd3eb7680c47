// Package gemini implements the AI-assisted extractors using Google Gemini:
// the contact-extraction fallback invoked when deterministic extraction comes
// up empty, and company-name extraction from document text.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/contactfind/contactfind"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxContentBytes caps how much page content is sent per extraction call.
const maxContentBytes = 20000

// Ensure Extractor implements contactfind.ContactExtractor at compile time.
var _ contactfind.ContactExtractor = (*Extractor)(nil)

// Extractor implements contactfind.ContactExtractor using Google Gemini.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractContact asks the model for the company's email and phone from page
// content. Model output is a candidate only: every returned value passes
// through the same deterministic validators as regular extraction, and any
// call failure yields an empty Contact with a nil error.
func (e *Extractor) ExtractContact(ctx context.Context, req contactfind.ContactExtractRequest) (contactfind.Contact, error) {
	if e.client == nil || strings.TrimSpace(req.Content) == "" {
		return contactfind.Contact{}, nil
	}

	prompt := BuildContactPrompt(req)
	config := BuildContactConfig()

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil || result == nil {
		return contactfind.Contact{}, nil
	}

	return ParseContactResponse(result.Text()), nil
}

// BuildContactConfig returns the GenerateContentConfig for contact extraction.
func BuildContactConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract contact details from web page content. " +
					"You only report values that literally appear in the content, possibly obfuscated. " +
					"You never invent or guess values.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildContactPrompt builds the extraction prompt. It restates the validation
// rules so the model's answer has a chance of passing re-validation, and
// demands a single JSON object with empty-string defaults.
func BuildContactPrompt(req contactfind.ContactExtractRequest) string {
	content := req.Content
	if len(content) > maxContentBytes {
		content = content[:maxContentBytes]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Company: %s\n", req.CompanyName)
	if req.Website != "" {
		fmt.Fprintf(&sb, "Known website: %s\n", req.Website)
	}
	sb.WriteString("\nFind the company's contact email address and phone number in the page content below.\n\n")
	sb.WriteString("Rules for the email:\n")
	sb.WriteString("- It must be a real address appearing in the content. De-obfuscate forms like \"name [at] domain [dot] com\" into name@domain.com.\n")
	sb.WriteString("- Never return placeholder addresses such as test@test.com, info@example.com or anything on example.com/yourdomain.com.\n")
	sb.WriteString("Rules for the phone:\n")
	sb.WriteString("- Return it in international format starting with +, digits only after the +.\n")
	sb.WriteString("- It must have 10 to 15 digits. Never return sequential or repeated placeholder digits.\n")
	sb.WriteString("- If the content shows a 10-digit Indian number starting 6-9 with no country code, prefix +91.\n")
	sb.WriteString("\nIf a field is not present in the content, use an empty string. Do not invent values.\n")
	sb.WriteString("Answer with exactly one JSON object: {\"email\": \"...\", \"phone\": \"...\"}\n\n")
	sb.WriteString("<content>\n")
	sb.WriteString(content)
	sb.WriteString("\n</content>")
	return sb.String()
}

var (
	emailFieldPattern = regexp.MustCompile(`"email"\s*:\s*"([^"]*)"`)
	phoneFieldPattern = regexp.MustCompile(`"phone"\s*:\s*"([^"]*)"`)
)

// ParseContactResponse parses a model answer: strict JSON first, then
// pattern extraction of the two fields from the raw text. Values are
// re-validated with the deterministic validators; anything that fails comes
// back empty.
func ParseContactResponse(raw string) contactfind.Contact {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		if m := emailFieldPattern.FindStringSubmatch(raw); m != nil {
			parsed.Email = m[1]
		}
		if m := phoneFieldPattern.FindStringSubmatch(raw); m != nil {
			parsed.Phone = m[1]
		}
	}

	var contact contactfind.Contact

	email := contactfind.NormalizeObfuscatedEmail(strings.TrimSpace(parsed.Email))
	if contactfind.ValidEmail(email) {
		contact.Email = email
	}

	phone := contactfind.CleanPhone(strings.TrimSpace(parsed.Phone))
	if contactfind.ValidPhone(phone) {
		contact.Phone = phone
	}

	return contact
}
