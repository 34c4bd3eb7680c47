package contactfind

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// CompanyQuery is the input unit for contact resolution: a company name and
// a best-guess website URL derived from it. Immutable once created.
type CompanyQuery struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// NewCompanyQuery creates a query for the given company name with a guessed
// website URL. The name must be non-empty.
func NewCompanyQuery(name string) (CompanyQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CompanyQuery{}, Errorf(EINVALID, "company name required")
	}
	return CompanyQuery{Name: name, Website: GuessWebsiteURL(name)}, nil
}

// FieldKind identifies which contact field a candidate value targets.
type FieldKind string

// Field kinds for Candidate.
const (
	FieldEmail FieldKind = "email"
	FieldPhone FieldKind = "phone"
)

// Candidate is an unvalidated extracted value proposed by an extractor,
// pending acceptance by the aggregator. Candidates are ephemeral and never
// serialized.
type Candidate struct {
	Kind    FieldKind
	Value   string
	Context string // where the value was found, e.g. "mailto link", "footer"
}

// Contact holds a resolved email/phone pair. Either field may be empty.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ContactRecord is the per-company aggregation target. Provenance is tracked
// per field so that the source of the email survives a later phone discovery.
type ContactRecord struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Website     string    `json:"website"`
	Email       string    `json:"email"`
	EmailSource string    `json:"emailSource"`
	Phone       string    `json:"phone"`
	PhoneSource string    `json:"phoneSource"`
	Saved       bool      `json:"saved"`
	ResolvedAt  time.Time `json:"resolvedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ContactRecord) Validate() error {
	if r.CompanyName == "" {
		return Errorf(EINVALID, "contact record company name required")
	}
	return nil
}

// Complete reports whether both email and phone have been resolved.
func (r *ContactRecord) Complete() bool {
	return r.Email != "" && r.Phone != ""
}

// Source returns the label of whichever field was most recently attributed,
// preferring the email source when both are set.
func (r *ContactRecord) Source() string {
	if r.EmailSource != "" {
		return r.EmailSource
	}
	return r.PhoneSource
}

// ContactService persists resolved contact records and answers lookups by
// company name, so a re-run can skip companies that are already known.
type ContactService interface {
	// UpsertContacts inserts or updates records, attributed to extractedBy.
	UpsertContacts(ctx context.Context, records []*ContactRecord, extractedBy string) error

	// FindContactsByName returns known records keyed by company name.
	// Names with no stored record are absent from the map.
	FindContactsByName(ctx context.Context, names []string) (map[string]*ContactRecord, error)
}

var nonSlugChars = regexp.MustCompile(`[^\w\s-]`)

// SlugifyName lowercases a company name, strips punctuation, and joins words
// with the given separator. Used for URL guessing and profile slug variants.
func SlugifyName(name, sep string) string {
	cleaned := nonSlugChars.ReplaceAllString(strings.ToLower(name), "")
	return strings.Join(strings.Fields(cleaned), sep)
}

// GuessWebsiteURL derives a best-guess homepage URL from a company name by
// slugifying it and appending the default .com TLD.
func GuessWebsiteURL(name string) string {
	slug := SlugifyName(name, "-")
	if slug == "" {
		return ""
	}
	return "http://www." + slug + ".com"
}

// NameVariants returns profile slug variants for a company name: hyphenated,
// concatenated, and the acronym of its words. Empty variants are omitted and
// duplicates removed, preserving order.
func NameVariants(name string) []string {
	words := strings.Fields(strings.ToLower(nonSlugChars.ReplaceAllString(name, "")))
	if len(words) == 0 {
		return nil
	}

	var acronym strings.Builder
	for _, w := range words {
		acronym.WriteByte(w[0])
	}

	variants := []string{
		strings.Join(words, "-"),
		strings.Join(words, ""),
		acronym.String(),
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
