package contactfind

import (
	"regexp"
	"strings"
)

// Email extraction and validation.
//
// Validation is an ordered list of named predicates over a candidate string;
// the allow/block lists below are data, so extending them never touches the
// pipeline itself.

var (
	// emailPattern matches standard local@domain.tld addresses.
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// emailExactPattern anchors emailPattern for whole-string validation.
	emailExactPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// obfuscatedEmailPattern matches de-obfuscated spellings where "@" is
	// written as [at], (at), {at} or the word "at", and the final "." as
	// [dot], (dot), {dot} or the word "dot".
	obfuscatedEmailPattern = regexp.MustCompile(
		`(?i)[a-zA-Z0-9._%+\-]+\s*(?:\[at\]|\(at\)|\{at\}|\s+at\s+)\s*[a-zA-Z0-9.\-]+\s*(?:\[dot\]|\(dot\)|\{dot\}|\s+dot\s+)\s*[a-zA-Z]{2,}`)

	obfuscatedAt  = regexp.MustCompile(`(?i)\s*(?:\[at\]|\(at\)|\{at\})\s*|\s+at\s+`)
	obfuscatedDot = regexp.MustCompile(`(?i)\s*(?:\[dot\]|\(dot\)|\{dot\})\s*|\s+dot\s+`)
	anySpace      = regexp.MustCompile(`\s+`)
)

// allowedEmailTLDs is the allow-list of common TLD suffixes a candidate
// address must end with.
var allowedEmailTLDs = []string{
	".com", ".in", ".org", ".co.in", ".net", ".edu", ".gov", ".io", ".info", ".biz",
}

// placeholderEmailFragments block well-known placeholder and template
// addresses regardless of syntactic validity.
var placeholderEmailFragments = []string{
	"example.com", "yourdomain.com", "domain.com", "email.com", "test.com",
	"someone@", "user@", "name@", "your@", "info@example", "email@", "test@",
}

// emailValidator is a named predicate over a candidate address.
type emailValidator struct {
	name  string
	valid func(email string) bool
}

// emailValidators is the validation pipeline, applied in order.
// A candidate must pass every validator to be accepted.
var emailValidators = []emailValidator{
	{"syntax", func(e string) bool { return emailExactPattern.MatchString(e) }},
	{"length", func(e string) bool { return len(e) >= 6 && len(e) <= 100 }},
	{"tld-allowlist", func(e string) bool {
		lower := strings.ToLower(e)
		for _, tld := range allowedEmailTLDs {
			if strings.HasSuffix(lower, tld) {
				return true
			}
		}
		return false
	}},
	{"placeholder-blocklist", func(e string) bool {
		lower := strings.ToLower(e)
		for _, frag := range placeholderEmailFragments {
			if strings.Contains(lower, frag) {
				return false
			}
		}
		return true
	}},
}

// ValidEmail reports whether a candidate passes the full validation pipeline.
func ValidEmail(email string) bool {
	for _, v := range emailValidators {
		if !v.valid(email) {
			return false
		}
	}
	return true
}

// NormalizeObfuscatedEmail converts an obfuscated spelling to standard form
// and validates the result. Returns the empty string if the cleaned value is
// not a syntactically valid address.
func NormalizeObfuscatedEmail(raw string) string {
	if raw == "" {
		return ""
	}
	email := obfuscatedAt.ReplaceAllString(raw, "@")
	email = obfuscatedDot.ReplaceAllString(email, ".")
	email = anySpace.ReplaceAllString(email, "")
	if !emailExactPattern.MatchString(email) {
		return ""
	}
	return email
}

// ExtractEmails returns all valid email addresses found in text, both
// standard and de-obfuscated forms, in first-occurrence order with
// duplicates removed.
//
// Ranking across extraction contexts (mailto: links outrank plain text) is
// the responsibility of the page-level extractor that collects candidates
// from multiple sections; within plain text no frequency ranking is applied.
func ExtractEmails(text string) []string {
	if text == "" {
		return nil
	}

	var emails []string
	seen := make(map[string]bool)
	add := func(email string) {
		if email == "" || seen[email] {
			return
		}
		if !ValidEmail(email) {
			return
		}
		seen[email] = true
		emails = append(emails, email)
	}

	for _, m := range emailPattern.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range obfuscatedEmailPattern.FindAllString(text, -1) {
		add(NormalizeObfuscatedEmail(m))
	}

	return emails
}

// EmailFromMailto extracts and validates the address from a mailto: href.
// Query parameters (e.g. ?subject=...) are dropped. Returns the empty string
// for invalid addresses.
func EmailFromMailto(href string) string {
	email := strings.TrimPrefix(strings.TrimSpace(href), "mailto:")
	if idx := strings.Index(email, "?"); idx != -1 {
		email = email[:idx]
	}
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return ""
	}
	return email
}
