package contactfind

import "strings"

// contactFieldWords are the indicator words required alongside a body-only
// "contact"/"about" mention before a page is classified as a contact page.
var contactFieldWords = []string{"email", "phone", "call"}

// IsLikelyContactPage reports whether a fetched page is likely a contact or
// about page. The URL path and title are trusted on their own; a body-text
// match additionally requires an email/phone/call indicator word, which
// filters out pages that merely mention "contact" in passing.
func IsLikelyContactPage(url, title, bodyText string) bool {
	url = strings.ToLower(url)
	title = strings.ToLower(title)
	if strings.Contains(url, "contact") || strings.Contains(url, "about") {
		return true
	}
	if strings.Contains(title, "contact") || strings.Contains(title, "about") {
		return true
	}

	body := strings.ToLower(bodyText)
	if !strings.Contains(body, "contact") && !strings.Contains(body, "about") {
		return false
	}
	for _, w := range contactFieldWords {
		if strings.Contains(body, w) {
			return true
		}
	}
	return false
}
