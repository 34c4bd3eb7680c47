package contactfind

import (
	"regexp"
	"sort"
	"strings"
)

// Phone extraction and validation.
//
// Only numbers whose textual form begins with "+" are accepted; dropping
// local-format numbers eliminates the postal codes, years, and order numbers
// that otherwise dominate free-text matches.

var (
	// phonePattern matches "+" followed by 7-20 characters drawn from
	// digits, spaces, hyphens, and parentheses.
	phonePattern = regexp.MustCompile(`\+[\d\s\-()]{7,20}`)

	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
	nonDigits       = regexp.MustCompile(`\D`)
)

// phoneIndicators are keywords whose proximity marks a number as a likely
// contact number.
var phoneIndicators = []string{
	"phone", "mobile", "cell", "call", "tel", "telephone", "contact", "dial", "whatsapp",
}

// Proximity window around an indicator keyword, in bytes.
const (
	indicatorWindowBefore = 30
	indicatorWindowAfter  = 50
)

const (
	digitRunAscending  = "0123456789"
	digitRunDescending = "9876543210"
)

// ValidPhone reports whether a number in "+digits..." textual form passes
// the plausibility checks: 10-15 digits after the "+", no run of 7 or more
// identical digits anywhere, and no 8-digit ascending or descending sequence
// at the start of the digits. The sequence check is anchored to the start
// because placeholder numbers (+1234567890, +9876543210) open with their
// sequence, while genuine numbers may embed one after a country code.
func ValidPhone(phone string) bool {
	if !strings.HasPrefix(phone, "+") {
		return false
	}
	digits := nonDigits.ReplaceAllString(phone[1:], "")
	if len(digits) < 10 || len(digits) > 15 {
		return false
	}
	for d := byte('0'); d <= '9'; d++ {
		if strings.Contains(digits, strings.Repeat(string(d), 7)) {
			return false
		}
	}
	for i := 0; i+8 <= len(digitRunAscending); i++ {
		if strings.HasPrefix(digits, digitRunAscending[i:i+8]) {
			return false
		}
		if strings.HasPrefix(digits, digitRunDescending[i:i+8]) {
			return false
		}
	}
	return true
}

// CleanPhone strips separators from a "+"-prefixed number and validates the
// result. Returns the canonical "+digits" form, or the empty string if the
// input does not start with "+" or fails validation.
func CleanPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return ""
	}
	cleaned := "+" + phoneSeparators.ReplaceAllString(phone[1:], "")
	if !ValidPhone(cleaned) {
		return ""
	}
	return "+" + nonDigits.ReplaceAllString(cleaned[1:], "")
}

// RepairPhone normalizes a number that may lack the "+" prefix, as tel:
// hrefs and directory listings often do. A bare 10-digit number starting
// with 6-9 is assumed Indian and prefixed with +91, an 11-digit national
// form with a leading trunk "0" (e.g. "099229 93972") drops the trunk digit
// and gets +91, a leading "00" becomes "+", and anything else gets a "+"
// prepended before validation. Returns the canonical "+digits" form, or the
// empty string if the repaired number fails validation.
func RepairPhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return ""
	}
	if !strings.HasPrefix(phone, "+") {
		digits := nonDigits.ReplaceAllString(phone, "")
		switch {
		case len(digits) == 10 && digits[0] >= '6' && digits[0] <= '9':
			phone = "+91" + digits
		case len(digits) == 11 && digits[0] == '0' && digits[1] >= '6' && digits[1] <= '9':
			phone = "+91" + digits[1:]
		case strings.HasPrefix(digits, "00"):
			phone = "+" + digits[2:]
		default:
			phone = "+" + digits
		}
	}
	return CleanPhone(phone)
}

// PhoneFromTel extracts and normalizes the number from a tel: href.
func PhoneFromTel(href string) string {
	return RepairPhone(strings.TrimPrefix(strings.TrimSpace(href), "tel:"))
}

// ExtractPhones returns all valid phone numbers found in text in canonical
// "+digits" form.
//
// Numbers found near a contact-indicator keyword (within the proximity
// window) outrank numbers with no such context; within a rank, longer
// numbers come first since they are more likely to carry a country or area
// code.
func ExtractPhones(text string) []string {
	if text == "" {
		return nil
	}

	highConfidence := phonesNearIndicators(text)

	var all []string
	seen := make(map[string]bool)
	for _, p := range highConfidence {
		if !seen[p] {
			seen[p] = true
			all = append(all, p)
		}
	}
	for _, m := range phonePattern.FindAllString(text, -1) {
		cleaned := CleanPhone(m)
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		all = append(all, cleaned)
	}

	// Stable sort within the two confidence bands: longer numbers first.
	sortByLength(all[:len(highConfidence)])
	sortByLength(all[len(highConfidence):])

	return all
}

// phonesNearIndicators extracts numbers found close to a contact keyword.
func phonesNearIndicators(text string) []string {
	lower := strings.ToLower(text)

	var phones []string
	seen := make(map[string]bool)
	for _, indicator := range phoneIndicators {
		offset := 0
		for {
			pos := strings.Index(lower[offset:], indicator)
			if pos == -1 {
				break
			}
			pos += offset
			start := max(0, pos-indicatorWindowBefore)
			end := min(len(text), pos+len(indicator)+indicatorWindowAfter)
			for _, m := range phonePattern.FindAllString(text[start:end], -1) {
				cleaned := CleanPhone(m)
				if cleaned != "" && !seen[cleaned] {
					seen[cleaned] = true
					phones = append(phones, cleaned)
				}
			}
			offset = pos + len(indicator)
		}
	}
	return phones
}

func sortByLength(phones []string) {
	sort.SliceStable(phones, func(i, j int) bool {
		return len(phones[i]) > len(phones[j])
	})
}
