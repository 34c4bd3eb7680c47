package contactfind

import "strings"

// SimilarityScore returns the Jaccard index over the whitespace-tokenized,
// lowercased word sets of two company names. Returns 0 if either set is
// empty.
func SimilarityScore(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

// NamesAreSimilar reports whether two company names plausibly refer to the
// same company: after lowercasing and removing spaces, one contains the
// other, or either name's first-5-character prefix occurs inside the other.
func NamesAreSimilar(a, b string) bool {
	compactA := strings.ReplaceAll(strings.ToLower(a), " ", "")
	compactB := strings.ReplaceAll(strings.ToLower(b), " ", "")
	if compactA == "" || compactB == "" {
		return false
	}

	if strings.Contains(compactA, compactB) || strings.Contains(compactB, compactA) {
		return true
	}

	prefixA := compactA
	if len(prefixA) > 5 {
		prefixA = prefixA[:5]
	}
	prefixB := compactB
	if len(prefixB) > 5 {
		prefixB = prefixB[:5]
	}
	return strings.Contains(compactB, prefixA) || strings.Contains(compactA, prefixB)
}

func wordSet(s string) map[string]bool {
	words := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
