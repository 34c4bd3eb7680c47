// Package bloom provides probabilistic seen-URL tracking for the crawl
// frontier. A filter answers "was this URL already queued?" in constant
// space: false positives skip the occasional fresh page, false negatives
// never happen, so no URL is fetched twice for one company.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs that have been offered to a frontier.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether the URL may have been seen. False positives are
// possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
