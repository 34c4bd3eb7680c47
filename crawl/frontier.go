package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/bloom"
)

// Compile-time interface verification.
var _ contactfind.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with priority queue and Bloom filter
// deduplication. Each strategy run creates its own Frontier so that candidate
// contact pages for one company are fetched highest-priority-first and never
// twice. It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *leadHeap
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &leadHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a lead to the frontier.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(lead contactfind.PageLead) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Strip fragment from URL for deduplication
	url := lead.URL
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	// Store the URL without fragment
	lead.URL = url
	heap.Push(f.queue, lead)
	return true
}

// Pop returns the next lead by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (contactfind.PageLead, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return contactfind.PageLead{}, false
	}
	lead, _ := heap.Pop(f.queue).(contactfind.PageLead)
	return lead, true
}

// Len returns the number of leads in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := rawURL
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}
	return f.seen.Test(url)
}

// leadHeap implements heap.Interface for PageLead priority queue.
// Higher priority leads are popped first.
type leadHeap []contactfind.PageLead

func (h leadHeap) Len() int { return len(h) }

// Less returns true if i has higher priority than j (max-heap).
func (h leadHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h leadHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *leadHeap) Push(x any) {
	lead, _ := x.(contactfind.PageLead)
	*h = append(*h, lead)
}

func (h *leadHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
