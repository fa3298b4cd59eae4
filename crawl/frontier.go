package crawl

import (
	"strings"
	"sync"

	"github.com/jsimek/newsgrab"
	"github.com/jsimek/newsgrab/bloom"
)

// Compile-time interface verification.
var _ newsgrab.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with a FIFO queue, exact
// pending and visited sets, and a Bloom filter fast path over every URL
// ever accepted. The exact sets stay authoritative, so Bloom false
// positives cannot drop a URL; a negative Bloom test just skips the set
// lookups for the common brand-new-URL case.
//
// FIFO order gives a predictable breadth-first crawl. A taken URL stays
// in the pending set until MarkVisited, so duplicate offers of an
// in-flight URL are rejected; this is the at-most-once guard when
// multiple workers consume the frontier. Safe for concurrent use.
type Frontier struct {
	mu      sync.Mutex
	offered *bloom.Filter
	queue   []string
	pending map[string]struct{}
	visited map[string]struct{}
}

// NewFrontier creates a new Frontier sized for n expected URLs with the
// given Bloom false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		offered: bloom.NewFilter(n, fpRate),
		pending: make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}
}

// Seed adds start URLs to the queue unconditionally. Within the queue
// itself URLs are still held at most once.
func (f *Frontier) Seed(urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range urls {
		u = stripFragment(u)
		if _, ok := f.pending[u]; ok {
			continue
		}
		f.enqueue(u)
	}
}

// Offer adds each URL to the queue unless it has been visited or is
// already pending. Returns the number of URLs accepted. Re-offering a
// not-yet-visited URL is a harmless no-op.
func (f *Frontier) Offer(urls []string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	accepted := 0
	for _, u := range urls {
		u = stripFragment(u)
		if f.offered.Test(u) {
			// Maybe seen before; consult the authoritative sets.
			if _, ok := f.visited[u]; ok {
				continue
			}
			if _, ok := f.pending[u]; ok {
				continue
			}
		}
		f.enqueue(u)
		accepted++
	}
	return accepted
}

// enqueue must be called with the mutex held.
func (f *Frontier) enqueue(u string) {
	f.offered.Add(u)
	f.pending[u] = struct{}{}
	f.queue = append(f.queue, u)
}

// TakeNext removes and returns the oldest queued URL. The URL remains
// in the pending set until MarkVisited. Returns false when the queue is
// empty.
func (f *Frontier) TakeNext() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.queue) > 0 {
		u := f.queue[0]
		f.queue = f.queue[1:]
		if _, ok := f.visited[u]; ok {
			continue
		}
		return u, true
	}
	return "", false
}

// MarkVisited moves a URL from pending to visited. Idempotent.
func (f *Frontier) MarkVisited(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := stripFragment(url)
	delete(f.pending, u)
	f.visited[u] = struct{}{}
}

// Visited returns true if the URL has been marked visited.
func (f *Frontier) Visited(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.visited[stripFragment(url)]
	return ok
}

// VisitedCount returns the number of visited URLs.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}

// PendingCount returns the number of queued URLs.
func (f *Frontier) PendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// stripFragment removes the URL fragment before deduplication; URLs
// differing only by fragment are the same page.
func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
