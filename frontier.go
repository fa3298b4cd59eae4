package newsgrab

import "context"

// URLFrontier owns the crawl queue and the visited set. All enqueue and
// dequeue operations go through it, so no URL is processed twice.
type URLFrontier interface {
	// Seed adds start URLs to the queue unconditionally; the caller is
	// expected to have filtered them for scope already.
	Seed(urls []string)

	// Offer adds each URL to the queue unless it has been visited or is
	// already queued. Returns the number of URLs accepted. This is the
	// sole dedup checkpoint for newly discovered links.
	Offer(urls []string) int

	// TakeNext removes and returns the next URL to fetch.
	// Returns false when the queue is exhausted.
	TakeNext() (string, bool)

	// MarkVisited idempotently records that a URL has been fetched,
	// whether the fetch succeeded or failed.
	MarkVisited(url string)

	// Visited returns true if the URL has been fetched.
	Visited(url string) bool

	// VisitedCount returns the number of fetched URLs.
	VisitedCount() int

	// PendingCount returns the number of queued URLs.
	PendingCount() int
}

// DomainLimiter provides per-domain rate limiting: the politeness
// throttle between consecutive fetches against the same host.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
