package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/jsimek/newsgrab"
	"golang.org/x/time/rate"
)

var _ newsgrab.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter implements the politeness throttle as a per-domain
// token bucket: one request per interval per domain, no bursting.
// Requests to different domains do not delay each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter that allows one request per
// interval to each domain. A non-positive interval disables throttling.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait
// completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
