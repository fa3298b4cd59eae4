package mock

import (
	"context"

	"github.com/jsimek/newsgrab"
)

var _ newsgrab.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of newsgrab.URLFrontier.
type URLFrontier struct {
	SeedFn         func(urls []string)
	OfferFn        func(urls []string) int
	TakeNextFn     func() (string, bool)
	MarkVisitedFn  func(url string)
	VisitedFn      func(url string) bool
	VisitedCountFn func() int
	PendingCountFn func() int
}

func (f *URLFrontier) Seed(urls []string) { f.SeedFn(urls) }

func (f *URLFrontier) Offer(urls []string) int { return f.OfferFn(urls) }

func (f *URLFrontier) TakeNext() (string, bool) { return f.TakeNextFn() }

func (f *URLFrontier) MarkVisited(url string) { f.MarkVisitedFn(url) }

func (f *URLFrontier) Visited(url string) bool { return f.VisitedFn(url) }

func (f *URLFrontier) VisitedCount() int { return f.VisitedCountFn() }

func (f *URLFrontier) PendingCount() int { return f.PendingCountFn() }

var _ newsgrab.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsgrab.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
