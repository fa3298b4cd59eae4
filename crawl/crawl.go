// Package crawl provides the crawl engine: the URL frontier, the URL
// classifier, the politeness throttle and the orchestrator that drives
// fetching, extraction and storage.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/jsimek/newsgrab"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// drainPollInterval is how often the dispatcher re-checks an empty
// queue while workers are still in flight and may discover more links.
const drainPollInterval = 10 * time.Millisecond

// StopReason identifies why a crawl terminated.
type StopReason string

// Crawl termination reasons.
const (
	StopExhausted StopReason = "frontier_exhausted"
	StopPageCap   StopReason = "page_cap_reached"
	StopCanceled  StopReason = "canceled"
)

// Crawler orchestrates the crawl loop: it pops URLs from the frontier,
// fetches and extracts them, stores the resulting articles and feeds
// accepted links back to the frontier.
type Crawler struct {
	Fetcher    newsgrab.Fetcher
	Extractor  newsgrab.ArticleExtractor
	Links      newsgrab.LinkExtractor
	Classifier newsgrab.URLClassifier
	Frontier   newsgrab.URLFrontier
	Store      newsgrab.ArticleStore
	Limiter    newsgrab.DomainLimiter
	Logger     *zap.Logger

	// MaxPages caps the number of visited URLs.
	// Defaults to newsgrab.DefaultMaxPages.
	MaxPages int

	// Workers is the fetch worker pool size. Defaults to 1, the
	// single-threaded baseline.
	Workers int
}

// Result holds the outcome of a crawl run.
type Result struct {
	Visited    int
	Saved      int
	Failed     int
	Discovered int
	Reason     StopReason
}

// counters are shared by workers during a run.
type counters struct {
	saved      atomic.Int64
	failed     atomic.Int64
	discovered atomic.Int64
}

// Run drives the crawl until the frontier is exhausted, the page cap is
// reached or the context is canceled. The store is flushed on every
// exit path, including cancellation.
func (c *Crawler) Run(ctx context.Context) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = newsgrab.DefaultMaxPages
	}
	workers := c.Workers
	if workers <= 0 {
		workers = 1
	}

	// The final flush must happen on every exit path; no collected
	// article may be lost on shutdown.
	defer func() {
		if err := c.Store.Flush(); err != nil {
			logger.Error("final flush failed", zap.Error(err))
		}
	}()

	var cnt counters
	var inflight atomic.Int64
	reason := StopExhausted

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

dispatch:
	for {
		if ctx.Err() != nil {
			reason = StopCanceled
			break
		}
		if c.Frontier.VisitedCount() >= maxPages {
			reason = StopPageCap
			break
		}

		rawURL, ok := c.Frontier.TakeNext()
		if !ok {
			if inflight.Load() == 0 {
				break
			}
			// Workers in flight may still feed the frontier.
			select {
			case <-ctx.Done():
				reason = StopCanceled
				break dispatch
			case <-time.After(drainPollInterval):
			}
			continue
		}

		inflight.Add(1)
		g.Go(func() error {
			defer inflight.Add(-1)
			c.process(gctx, rawURL, maxPages, &cnt, logger)
			return nil
		})
	}

	logger.Info("crawl draining", zap.String("reason", string(reason)))
	_ = g.Wait()

	result := &Result{
		Visited:    c.Frontier.VisitedCount(),
		Saved:      int(cnt.saved.Load()),
		Failed:     int(cnt.failed.Load()),
		Discovered: int(cnt.discovered.Load()),
		Reason:     reason,
	}
	logger.Info("crawl stopped",
		zap.String("reason", string(reason)),
		zap.Int("visited", result.Visited),
		zap.Int("saved", result.Saved),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// process fetches one URL, stores its article and offers its links.
func (c *Crawler) process(ctx context.Context, rawURL string, maxPages int, cnt *counters, logger *zap.Logger) {
	// Duplicate offers cannot survive the frontier, but a visited check
	// here keeps the invariant cheap to verify.
	if c.Frontier.Visited(rawURL) {
		return
	}

	if c.Limiter != nil {
		if host := urlHost(rawURL); host != "" {
			if err := c.Limiter.Wait(ctx, host); err != nil {
				// Canceled while throttled; the URL stays unfetched.
				return
			}
		}
	}

	html, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		// A failed fetch is never retried and never blocks progress.
		c.Frontier.MarkVisited(rawURL)
		cnt.failed.Add(1)
		logger.Warn("fetch failed",
			zap.String("url", rawURL),
			zap.String("code", newsgrab.ErrorCode(err)),
			zap.Error(err),
		)
		return
	}

	article, err := c.Extractor.Extract(rawURL, html)
	if err != nil {
		logger.Warn("extraction failed", zap.String("url", rawURL), zap.Error(err))
	} else if c.Store.Add(article) {
		cnt.saved.Add(1)
		logger.Info("article saved", zap.String("url", article.URL))
	}

	if links, err := c.Links.ExtractLinks(html, rawURL); err == nil {
		accepted := links[:0:0]
		for _, link := range links {
			if c.Classifier.IsArticleURL(link) {
				accepted = append(accepted, link)
			}
		}
		// Once the page cap is hit, in-flight workers stop feeding the
		// frontier.
		if len(accepted) > 0 && c.Frontier.VisitedCount() < maxPages {
			cnt.discovered.Add(int64(c.Frontier.Offer(accepted)))
		}
	}

	c.Frontier.MarkVisited(rawURL)
}

// urlHost extracts the host of a URL for rate limiting.
func urlHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
