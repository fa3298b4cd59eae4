// Package zap provides logging decorators for newsgrab services.
package zap

import (
	"context"
	"time"

	"github.com/jsimek/newsgrab"
	"go.uber.org/zap"
)

// Ensure LoggingFetcher implements newsgrab.Fetcher.
var _ newsgrab.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   newsgrab.Fetcher
	logger *zap.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newsgrab.Fetcher, logger *zap.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome with
// timing. Failures log the error code so throttling and availability
// problems are easy to spot in the output.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			zap.String("url", url),
			zap.String("code", newsgrab.ErrorCode(err)),
			zap.Duration("duration", time.Since(begin)),
			zap.Error(err),
		)
		return "", err
	}

	f.logger.Debug("fetch",
		zap.String("url", url),
		zap.Int("bytes", len(html)),
		zap.Duration("duration", time.Since(begin)),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
