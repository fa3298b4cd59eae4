package zap

import (
	"context"
	"time"

	"github.com/jsimek/newsgrab"
	"go.uber.org/zap"
)

// Ensure LoggingSitemapSeeder implements newsgrab.SitemapSeeder.
var _ newsgrab.SitemapSeeder = (*LoggingSitemapSeeder)(nil)

// LoggingSitemapSeeder wraps a SitemapSeeder with discovery logging.
type LoggingSitemapSeeder struct {
	next   newsgrab.SitemapSeeder
	logger *zap.Logger
}

// NewLoggingSitemapSeeder creates a new LoggingSitemapSeeder.
func NewLoggingSitemapSeeder(next newsgrab.SitemapSeeder, logger *zap.Logger) *LoggingSitemapSeeder {
	return &LoggingSitemapSeeder{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped seeder and logs how many URLs
// each site contributed.
func (s *LoggingSitemapSeeder) DiscoverURLs(ctx context.Context, siteURL string) ([]string, error) {
	begin := time.Now()
	urls, err := s.next.DiscoverURLs(ctx, siteURL)
	if err != nil {
		s.logger.Warn("sitemap discovery failed",
			zap.String("site", siteURL),
			zap.Duration("duration", time.Since(begin)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sitemap discovery",
		zap.String("site", siteURL),
		zap.Int("urls", len(urls)),
		zap.Duration("duration", time.Since(begin)),
	)
	return urls, nil
}
