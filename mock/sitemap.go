package mock

import (
	"context"

	"github.com/jsimek/newsgrab"
)

var _ newsgrab.SitemapSeeder = (*SitemapSeeder)(nil)

// SitemapSeeder is a mock implementation of newsgrab.SitemapSeeder.
type SitemapSeeder struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *SitemapSeeder) DiscoverURLs(ctx context.Context, siteURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL)
}
