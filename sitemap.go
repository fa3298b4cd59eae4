package newsgrab

import "context"

// SitemapSeeder discovers URLs from a site's sitemaps. It is used to
// seed the frontier beyond the configured start pages.
type SitemapSeeder interface {
	// DiscoverURLs finds all URLs advertised by the site's sitemaps,
	// looking at robots.txt Sitemap directives first and falling back
	// to /sitemap.xml. Returns an empty slice if no sitemap is found.
	DiscoverURLs(ctx context.Context, siteURL string) ([]string, error)
}
