package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsimek/newsgrab/crawl"
	"github.com/jsimek/newsgrab/fs"
	"github.com/jsimek/newsgrab/goquery"
	newsgrabhttp "github.com/jsimek/newsgrab/http"
	newsgrabzap "github.com/jsimek/newsgrab/zap"
)

// bloomFPRate is the frontier's accepted false positive rate. False
// positives only cost an exact set lookup, so a small filter is fine.
const bloomFPRate = 0.01

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if c.Output != "" {
		cfg.OutputFile = c.Output
	}
	if c.MaxPages > 0 {
		cfg.MaxPages = c.MaxPages
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}

	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	classifier, err := crawl.NewClassifier(cfg.AllowedDomains, cfg.ArticlePatterns, cfg.SkipExtensions)
	if err != nil {
		return err
	}

	fetcher := newsgrabzap.NewLoggingFetcher(
		newsgrabhttp.NewFetcher(
			newsgrabhttp.WithTimeout(cfg.RequestTimeout),
			newsgrabhttp.WithUserAgent(cfg.UserAgent),
		),
		deps.Logger,
	)
	defer fetcher.Close()

	frontier := crawl.NewFrontier(uint(cfg.MaxPages), bloomFPRate)
	frontier.Seed(cfg.Seeds)

	if c.Sitemap {
		seeder := newsgrabzap.NewLoggingSitemapSeeder(deps.Sitemaps, deps.Logger)
		for _, seed := range cfg.Seeds {
			urls, err := seeder.DiscoverURLs(deps.Ctx, seed)
			if err != nil {
				// Sitemap seeding is an optimization; a site without one
				// still gets crawled from its seed URL.
				continue
			}
			accepted := urls[:0:0]
			for _, u := range urls {
				if classifier.IsArticleURL(u) {
					accepted = append(accepted, u)
				}
			}
			frontier.Offer(accepted)
		}
	}

	store := fs.NewStore(cfg.OutputFile,
		fs.WithBatchSize(cfg.BatchSize),
		fs.WithLogger(deps.Logger),
	)

	crawler := &crawl.Crawler{
		Fetcher:    fetcher,
		Extractor:  goquery.NewExtractor(),
		Links:      goquery.NewLinkExtractor(),
		Classifier: classifier,
		Frontier:   frontier,
		Store:      store,
		Limiter:    crawl.NewDomainLimiter(cfg.RequestDelay),
		Logger:     deps.Logger,
		MaxPages:   cfg.MaxPages,
		Workers:    cfg.Workers,
	}

	result, err := crawler.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl finished (%s)\n", result.Reason)
	fmt.Fprintf(deps.Stdout, "  visited:    %d\n", result.Visited)
	fmt.Fprintf(deps.Stdout, "  saved:      %d\n", result.Saved)
	fmt.Fprintf(deps.Stdout, "  failed:     %d\n", result.Failed)
	fmt.Fprintf(deps.Stdout, "  discovered: %d\n", result.Discovered)
	fmt.Fprintf(deps.Stdout, "  output:     %s\n", cfg.OutputFile)

	return nil
}
