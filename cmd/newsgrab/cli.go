package main

import (
	"context"
	"io"

	"github.com/jsimek/newsgrab"
	"github.com/jsimek/newsgrab/sqlite"
	"go.uber.org/zap"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
	DB       *sqlite.DB
	Articles newsgrab.ArticleService
	Sitemaps newsgrab.SitemapSeeder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl news sites and collect articles"`
	Archive ArchiveCmd `cmd:"" help:"Import a crawl output file into the article archive"`
	List    ListCmd    `cmd:"" help:"List archived articles"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Config   string `short:"c" type:"path" help:"Path to a YAML config file"`
	Output   string `short:"o" help:"Output JSON file (overrides config)"`
	MaxPages int    `help:"Page cap (overrides config)"`
	Workers  int    `short:"w" help:"Fetch worker pool size (overrides config)"`
	Sitemap  bool   `help:"Seed the frontier from site sitemaps in addition to seed URLs"`
}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	Input string `arg:"" type:"existingfile" help:"Crawl output JSON file to import"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Host     string `help:"Filter by source host"`
	Category string `help:"Filter by category"`
	Limit    int    `default:"20" help:"Maximum number of articles to show"`
	Offset   int    `help:"Number of articles to skip"`
}
