package newsgrab

import (
	"context"
	"time"
)

// Sentinel values for text fields whose extraction fallback chain was
// exhausted. They are distinct from the empty string so that callers
// can tell "extracted empty" apart from "extraction failed".
const (
	TitleNotFound    = "title not found"
	CategoryNotFound = "category not found"
	ContentNotFound  = "content not found"
)

// Article is the structured result of extracting fields from one page.
// The JSON field names are the persisted output format.
type Article struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	CommentsCount int    `json:"commentsCount"`
	ImagesCount   int    `json:"imagesCount"`
	Content       string `json:"content"`

	// PublishedAt falls back to the crawl time when the page carries no
	// parseable date; callers must treat it as best-effort.
	PublishedAt time.Time `json:"publishedAt"`

	SourceHost  string    `json:"sourceHost"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.CommentsCount < 0 {
		return Errorf(EINVALID, "article comments count must be non-negative")
	}
	if a.ImagesCount < 0 {
		return Errorf(EINVALID, "article images count must be non-negative")
	}
	return nil
}

// ArticleExtractor builds an Article from the HTML of a fetched page.
// Field extraction is best-effort: a field whose fallback chain is
// exhausted gets its sentinel or default value, never an error.
type ArticleExtractor interface {
	// Extract returns an error only when the HTML or URL cannot be
	// parsed at all.
	Extract(url string, html string) (*Article, error)
}

// ArticleStore holds the deduplicated in-memory collection of extracted
// articles and persists it at checkpoints and on shutdown.
type ArticleStore interface {
	// Add inserts the article unless one with the same URL is already
	// stored (first write wins). Returns true if the article was added.
	Add(article *Article) bool

	// Len returns the number of stored articles.
	Len() int

	// Articles returns a snapshot of the stored collection.
	Articles() []*Article

	// Flush forces a checkpoint of the full collection to durable
	// storage. Called unconditionally at crawl termination.
	Flush() error
}

// ArticleService represents a service for managing archived articles.
type ArticleService interface {
	// CreateArticle archives a new article.
	// Returns ECONFLICT if an article with the same URL exists.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByURL retrieves an article by its URL.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByURL(ctx context.Context, url string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	URL        *string `json:"url"`
	SourceHost *string `json:"sourceHost"`
	Category   *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
