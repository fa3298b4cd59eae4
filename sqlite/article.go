package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jsimek/newsgrab"
)

// Compile-time interface verification.
var _ newsgrab.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsgrab.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle archives a new article. The article URL is the natural
// key; archiving the same URL twice returns ECONFLICT.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsgrab.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE url = ?)", article.URL,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return newsgrab.Errorf(newsgrab.ECONFLICT, "article already archived: %s", article.URL)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, url, title, category, comments_count, images_count, content, published_at, source_host, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), article.URL, article.Title, article.Category,
		article.CommentsCount, article.ImagesCount, article.Content,
		article.PublishedAt.UTC().Format(time.RFC3339),
		article.SourceHost, article.ContentHash,
		article.FetchedAt.UTC().Format(time.RFC3339))

	return err
}

// FindArticleByURL retrieves an article by its URL.
func (s *ArticleService) FindArticleByURL(ctx context.Context, url string) (*newsgrab.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT url, title, category, comments_count, images_count, content, published_at, source_host, content_hash, fetched_at
		FROM articles
		WHERE url = ?
	`, url)

	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, newsgrab.Errorf(newsgrab.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsgrab.ArticleFilter) ([]*newsgrab.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT url, title, category, comments_count, images_count, content, published_at, source_host, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.SourceHost != nil {
		query.WriteString(" AND source_host = ?")
		args = append(args, *filter.SourceHost)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY published_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsgrab.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanArticle.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*newsgrab.Article, error) {
	var article newsgrab.Article
	var publishedAt, fetchedAt string

	if err := row.Scan(&article.URL, &article.Title, &article.Category,
		&article.CommentsCount, &article.ImagesCount, &article.Content,
		&publishedAt, &article.SourceHost, &article.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if article.PublishedAt, err = parseRFC3339(publishedAt, "published_at"); err != nil {
		return nil, err
	}
	if article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &article, nil
}
