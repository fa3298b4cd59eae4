package mock

import (
	"context"

	"github.com/jsimek/newsgrab"
)

var _ newsgrab.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of newsgrab.ArticleStore.
type ArticleStore struct {
	AddFn      func(article *newsgrab.Article) bool
	LenFn      func() int
	ArticlesFn func() []*newsgrab.Article
	FlushFn    func() error
}

func (s *ArticleStore) Add(article *newsgrab.Article) bool { return s.AddFn(article) }

func (s *ArticleStore) Len() int { return s.LenFn() }

func (s *ArticleStore) Articles() []*newsgrab.Article { return s.ArticlesFn() }

func (s *ArticleStore) Flush() error { return s.FlushFn() }

var _ newsgrab.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsgrab.ArticleService.
type ArticleService struct {
	CreateArticleFn    func(ctx context.Context, article *newsgrab.Article) error
	FindArticleByURLFn func(ctx context.Context, url string) (*newsgrab.Article, error)
	FindArticlesFn     func(ctx context.Context, filter newsgrab.ArticleFilter) ([]*newsgrab.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsgrab.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByURL(ctx context.Context, url string) (*newsgrab.Article, error) {
	return s.FindArticleByURLFn(ctx, url)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsgrab.ArticleFilter) ([]*newsgrab.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}
