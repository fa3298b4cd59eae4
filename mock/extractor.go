package mock

import "github.com/jsimek/newsgrab"

var _ newsgrab.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsgrab.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(url string, html string) (*newsgrab.Article, error)
}

func (e *ArticleExtractor) Extract(url string, html string) (*newsgrab.Article, error) {
	return e.ExtractFn(url, html)
}

var _ newsgrab.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of newsgrab.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ newsgrab.URLClassifier = (*URLClassifier)(nil)

// URLClassifier is a mock implementation of newsgrab.URLClassifier.
type URLClassifier struct {
	IsArticleURLFn func(url string) bool
}

func (c *URLClassifier) IsArticleURL(url string) bool {
	return c.IsArticleURLFn(url)
}
