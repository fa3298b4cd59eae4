package goquery_test

import (
	"testing"
	"time"

	"github.com/jsimek/newsgrab"
	"github.com/jsimek/newsgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func newTestExtractor() *goquery.Extractor {
	return goquery.NewExtractor(goquery.WithClock(func() time.Time { return fixedNow }))
}

func extract(t *testing.T, html string) *newsgrab.Article {
	t.Helper()
	a, err := newTestExtractor().Extract("https://www.novinky.cz/clanek/test", html)
	require.NoError(t, err)
	return a
}

func TestExtract_TitleFallbackOrder(t *testing.T) {
	t.Parallel()

	t.Run("specific marker wins over generic heading", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body>
			<h1>Generic</h1>
			<h1 class="article-title">Specific</h1>
		</body></html>`)
		assert.Equal(t, "Specific", a.Title)
	})

	t.Run("falls back to generic heading", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body><h1>  Heading  </h1></body></html>`)
		assert.Equal(t, "Heading", a.Title)
	})

	t.Run("falls back to document title", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><head><title>Doc Title</title></head><body></body></html>`)
		assert.Equal(t, "Doc Title", a.Title)
	})

	t.Run("sentinel when chain exhausted", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body><p>no headings</p></body></html>`)
		assert.Equal(t, newsgrab.TitleNotFound, a.Title)
	})
}

func TestExtract_Category(t *testing.T) {
	t.Parallel()

	t.Run("from classed span", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body><span class="category">Domácí</span></body></html>`)
		assert.Equal(t, "Domácí", a.Category)
	})

	t.Run("from structured metadata attribute", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><head>
			<meta property="article:section" content="Zahraniční">
		</head><body></body></html>`)
		assert.Equal(t, "Zahraniční", a.Category)
	})

	t.Run("sentinel when absent", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body></body></html>`)
		assert.Equal(t, newsgrab.CategoryNotFound, a.Category)
	})
}

func TestExtract_CommentsCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want int
	}{
		{
			"strips non-digits",
			`<span class="comments-count">1,234 comments</span>`,
			1234,
		},
		{
			"plain number",
			`<div class="comments-count">42</div>`,
			42,
		},
		{
			"meta comment count",
			`<meta itemprop="commentCount" content="7">`,
			7,
		},
		{
			"no digits falls through to default",
			`<span class="comments-count">no comments yet</span>`,
			0,
		},
		{
			"digit-free candidate falls through to next rule",
			`<span class="comments-count">none</span><meta itemprop="commentCount" content="9">`,
			9,
		},
		{
			"absent defaults to zero",
			`<p>nothing here</p>`,
			0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := extract(t, "<html><body>"+tt.html+"</body></html>")
			assert.Equal(t, tt.want, a.CommentsCount)
		})
	}
}

func TestExtract_ImagesCountIsDirectCount(t *testing.T) {
	t.Parallel()

	a := extract(t, `<html><body>
		<img src="a.jpg"><div><img src="b.jpg"></div>
		<article><img src="c.jpg"></article>
	</body></html>`)
	assert.Equal(t, 3, a.ImagesCount)
}

func TestExtract_ContentJoinsTextNodesWithSpaces(t *testing.T) {
	t.Parallel()

	a := extract(t, `<html><body>
		<div class="article-content">
			<p>First paragraph.</p>
			<p>Second <em>emphasized</em> paragraph.</p>
		</div>
	</body></html>`)
	assert.Equal(t, "First paragraph. Second emphasized paragraph.", a.Content)
}

func TestExtract_ContentFallbackOrder(t *testing.T) {
	t.Parallel()

	t.Run("article tag when no classed container", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body><article>Body text</article></body></html>`)
		assert.Equal(t, "Body text", a.Content)
	})

	t.Run("sentinel when chain exhausted", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body><p>free text</p></body></html>`)
		assert.Equal(t, newsgrab.ContentNotFound, a.Content)
	})
}

func TestExtract_PublishedAt(t *testing.T) {
	t.Parallel()

	t.Run("normalizes trailing UTC zone marker", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><head>
			<meta property="article:published_time" content="2026-08-20T06:30:00Z">
		</head><body></body></html>`)
		assert.Equal(t, time.Date(2026, 8, 20, 6, 30, 0, 0, time.UTC), a.PublishedAt.UTC())
	})

	t.Run("time element datetime attribute", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body>
			<time datetime="2026-08-19T10:00:00+02:00">yesterday</time>
		</body></html>`)
		assert.Equal(t, "2026-08-19T10:00:00+02:00", a.PublishedAt.Format(time.RFC3339))
	})

	t.Run("unparseable date falls through to next candidate", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><head>
			<meta property="article:published_time" content="yesterday at noon">
			<meta name="date" content="2026-08-18">
		</head><body></body></html>`)
		assert.Equal(t, time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC), a.PublishedAt.UTC())
	})

	t.Run("falls back to crawl time when no date found", func(t *testing.T) {
		t.Parallel()

		a := extract(t, `<html><body></body></html>`)
		assert.Equal(t, fixedNow, a.PublishedAt)
	})
}

func TestExtract_SourceHostAndHash(t *testing.T) {
	t.Parallel()

	a := extract(t, `<html><body><article>text</article></body></html>`)

	assert.Equal(t, "www.novinky.cz", a.SourceHost)
	assert.NotEmpty(t, a.ContentHash)
	assert.Equal(t, fixedNow, a.FetchedAt)

	// Same content hashes identically.
	b := extract(t, `<html><body><article>text</article></body></html>`)
	assert.Equal(t, a.ContentHash, b.ContentHash)
}

func TestExtract_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := newTestExtractor().Extract("://bad", "<html></html>")
	require.Error(t, err)
	assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
}
