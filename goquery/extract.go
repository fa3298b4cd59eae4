// Package goquery implements article field extraction and link
// discovery over parsed HTML using CSS selectors.
package goquery

import (
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/jsimek/newsgrab"
	"golang.org/x/net/html"
)

// fieldRule is one step of an ordered fallback chain. When Attr is set
// the rule reads that attribute of the first matching element,
// otherwise its text content.
type fieldRule struct {
	Selector string
	Attr     string
}

// Per-field fallback chains, most specific first. Real-world news sites
// use inconsistent markup, so each field trades precision for
// robustness: a specifically classed element is a stronger signal than
// a bare tag and must be tried before it.
var (
	titleRules = []fieldRule{
		{Selector: "h1.article-title"},
		{Selector: "h1.title"},
		{Selector: "h1"},
		{Selector: "title"},
	}
	categoryRules = []fieldRule{
		{Selector: "span.category"},
		{Selector: "div.rubrika"},
		{Selector: `meta[property="article:section"]`, Attr: "content"},
	}
	commentsRules = []fieldRule{
		{Selector: "span.comments-count"},
		{Selector: "div.comments-count"},
		{Selector: `meta[itemprop="commentCount"]`, Attr: "content"},
	}
	contentRules = []fieldRule{
		{Selector: "div.article-content"},
		{Selector: "div.content"},
		{Selector: "article"},
		{Selector: "div.text"},
	}
	dateRules = []fieldRule{
		{Selector: `meta[property="article:published_time"]`, Attr: "content"},
		{Selector: "time[datetime]", Attr: "datetime"},
		{Selector: `meta[name="date"]`, Attr: "content"},
	}
)

// dateLayouts are tried in order for each date candidate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var _ newsgrab.ArticleExtractor = (*Extractor)(nil)

// Extractor builds articles from page HTML using ordered
// selector-fallback chains per field. Extraction is best-effort: an
// exhausted chain yields the field's sentinel or default, never an
// error.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the clock used for the publish-date fallback and
// the fetch timestamp. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the HTML and extracts one article. It returns an error
// only when the URL or HTML cannot be parsed at all; missing fields are
// reported through sentinel values.
func (e *Extractor) Extract(rawURL string, rawHTML string) (*newsgrab.Article, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid article URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	now := e.now().UTC()
	content := extractContent(doc)

	return &newsgrab.Article{
		URL:           rawURL,
		Title:         firstMatch(doc, titleRules, newsgrab.TitleNotFound),
		Category:      firstMatch(doc, categoryRules, newsgrab.CategoryNotFound),
		CommentsCount: extractCommentsCount(doc),
		ImagesCount:   doc.Find("img").Length(),
		Content:       content,
		PublishedAt:   e.extractPublishedAt(doc, now),
		SourceHost:    u.Host,
		ContentHash:   hashContent(content),
		FetchedAt:     now,
	}, nil
}

// firstMatch walks a fallback chain and returns the first non-empty
// value, or the sentinel when the chain is exhausted.
func firstMatch(doc *goquery.Document, rules []fieldRule, sentinel string) string {
	for _, rule := range rules {
		if v := ruleValue(doc, rule); v != "" {
			return v
		}
	}
	return sentinel
}

// ruleValue evaluates a single rule against the first matching element.
func ruleValue(doc *goquery.Document, rule fieldRule) string {
	sel := doc.Find(rule.Selector).First()
	if sel.Length() == 0 {
		return ""
	}
	if rule.Attr != "" {
		v, _ := sel.Attr(rule.Attr)
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(sel.Text())
}

// extractCommentsCount parses the comment counter by stripping all
// non-digit characters. A candidate that yields no digits or overflows
// falls through to the next rule; an exhausted chain defaults to 0.
func extractCommentsCount(doc *goquery.Document) int {
	for _, rule := range commentsRules {
		raw := ruleValue(doc, rule)
		if raw == "" {
			continue
		}
		digits := keepDigits(raw)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		return n
	}
	return 0
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractContent returns the article body text: descendant text nodes
// of the first matching container, joined with single spaces and
// trimmed.
func extractContent(doc *goquery.Document) string {
	for _, rule := range contentRules {
		sel := doc.Find(rule.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := joinedText(sel); text != "" {
			return text
		}
	}
	return newsgrab.ContentNotFound
}

// joinedText collects the trimmed text nodes under a selection and
// joins them with a single space.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// extractPublishedAt walks the date fallback chain. An unparseable
// candidate falls through to the next rule; an exhausted chain falls
// back to the crawl time, making the field best-effort.
func (e *Extractor) extractPublishedAt(doc *goquery.Document, now time.Time) time.Time {
	for _, rule := range dateRules {
		raw := ruleValue(doc, rule)
		if raw == "" {
			continue
		}
		if t, ok := parseDate(raw); ok {
			return t
		}
	}
	return now
}

// parseDate parses a publish date string. A trailing UTC zone marker is
// normalized to an explicit offset first.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
