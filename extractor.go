package newsgrab

// LinkExtractor finds outgoing links in HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the hrefs of all anchors in
	// document order, resolved against baseURL. Fragments are stripped
	// and duplicates removed.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// URLClassifier decides whether a discovered URL is an in-scope,
// crawlable article link. Implementations must be pure functions of the
// URL string with no network access.
type URLClassifier interface {
	IsArticleURL(url string) bool
}
