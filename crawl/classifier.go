package crawl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jsimek/newsgrab"
)

var _ newsgrab.URLClassifier = (*Classifier)(nil)

// Classifier decides whether a URL points at an in-scope article page.
// Acceptance is a conjunction: the host must contain an allowed domain,
// the path must match that domain's article pattern, and the path must
// not end with a denylisted file extension.
type Classifier struct {
	domains  []string
	patterns map[string]*regexp.Regexp
	skipExts []string
}

// NewClassifier compiles the per-domain article patterns and returns a
// classifier. Domains are matched as substrings of the URL host, so
// "novinky.cz" also matches "www.novinky.cz". Extensions are matched
// case-insensitively against the end of the URL path.
func NewClassifier(domains []string, patterns map[string]string, skipExts []string) (*Classifier, error) {
	c := &Classifier{
		patterns: make(map[string]*regexp.Regexp, len(patterns)),
	}
	for _, d := range domains {
		c.domains = append(c.domains, strings.ToLower(d))
	}
	for domain, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid article pattern %q for domain %q: %v", pattern, domain, err)
		}
		c.patterns[strings.ToLower(domain)] = re
	}
	for _, ext := range skipExts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.skipExts = append(c.skipExts, ext)
	}
	return c, nil
}

// IsArticleURL reports whether the URL is an in-scope article link.
// It is a pure function of the URL string.
func (c *Classifier) IsArticleURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	if !c.hostAllowed(host) {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, ext := range c.skipExts {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}

	// The URL must match the article pattern of some domain its host
	// belongs to. An allowed host with no configured pattern is
	// rejected.
	for domain, re := range c.patterns {
		if strings.Contains(host, domain) && re.MatchString(u.Path) {
			return true
		}
	}
	return false
}

func (c *Classifier) hostAllowed(host string) bool {
	for _, domain := range c.domains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}
