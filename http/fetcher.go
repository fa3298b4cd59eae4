// Package http provides the HTTP implementations of newsgrab.Fetcher
// and newsgrab.SitemapSeeder.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/jsimek/newsgrab"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "newsgrab/1.0"

// maxBodyBytes caps the response body read per page. News article pages
// are well under this; anything larger is not worth extracting.
const maxBodyBytes = 10 << 20

// Ensure Fetcher implements newsgrab.Fetcher at compile time.
var _ newsgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript, which is sufficient for the news
// sites targeted here.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Failures are
// classified through error codes so callers can tell timeouts
// (ETIMEOUT), missing pages (ENOTFOUND) and server or transport
// trouble (EUNAVAILABLE) apart.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsgrab.Errorf(newsgrab.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", newsgrab.Errorf(newsgrab.ENOTFOUND, "page not found: %s", url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", newsgrab.Errorf(newsgrab.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", classifyTransportError(url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classifyTransportError maps client and network errors onto error
// codes. Timeouts of any flavor become ETIMEOUT, everything else
// EUNAVAILABLE.
func classifyTransportError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newsgrab.Errorf(newsgrab.ETIMEOUT, "fetch timed out for %s: %v", url, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newsgrab.Errorf(newsgrab.ETIMEOUT, "fetch timed out for %s: %v", url, err)
	}
	return newsgrab.Errorf(newsgrab.EUNAVAILABLE, "fetch failed for %s: %v", url, err)
}
