package newsgrab

import "context"

// Fetcher retrieves HTML from URLs.
//
// Implementations must return errors whose code distinguishes timeout
// (ETIMEOUT), connection failure (EUNAVAILABLE) and non-2xx responses
// (ENOTFOUND or EUNAVAILABLE); the crawl loop treats them all as a
// failed fetch but logs the distinction.
type Fetcher interface {
	// Fetch retrieves the body of the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
