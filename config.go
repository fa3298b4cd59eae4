package newsgrab

import "time"

// Default crawl limits.
const (
	DefaultMaxPages       = 500000
	DefaultBatchSize      = 50
	DefaultRequestTimeout = 10 * time.Second
	DefaultRequestDelay   = 10 * time.Millisecond
)

// Config is the process-wide crawl configuration. It is assembled at
// startup from defaults, an optional config file and CLI flags, and is
// immutable for the process lifetime.
type Config struct {
	// Seeds are the start URLs the frontier is seeded with.
	Seeds []string

	// AllowedDomains are matched as substrings of a URL's host, so
	// "novinky.cz" also covers "www.novinky.cz".
	AllowedDomains []string

	// ArticlePatterns maps an allowed domain to a regular expression an
	// article URL's path must match (e.g. "idnes.cz" -> "/zpravy/").
	ArticlePatterns map[string]string

	// SkipExtensions is the case-insensitive denylist of file
	// extensions a URL path must not end with.
	SkipExtensions []string

	// MaxPages caps the number of visited URLs.
	MaxPages int

	// BatchSize is the store size interval at which checkpoints fire.
	BatchSize int

	// OutputFile is the destination of the persisted article collection.
	OutputFile string

	// Workers is the size of the fetch worker pool. 1 gives the
	// single-threaded baseline crawl.
	Workers int

	// RequestTimeout bounds every fetch.
	RequestTimeout time.Duration

	// RequestDelay is the politeness throttle applied per domain.
	RequestDelay time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns the default crawl configuration: three Czech
// news sites with their article path patterns.
func DefaultConfig() Config {
	return Config{
		Seeds: []string{
			"https://www.novinky.cz/",
			"https://www.idnes.cz/",
			"https://www.ctk.cz/",
		},
		AllowedDomains: []string{"novinky.cz", "idnes.cz", "ctk.cz"},
		ArticlePatterns: map[string]string{
			"novinky.cz": "/clanek/",
			"idnes.cz":   "/zpravy/",
			"ctk.cz":     "/clanek/",
		},
		SkipExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".pdf", ".mp4"},
		MaxPages:       DefaultMaxPages,
		BatchSize:      DefaultBatchSize,
		OutputFile:     "articles/articles.json",
		Workers:        1,
		RequestTimeout: DefaultRequestTimeout,
		RequestDelay:   DefaultRequestDelay,
		UserAgent:      "newsgrab/1.0",
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if len(c.Seeds) == 0 {
		return Errorf(EINVALID, "at least one seed URL required")
	}
	if len(c.AllowedDomains) == 0 {
		return Errorf(EINVALID, "at least one allowed domain required")
	}
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive")
	}
	if c.BatchSize <= 0 {
		return Errorf(EINVALID, "batch size must be positive")
	}
	if c.OutputFile == "" {
		return Errorf(EINVALID, "output file required")
	}
	for domain := range c.ArticlePatterns {
		if !contains(c.AllowedDomains, domain) {
			return Errorf(EINVALID, "article pattern for %q has no matching allowed domain", domain)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
