// Package fs provides the file-based implementation of
// newsgrab.ArticleStore with batch checkpointing.
package fs

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/jsimek/newsgrab"
	"go.uber.org/zap"
)

// Ensure Store implements newsgrab.ArticleStore at compile time.
var _ newsgrab.ArticleStore = (*Store)(nil)

// Store accumulates articles in memory and checkpoints the full
// collection to a JSON file every batchSize additions. Checkpoints use
// a write-then-rename so a crash mid-write never corrupts the output
// file; at most the last partial batch is lost.
type Store struct {
	mu        sync.Mutex
	path      string
	batchSize int
	logger    *zap.Logger

	articles []*newsgrab.Article
	index    map[string]bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithBatchSize sets how many additions trigger an automatic
// checkpoint. Defaults to newsgrab.DefaultBatchSize.
func WithBatchSize(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithLogger sets the logger used to report checkpoint failures.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store writing to the given file path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:      path,
		batchSize: newsgrab.DefaultBatchSize,
		logger:    zap.NewNop(),
		articles:  []*newsgrab.Article{},
		index:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores an article unless one with the same URL is already held.
// It reports whether the article was added. Every batchSize-th addition
// triggers a checkpoint; a failed checkpoint is logged but does not
// reject the article, since the data stays in memory for the next
// attempt.
func (s *Store) Add(article *newsgrab.Article) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index[article.URL] {
		return false
	}
	s.index[article.URL] = true
	s.articles = append(s.articles, article)

	if len(s.articles)%s.batchSize == 0 {
		if err := s.checkpoint(); err != nil {
			s.logger.Warn("checkpoint failed",
				zap.String("path", s.path),
				zap.Int("articles", len(s.articles)),
				zap.Error(err),
			)
		} else {
			s.logger.Info("checkpoint",
				zap.String("path", s.path),
				zap.Int("articles", len(s.articles)),
			)
		}
	}
	return true
}

// Len returns the number of stored articles.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.articles)
}

// Articles returns a copy of the stored articles in insertion order.
func (s *Store) Articles() []*newsgrab.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*newsgrab.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Flush writes the current collection to disk regardless of batch
// position. An empty store writes an empty JSON array.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkpoint()
}

// checkpoint serializes the whole collection and atomically replaces
// the output file. Callers must hold s.mu.
func (s *Store) checkpoint() error {
	data, err := json.MarshalIndent(s.articles, "", "  ")
	if err != nil {
		return newsgrab.Errorf(newsgrab.EINTERNAL, "marshaling articles: %v", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return newsgrab.Errorf(newsgrab.EINTERNAL, "writing checkpoint: %v", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return newsgrab.Errorf(newsgrab.EINTERNAL, "replacing output file: %v", err)
	}
	return nil
}
