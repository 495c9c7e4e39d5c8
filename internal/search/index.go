package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// Index wraps an in-memory Bleve index.
//
// Thread safety: All public methods are safe for concurrent use.
// The mutex protects against queries racing a Rebuild.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the search index.
type Options struct {
	Logger *slog.Logger // Logger for operations (uses discard if nil)
}

// NewIndex creates an empty in-memory index.
func NewIndex(opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Index{
		index:  index,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// DocumentCount returns the total number of indexed documents.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Rebuild replaces the index contents with docs.
//
// The replacement index is built before the lock is taken, so queries keep
// hitting the old contents until the swap. If building fails the current
// index is left untouched.
func (s *Index) Rebuild(docs []*Document) error {
	fresh, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	if err := indexBatch(fresh, docs); err != nil {
		_ = fresh.Close()
		return err
	}

	s.mu.Lock()
	old := s.index
	s.index = fresh
	s.mu.Unlock()

	if err := old.Close(); err != nil {
		s.logger.Warn("failed to close previous search index", "error", err)
	}
	s.logger.Debug("rebuilt search index", "documents", len(docs))

	return nil
}

func indexBatch(index bleve.Index, docs []*Document) error {
	batch := index.NewBatch()
	for _, doc := range docs {
		// Convert to map so field names match the mapping.
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
