package service

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
	"github.com/iroha-labs/palette-server/internal/metrics"
	"github.com/iroha-labs/palette-server/internal/sake"
	"github.com/iroha-labs/palette-server/internal/search"
)

// Search limits for SakeService.Search.
const (
	DefaultSakeSearchLimit = 10
	MaxSakeSearchLimit     = 50
)

// SakeService exposes the sake catalog.
type SakeService struct {
	catalog *sake.Catalog
	logger  *slog.Logger
}

// NewSakeService creates a new sake service.
func NewSakeService(catalog *sake.Catalog, logger *slog.Logger) *SakeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SakeService{
		catalog: catalog,
		logger:  logger,
	}
}

// Recommend returns up to three sakes matching prefs.
func (s *SakeService) Recommend(ctx context.Context, prefs sake.Preferences) []sake.Sake {
	recs := s.catalog.Recommend(prefs)
	metrics.SakeRecommendations.Observe(float64(len(recs)))

	s.logger.DebugContext(ctx, "sake recommended",
		"flavor", prefs.Flavor,
		"sweetness", prefs.Sweetness,
		"price", prefs.Price,
		"experience", prefs.Experience,
		"count", len(recs),
	)
	return recs
}

// All returns the full catalog.
func (s *SakeService) All(_ context.Context) []sake.Sake {
	return s.catalog.All()
}

// Get returns one sake by id.
func (s *SakeService) Get(_ context.Context, id string) (*sake.Sake, error) {
	found, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// IndexedCount reports how many sakes the search index holds.
func (s *SakeService) IndexedCount() (uint64, error) {
	return s.catalog.IndexedCount()
}

// Count returns the number of sakes in the catalog.
func (s *SakeService) Count() int {
	return s.catalog.Len()
}

// SearchResult is a page of search hits.
type SearchResult struct {
	Query string
	Total uint64
	Sakes []sake.Sake
}

// SearchInput holds a full-text query and optional filters.
type SearchInput struct {
	Query      string
	Prefecture string
	// MaxPrice in yen; zero means no limit.
	MaxPrice int
	Limit    int
}

// Search runs a full-text query over the catalog. Limit defaults to
// DefaultSakeSearchLimit and is capped at MaxSakeSearchLimit.
func (s *SakeService) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, domainerrors.ValidationWithDetails("search query is required",
			map[string]string{"q": "is required"})
	}

	if in.MaxPrice < 0 {
		return nil, domainerrors.ValidationWithDetails("max price must not be negative",
			map[string]string{"max_price": "must be zero or greater"})
	}

	limit := in.Limit
	switch {
	case limit <= 0:
		limit = DefaultSakeSearchLimit
	case limit > MaxSakeSearchLimit:
		limit = MaxSakeSearchLimit
	}

	params := search.DefaultParams()
	params.Query = query
	params.Prefecture = in.Prefecture
	params.MaxPrice = in.MaxPrice
	params.Limit = limit

	sakes, total, err := s.catalog.Search(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "sake search failed", "query", query, "error", err)
		return nil, err
	}

	return &SearchResult{
		Query: query,
		Total: total,
		Sakes: sakes,
	}, nil
}
