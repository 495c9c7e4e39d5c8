package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query      string // User's search query
	Prefecture string // Exact prefecture filter (empty = all)
	MaxPrice   int    // Upper price bound in yen (0 = unbounded)

	// Pagination
	Limit  int
	Offset int
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit: 10,
	}
}

// Result represents the search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit represents a single search result.
type Hit struct {
	ID     string  `json:"id"`
	Score  float64 `json:"score"`
	Name   string  `json:"name"`
	NameEN string  `json:"name_en,omitempty"`
}

// Search executes a search query ordered by relevance.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		params.Limit = DefaultParams().Limit
	}

	searchRequest := bleve.NewSearchRequestOptions(buildSearchQuery(params), params.Limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score", "id"})
	searchRequest.Fields = []string{"name", "name_en"}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}
		if n, ok := hit.Fields["name"].(string); ok {
			h.Name = n
		}
		if n, ok := hit.Fields["name_en"].(string); ok {
			h.NameEN = n
		}
		result.Hits = append(result.Hits, h)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	if q := strings.TrimSpace(params.Query); q != "" {
		lower := strings.ToLower(q)
		textQueries := []query.Query{}

		// Romanised name with highest boost
		nameENMatch := bleve.NewMatchQuery(q)
		nameENMatch.SetField("name_en")
		nameENMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameENMatch)

		nameMatch := bleve.NewMatchQuery(q)
		nameMatch.SetField("name")
		nameMatch.SetBoost(2.0)
		textQueries = append(textQueries, nameMatch)

		breweryMatch := bleve.NewMatchQuery(q)
		breweryMatch.SetField("brewery")
		breweryMatch.SetBoost(1.5)
		textQueries = append(textQueries, breweryMatch)

		descMatch := bleve.NewMatchQuery(q)
		descMatch.SetField("description")
		descMatch.SetBoost(0.5)
		textQueries = append(textQueries, descMatch)

		tagTerm := bleve.NewTermQuery(q)
		tagTerm.SetField("tags")
		textQueries = append(textQueries, tagTerm)

		// Typo tolerance on the romanised name
		fuzzyQuery := bleve.NewFuzzyQuery(lower)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name_en")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars)
		if len(lower) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(lower)
			prefixQuery.SetField("name_en")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.Prefecture != "" {
		pq := bleve.NewTermQuery(params.Prefecture)
		pq.SetField("prefecture")
		queries = append(queries, pq)
	}

	if params.MaxPrice > 0 {
		max := float64(params.MaxPrice)
		inclusive := true
		rangeQuery := bleve.NewNumericRangeInclusiveQuery(nil, &max, nil, &inclusive)
		rangeQuery.SetField("price")
		queries = append(queries, rangeQuery)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}
