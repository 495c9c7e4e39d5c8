package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/iroha-labs/palette-server/internal/sake"
	"github.com/iroha-labs/palette-server/internal/service"
)

func (s *Server) registerSakeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "recommendSake",
		Method:      http.MethodPost,
		Path:        "/api/v1/sake/recommend",
		Summary:     "Recommend sake",
		Description: "Filters the catalog by preferences and returns up to three sakes in catalog order. " +
			"Price bands: " + strings.Join(sake.PriceBands(), ", ") + ". Any other price value does not filter.",
		Tags:        []string{"Sake"},
	}, s.handleRecommendSake)

	huma.Register(s.api, huma.Operation{
		OperationID: "listSake",
		Method:      http.MethodGet,
		Path:        "/api/v1/sake/all",
		Summary:     "List sake",
		Description: "Returns the full sake catalog",
		Tags:        []string{"Sake"},
	}, s.handleListSake)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchSake",
		Method:      http.MethodGet,
		Path:        "/api/v1/sake/search",
		Summary:     "Search sake",
		Description: "Full-text search over names, brewery, description and tags, ranked by relevance",
		Tags:        []string{"Sake"},
	}, s.handleSearchSake)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSake",
		Method:      http.MethodGet,
		Path:        "/api/v1/sake/{id}",
		Summary:     "Get sake",
		Description: "Returns a single sake by ID",
		Tags:        []string{"Sake"},
	}, s.handleGetSake)
}

// === DTOs ===

// RecommendSakeInput contains the preferences to filter by.
type RecommendSakeInput struct {
	Body sake.Preferences
}

// RecommendSakeResponse contains recommendations in API responses.
type RecommendSakeResponse struct {
	Recommendations []sake.Sake `json:"recommendations" doc:"Matching sakes, at most three"`
	Count           int         `json:"count" doc:"Number of recommendations"`
}

// RecommendSakeOutput wraps the recommendation response for Huma.
type RecommendSakeOutput struct {
	Body RecommendSakeResponse
}

// ListSakeResponse contains the catalog in API responses.
type ListSakeResponse struct {
	Sakes []sake.Sake `json:"sakes" doc:"All sakes in catalog order"`
	Count int         `json:"count" doc:"Catalog size"`
}

// ListSakeOutput wraps the catalog response for Huma.
type ListSakeOutput struct {
	Body ListSakeResponse
}

// SearchSakeInput contains parameters for searching the catalog.
type SearchSakeInput struct {
	Q          string `query:"q" required:"true" doc:"Search query" example:"junmai"`
	Prefecture string `query:"prefecture" doc:"Restrict to one prefecture" example:"新潟県"`
	MaxPrice   int    `query:"max_price" minimum:"0" doc:"Maximum price in yen; 0 means no limit"`
	Limit      int    `query:"limit" minimum:"0" doc:"Maximum results (default 10, capped at 50)"`
}

// SearchSakeResponse contains search results in API responses.
type SearchSakeResponse struct {
	Query string      `json:"query" doc:"Query as executed"`
	Total uint64      `json:"total" doc:"Total matches before the limit"`
	Sakes []sake.Sake `json:"sakes" doc:"Matching sakes by relevance"`
}

// SearchSakeOutput wraps the search response for Huma.
type SearchSakeOutput struct {
	Body SearchSakeResponse
}

// GetSakeInput contains parameters for getting a sake.
type GetSakeInput struct {
	ID string `path:"id" doc:"Sake ID" example:"1"`
}

// SakeOutput wraps a single sake for Huma.
type SakeOutput struct {
	Body sake.Sake
}

// === Handlers ===

func (s *Server) handleRecommendSake(ctx context.Context, input *RecommendSakeInput) (*RecommendSakeOutput, error) {
	recs := s.services.Sake.Recommend(ctx, input.Body)

	return &RecommendSakeOutput{
		Body: RecommendSakeResponse{
			Recommendations: recs,
			Count:           len(recs),
		},
	}, nil
}

func (s *Server) handleListSake(ctx context.Context, _ *struct{}) (*ListSakeOutput, error) {
	sakes := s.services.Sake.All(ctx)

	return &ListSakeOutput{
		Body: ListSakeResponse{
			Sakes: sakes,
			Count: len(sakes),
		},
	}, nil
}

func (s *Server) handleSearchSake(ctx context.Context, input *SearchSakeInput) (*SearchSakeOutput, error) {
	result, err := s.services.Sake.Search(ctx, service.SearchInput{
		Query:      input.Q,
		Prefecture: input.Prefecture,
		MaxPrice:   input.MaxPrice,
		Limit:      input.Limit,
	})
	if err != nil {
		return nil, apiError(err)
	}

	return &SearchSakeOutput{
		Body: SearchSakeResponse{
			Query: result.Query,
			Total: result.Total,
			Sakes: result.Sakes,
		},
	}, nil
}

func (s *Server) handleGetSake(ctx context.Context, input *GetSakeInput) (*SakeOutput, error) {
	found, err := s.services.Sake.Get(ctx, input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	return &SakeOutput{Body: *found}, nil
}
