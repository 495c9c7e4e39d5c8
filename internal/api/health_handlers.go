package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Latency string `json:"latency,omitempty" doc:"Response time for this component"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy, degraded, or unhealthy"`
	Uptime     string                     `json:"uptime" doc:"Time since the server started"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := map[string]ComponentHealth{
		"palette": s.checkPalette(),
		"catalog": s.checkCatalog(),
	}

	overall := "healthy"
	for _, c := range components {
		switch c.Status {
		case "unhealthy":
			overall = "unhealthy"
		case "degraded":
			if overall == "healthy" {
				overall = "degraded"
			}
		}
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Uptime:     time.Since(s.startedAt).Round(time.Second).String(),
			Components: components,
		},
	}, nil
}

func (s *Server) checkPalette() ComponentHealth {
	if s.services.Palette == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "palette service not configured",
		}
	}
	return ComponentHealth{Status: "healthy"}
}

// checkCatalog verifies the sake catalog is loaded and fully indexed.
func (s *Server) checkCatalog() ComponentHealth {
	// Handle nil sake service (e.g., in tests)
	if s.services.Sake == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "sake catalog not configured",
		}
	}

	start := time.Now()

	indexed, err := s.services.Sake.IndexedCount()
	count := s.services.Sake.Count()
	latency := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Latency: latency.String(),
			Message: "search index unreachable",
		}
	}

	// The index lags the catalog only while a reload is in flight.
	if indexed != uint64(count) {
		return ComponentHealth{
			Status:  "degraded",
			Latency: latency.String(),
			Message: "search index out of sync",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Latency: latency.String(),
		Message: formatSakeCount(count),
	}
}

func formatSakeCount(n int) string {
	if n == 1 {
		return "1 sake"
	}
	return strconv.Itoa(n) + " sakes"
}
