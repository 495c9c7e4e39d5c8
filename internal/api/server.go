// Package api provides the HTTP API server and handlers for the palette server.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/http/response"
	"github.com/iroha-labs/palette-server/internal/metrics"
	"github.com/iroha-labs/palette-server/internal/ratelimit"
)

// Version is reported in the OpenAPI document.
const Version = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	config    *config.Config
	services  *Services
	limiter   *ratelimit.KeyedRateLimiter
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
	startedAt time.Time
}

// NewServer creates a new HTTP server with all routes configured.
// limiter may be nil, in which case requests are not rate limited.
func NewServer(cfg *config.Config, services *Services, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if services == nil {
		services = &Services{}
	}

	s := &Server{
		config:    cfg,
		services:  services,
		limiter:   limiter,
		router:    chi.NewRouter(),
		logger:    logger,
		startedAt: time.Now(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, mainly for OpenAPI generation.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)

	if s.metricsEnabled() {
		s.router.Use(metrics.Middleware)
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Retry-After", "X-Request-ID"},
		MaxAge:         300,
	}))

	if s.limiter != nil {
		s.router.Use(RateLimitMiddleware(s.limiter, s.logger, "/health", s.metricsPath()))
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	humaConfig := huma.DefaultConfig(s.serverName(), Version)
	humaConfig.Info.Description = "Colour palette generation and sake recommendations."
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerPaletteRoutes()
	s.registerColorRoutes()
	s.registerSakeRoutes()
	s.registerUserRoutes()

	if s.metricsEnabled() {
		s.router.Handle(s.metricsPath(), metrics.Handler())
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route not found: "+r.URL.Path, s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "method "+r.Method+" not allowed", s.logger)
	})
}

func (s *Server) metricsEnabled() bool {
	return s.config != nil && s.config.Metrics.Enabled
}

func (s *Server) metricsPath() string {
	if s.config == nil || s.config.Metrics.Path == "" {
		return "/metrics"
	}
	return s.config.Metrics.Path
}

func (s *Server) allowedOrigins() []string {
	if s.config == nil || len(s.config.Server.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return s.config.Server.AllowedOrigins
}

func (s *Server) serverName() string {
	if s.config == nil || s.config.Server.Name == "" {
		return "Palette API"
	}
	return s.config.Server.Name
}
