package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/iroha-labs/palette-server/internal/api"
	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/ratelimit"
	"github.com/iroha-labs/palette-server/internal/service"
)

// RateLimiterHandle wraps the per-client limiter. Limiter is nil when rate
// limiting is disabled.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	if h.KeyedRateLimiter == nil {
		return nil
	}
	return h.KeyedRateLimiter.Shutdown()
}

// ProvideRateLimiter provides the per-client API rate limiter.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.RateLimit.Enabled {
		log.Info("Rate limiting disabled by configuration")
		return &RateLimiterHandle{}, nil
	}

	limiter := ratelimit.NewWithTTL(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimiterTTL)
	log.Info("Rate limiting enabled",
		"rps", cfg.RateLimit.RPS,
		"burst", cfg.RateLimit.Burst,
	)

	return &RateLimiterHandle{KeyedRateLimiter: limiter}, nil
}

// ProvideAPIServer provides the HTTP handler with all routes registered.
func ProvideAPIServer(i do.Injector) (*api.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)

	services := &api.Services{
		Palette: do.MustInvoke[*service.PaletteService](i),
		Sake:    do.MustInvoke[*service.SakeService](i),
		User:    do.MustInvoke[*service.UserService](i),
	}

	return api.NewServer(cfg, services, limiterHandle.KeyedRateLimiter, log.Logger), nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	handler := do.MustInvoke[*api.Server](i)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
