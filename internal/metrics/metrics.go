// Package metrics exposes Prometheus instrumentation for the palette server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "palette"

var (
	// PalettesGenerated counts generated palettes by relation kind.
	PalettesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generated_total",
		Help:      "Palettes generated, labelled by requested relation kind",
	}, []string{"kind"})

	// InvalidColors counts colour inputs rejected as malformed.
	InvalidColors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invalid_colors_total",
		Help:      "Colour inputs rejected with INVALID_FORMAT",
	})

	// SakeRecommendations tracks how many sakes each recommendation returned.
	SakeRecommendations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sake_recommendation_results",
		Help:      "Number of sakes returned per recommendation request",
		Buckets:   []float64{0, 1, 2, 3},
	})

	// SakeCatalogReloads counts catalog reloads by outcome.
	SakeCatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sake_catalog_reloads_total",
		Help:      "Sake catalog reload attempts by result",
	}, []string{"result"})

	// HTTPRequests counts API requests by route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// RateLimited counts requests rejected by the rate limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Requests rejected with 429",
	})
)

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency, labelled by the chi route
// pattern so that path parameters do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
