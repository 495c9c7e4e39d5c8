package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/sake/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/sake/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "99"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sake/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMiddleware_ImplicitOK(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	counter := HTTPRequests.WithLabelValues(http.MethodGet, "/ping", "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandler_ExposesCounters(t *testing.T) {
	PalettesGenerated.WithLabelValues("triadic").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `palette_generated_total{kind="triadic"}`)
}
