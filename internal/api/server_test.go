package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/ratelimit"
	"github.com/iroha-labs/palette-server/internal/sake"
	"github.com/iroha-labs/palette-server/internal/service"
)

// testEnvelope mirrors APIEnvelope with a typed payload.
type testEnvelope[T any] struct {
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

// testErrorEnvelope mirrors APIErrorEnvelope.
type testErrorEnvelope struct {
	Version int               `json:"v"`
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Name: "Palette API", AllowedOrigins: []string{"*"}},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Palette: config.PaletteConfig{DefaultAngle: 30},
	}
}

func testServices(t *testing.T, cfg *config.Config) *Services {
	t.Helper()

	catalog, err := sake.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })

	return &Services{
		Palette: service.NewPaletteService(nil, cfg),
		Sake:    service.NewSakeService(catalog, nil),
		User:    service.NewUserService(nil, nil),
	}
}

type testServer struct {
	server *Server
	api    humatest.TestAPI
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithLimiter(t, nil)
}

func setupTestServerWithLimiter(t *testing.T, limiter *ratelimit.KeyedRateLimiter) *testServer {
	t.Helper()

	cfg := testConfig()
	s := NewServer(cfg, testServices(t, cfg), limiter, nil)

	return &testServer{
		server: s,
		api:    humatest.Wrap(t, s.API()),
	}
}

func decodeEnvelope[T any](t *testing.T, resp *httptest.ResponseRecorder) testEnvelope[T] {
	t.Helper()
	var env testEnvelope[T]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env), resp.Body.String())
	assert.Equal(t, EnvelopeVersion, env.Version)
	return env
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) testErrorEnvelope {
	t.Helper()
	var env testErrorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env), resp.Body.String())
	assert.Equal(t, EnvelopeVersion, env.Version)
	assert.False(t, env.Success)
	return env
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/nope")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	env := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", env.Code)
	assert.Contains(t, env.Error, "/api/v1/nope")
}

func TestServer_OpenAPI(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/openapi.json")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	for _, p := range []string{
		"/health",
		"/api/v1/palette/generate",
		"/api/v1/colors/{hex}",
		"/api/v1/sake/recommend",
		"/api/v1/sake/all",
		"/api/v1/sake/search",
		"/api/v1/sake/{id}",
		"/api/v1/users",
		"/api/v1/users/{id}",
	} {
		assert.Contains(t, body, `"`+p+`"`)
	}
}

func TestServer_Metrics(t *testing.T) {
	ts := setupTestServer(t)

	ts.api.Get("/api/v1/palette/generate?baseColor=%233B82F6")
	resp := ts.api.Get("/metrics")

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "palette_http_requests_total")
	assert.Contains(t, body, `route="/api/v1/palette/generate"`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	s := NewServer(cfg, testServices(t, cfg), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CORS(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health", "Origin: https://example.com")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}
