package router_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/straye-as/search-insights/internal/config"
	"github.com/straye-as/search-insights/internal/http/handler"
	"github.com/straye-as/search-insights/internal/http/middleware"
	"github.com/straye-as/search-insights/internal/http/router"
	"github.com/straye-as/search-insights/internal/ingest"
	"github.com/straye-as/search-insights/internal/render"
	"github.com/straye-as/search-insights/internal/service"
	"github.com/straye-as/search-insights/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Name: "Search Insights", Environment: "development", Port: 8080},
		Upload:    config.UploadConfig{MaxUploadSizeMB: 1, AllowedExtensions: []string{".csv", ".txt", ".xlsx"}},
		Analytics: config.AnalyticsConfig{TopN: 10},
		Server:    config.ServerConfig{RequestTimeout: 30, EnableMetrics: true, EnableSwagger: false},
		CORS:      config.CORSConfig{AllowedMethods: []string{"GET", "POST", "OPTIONS"}},
		Security:  config.SecurityConfig{FrameOptions: "DENY", ContentTypeNosniff: true},
		RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1000, UploadsPerMinute: 1000},
	}
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := testConfig()
	logger := zap.NewNop()
	provider := telemetry.NewProvider()

	svc := service.NewDashboardService(ingest.NewParser(logger), provider.Metrics, &cfg.Upload, &cfg.Analytics, logger)
	page, err := render.NewHTMLRenderer()
	require.NoError(t, err)
	h := handler.NewDashboardHandler(svc, page, render.NewJSONRenderer(), cfg.Upload.MaxUploadBytes(), logger)

	return router.NewRouter(cfg, logger, provider, middleware.NewRateLimiter(&cfg.RateLimit, logger), h).Setup()
}

func TestRouter_Health(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRouter_PageAndUpload(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Awaiting CSV file upload")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, _ = part.Write([]byte("Query,Clicks,Impressions,CTR,Position\nshoe,10,100,10,5\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), `"filename":"export.csv"`)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := setupRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "search_insights_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/v1/dashboard`)
}

func TestRouter_SwaggerDisabled(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UnknownAPIRoute(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"type":"not_found"`)
}
