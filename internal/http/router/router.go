package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/straye-as/search-insights/internal/config"
	"github.com/straye-as/search-insights/internal/http/handler"
	"github.com/straye-as/search-insights/internal/http/middleware"
	"github.com/straye-as/search-insights/internal/telemetry"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/straye-as/search-insights/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	telemetry        *telemetry.Provider
	rateLimiter      *middleware.RateLimiter
	dashboardHandler *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	provider *telemetry.Provider,
	rateLimiter *middleware.RateLimiter,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		telemetry:        provider,
		rateLimiter:      rateLimiter,
		dashboardHandler: dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware. Recovery sits inside Metrics and Logging so recovered panics are counted and logged as 500s.
	r.Use(middleware.Metrics(rt.telemetry.Metrics))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)
	r.Use(chimiddleware.Timeout(rt.cfg.Server.RequestTimeoutDuration()))

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if rt.cfg.Server.EnableMetrics {
		r.Method(http.MethodGet, "/metrics", rt.telemetry.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Dashboard page
	r.Get("/", rt.dashboardHandler.Page)
	r.With(rt.rateLimiter.LimitUploads).Post("/upload", rt.dashboardHandler.Upload)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(rt.dashboardHandler.NotFound)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", rt.dashboardHandler.GetIdle)
			r.With(rt.rateLimiter.LimitUploads).Post("/upload", rt.dashboardHandler.PostUpload)
		})
	})

	return r
}
