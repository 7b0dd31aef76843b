package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/straye-as/search-insights/docs"
	"github.com/straye-as/search-insights/internal/config"
	"github.com/straye-as/search-insights/internal/http/handler"
	"github.com/straye-as/search-insights/internal/http/middleware"
	"github.com/straye-as/search-insights/internal/http/router"
	"github.com/straye-as/search-insights/internal/ingest"
	"github.com/straye-as/search-insights/internal/logger"
	"github.com/straye-as/search-insights/internal/render"
	"github.com/straye-as/search-insights/internal/service"
	"github.com/straye-as/search-insights/internal/telemetry"
	"go.uber.org/zap"
)

// @title Search Insights API
// @version 1.0
// @description Search Console performance export analysis: summary metrics, top keywords and CTR vs position charts

// @contact.name API Support
// @contact.email support@straye.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
		zap.Int64("max_upload_mb", cfg.Upload.MaxUploadSizeMB),
		zap.Strings("allowed_extensions", cfg.Upload.AllowedExtensions),
	)

	// Swagger host follows the listen port; deployments behind a proxy override it
	if host := os.Getenv("SWAGGER_HOST"); host != "" {
		docs.SwaggerInfo.Host = host
	} else {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	provider := telemetry.NewProvider()

	parser := ingest.NewParser(log)
	dashboardService := service.NewDashboardService(parser, provider.Metrics, &cfg.Upload, &cfg.Analytics, log)

	page, err := render.NewHTMLRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	dashboardHandler := handler.NewDashboardHandler(
		dashboardService,
		page,
		render.NewJSONRenderer(),
		cfg.Upload.MaxUploadBytes(),
		log,
	)

	rt := router.NewRouter(cfg, log, provider, rateLimiter, dashboardHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
