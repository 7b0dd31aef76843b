// Package telemetry exposes Prometheus metrics for uploads and HTTP traffic.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "search_insights"

// Upload outcomes
const (
	OutcomeLoaded            = "loaded"
	OutcomeParseError        = "parse_error"
	OutcomeSchemaError       = "schema_error"
	OutcomeUnsupportedFormat = "unsupported_format"
	OutcomeRejected          = "rejected"
)

// Metrics holds all Prometheus collectors
type Metrics struct {
	// Upload pipeline
	UploadsTotal       *prometheus.CounterVec
	RowsIngested       prometheus.Histogram
	ProcessingDuration prometheus.Histogram
	WarningsTotal      *prometheus.CounterVec

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// Provider owns a private registry so several providers can coexist in tests
type Provider struct {
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider registers all metrics plus the Go runtime and process collectors
func NewProvider() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Provider{
		Metrics:  initMetrics(promauto.With(reg)),
		registry: reg,
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

func initMetrics(factory promauto.Factory) *Metrics {
	m := &Metrics{}
	initUploadMetrics(factory, m)
	initHTTPMetrics(factory, m)
	return m
}

func initUploadMetrics(factory promauto.Factory, m *Metrics) {
	m.UploadsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Uploads processed, by file format and outcome",
	}, []string{"format", "outcome"})

	m.RowsIngested = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_rows",
		Help:      "Data rows per successfully parsed upload",
		Buckets:   []float64{0, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
	})

	m.ProcessingDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_processing_duration_seconds",
		Help:      "Time to parse and analyze an upload",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	})

	m.WarningsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_warnings_total",
		Help:      "Non-fatal data warnings attached to reports, by code",
	}, []string{"code"})
}

func initHTTPMetrics(factory promauto.Factory, m *Metrics) {
	m.HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests, by method, route pattern and status code",
	}, []string{"method", "route", "status"})

	m.HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
}

// RecordUpload records the outcome of one upload
func (m *Metrics) RecordUpload(format, outcome string, rows int, duration time.Duration) {
	m.UploadsTotal.WithLabelValues(format, outcome).Inc()
	m.ProcessingDuration.Observe(duration.Seconds())
	if outcome == OutcomeLoaded {
		m.RowsIngested.Observe(float64(rows))
	}
}

// RecordWarning counts a report warning
func (m *Metrics) RecordWarning(code string) {
	m.WarningsTotal.WithLabelValues(code).Inc()
}
