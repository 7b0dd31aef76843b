package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/straye-as/search-insights/internal/analytics"
	"github.com/straye-as/search-insights/internal/config"
	"github.com/straye-as/search-insights/internal/domain"
	"github.com/straye-as/search-insights/internal/ingest"
	"github.com/straye-as/search-insights/internal/logger"
	"github.com/straye-as/search-insights/internal/telemetry"
	"go.uber.org/zap"
)

const (
	dashboardTitle = "Google Search Console Data Analysis"
	idleNotice     = "Awaiting CSV file upload. Please upload your Google Search Console data."

	// unknownFormat labels uploads whose extension is not accepted
	unknownFormat = "unknown"
)

// Upload is a file handed to the dashboard
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type DashboardService struct {
	parser       *ingest.Parser
	metrics      *telemetry.Metrics
	uploadCfg    *config.UploadConfig
	analyticsCfg *config.AnalyticsConfig
	logger       *zap.Logger
}

func NewDashboardService(
	parser *ingest.Parser,
	metrics *telemetry.Metrics,
	uploadCfg *config.UploadConfig,
	analyticsCfg *config.AnalyticsConfig,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		parser:       parser,
		metrics:      metrics,
		uploadCfg:    uploadCfg,
		analyticsCfg: analyticsCfg,
		logger:       logger,
	}
}

// Idle returns the view shown while no file is loaded
func (s *DashboardService) Idle() *domain.IdleView {
	return &domain.IdleView{
		Title:             dashboardTitle,
		Notice:            idleNotice,
		AllowedExtensions: s.uploadCfg.AllowedExtensions,
		MaxUploadSizeMB:   s.uploadCfg.MaxUploadSizeMB,
	}
}

// Process runs the whole pipeline for one upload: detect format, parse, validate, analyze.
// On success the session moves to the loaded state and holds the new table and report,
// replacing anything it held before. On failure the session is left untouched and no
// metrics are computed.
func (s *DashboardService) Process(ctx context.Context, session *domain.Session, upload Upload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	format, formatErr := ingest.DetectFormat(upload.Filename, s.uploadCfg.AllowedExtensions)
	formatLabel := string(format)
	if formatErr != nil {
		formatLabel = unknownFormat
	}
	log := logger.WithUpload(s.logger, session.ID.String(), upload.Filename, formatLabel, upload.Size)

	if formatErr != nil {
		s.metrics.RecordUpload(formatLabel, telemetry.OutcomeUnsupportedFormat, 0, time.Since(start))
		log.Info("Rejected upload with unsupported format", zap.Error(formatErr))
		return formatErr
	}

	table, err := s.parser.Parse(upload.Body, format)
	if err != nil {
		outcome := outcomeFor(err)
		s.metrics.RecordUpload(formatLabel, outcome, 0, time.Since(start))
		log.Info("Upload failed validation",
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		return err
	}

	report := analytics.Analyze(table, analytics.Options{TopN: s.analyticsCfg.TopN})
	session.Load(upload.Filename, table, report)

	duration := time.Since(start)
	s.metrics.RecordUpload(formatLabel, telemetry.OutcomeLoaded, table.Len(), duration)
	for _, w := range report.Warnings {
		s.metrics.RecordWarning(string(w.Code))
	}

	log.Info("Upload analyzed",
		zap.String("report_id", report.ID.String()),
		zap.Int("rows", report.RowCount),
		zap.Int64("total_clicks", report.Summary.TotalClicks),
		zap.Int64("total_impressions", report.Summary.TotalImpressions),
		zap.Int("warnings", len(report.Warnings)),
		zap.Duration("duration", duration),
	)

	return nil
}

// View assembles the dashboard for a loaded session
func (s *DashboardService) View(session *domain.Session) (*domain.ReportView, error) {
	if !session.IsLoaded() {
		return nil, fmt.Errorf("session %s: %w", session.ID, ErrNotLoaded)
	}

	table, report := session.Table, session.Report

	notices := report.Warnings
	if notices == nil {
		notices = []domain.Warning{}
	}

	return &domain.ReportView{
		Title:     dashboardTitle,
		SessionID: session.ID,
		Filename:  session.Filename,
		RawData: domain.RawTable{
			Columns: table.Header,
			Rows:    table.Records,
		},
		Metrics:         analytics.MetricCards(report.Summary),
		TopKeywords:     report.TopKeywords,
		Charts:          report.Charts,
		Recommendations: report.Recommendations,
		Notices:         notices,
		Upload:          *s.Idle(),
	}, nil
}

func outcomeFor(err error) string {
	var (
		parseErr  *domain.ParseError
		schemaErr *domain.SchemaError
	)
	switch {
	case errors.As(err, &schemaErr):
		return telemetry.OutcomeSchemaError
	case errors.As(err, &parseErr):
		return telemetry.OutcomeParseError
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return telemetry.OutcomeUnsupportedFormat
	default:
		return telemetry.OutcomeRejected
	}
}
