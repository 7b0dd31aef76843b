package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/search-insights/internal/domain"
)

// Recommendations are shown with every loaded report; they do not depend on the data
var Recommendations = []string{
	"Improve CTR for high-impression, low-CTR keywords.",
	"Optimize content for keywords ranking in positions 11-20.",
	"Focus on increasing relevance for underperforming pages.",
}

// Options tunes Analyze
type Options struct {
	TopN int
}

// Analyze computes the full report for a table. Ingestion warnings are carried over
// after the degenerate data warnings.
func Analyze(table *domain.SearchPerformanceTable, opts Options) *domain.Report {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}

	var rows []domain.SearchPerformanceRow
	if table != nil {
		rows = table.Rows
	}

	summary, warnings := Summarize(rows)
	if table != nil {
		warnings = append(warnings, table.Warnings...)
	}
	if warnings == nil {
		warnings = []domain.Warning{}
	}

	top := TopByClicks(rows, opts.TopN)

	recommendations := make([]string, len(Recommendations))
	copy(recommendations, Recommendations)

	return &domain.Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		RowCount:    len(rows),
		Summary:     summary,
		TopKeywords: top,
		Charts: domain.ReportCharts{
			TopKeywords:   TopKeywordsChart(top),
			CTRByPosition: CTRByPositionChart(rows),
		},
		Recommendations: recommendations,
		Warnings:        warnings,
	}
}
