package analytics

import (
	"github.com/straye-as/search-insights/internal/domain"
)

// TopKeywordsChart builds the bar chart of the top keywords ranking
func TopKeywordsChart(top []domain.KeywordClicks) domain.ChartSpec {
	points := make([]domain.ChartPoint, len(top))
	for i, kw := range top {
		points[i] = domain.ChartPoint{
			Category: kw.Query,
			Y:        float64(kw.Clicks),
		}
	}

	return domain.ChartSpec{
		Kind:   domain.ChartKindBar,
		Title:  "Top Keywords by Clicks",
		XField: domain.ColumnQuery,
		YField: domain.ColumnClicks,
		XLabel: domain.ColumnQuery,
		YLabel: domain.ColumnClicks,
		Points: points,
	}
}

// CTRByPositionChart plots every row: x = position, y = CTR, size = impressions,
// colour = query. Points are raw rows in source order.
func CTRByPositionChart(rows []domain.SearchPerformanceRow) domain.ChartSpec {
	points := make([]domain.ChartPoint, len(rows))
	for i, row := range rows {
		points[i] = domain.ChartPoint{
			Category: row.Query,
			X:        row.Position,
			Y:        row.CTR,
			Size:     float64(row.Impressions),
		}
	}

	return domain.ChartSpec{
		Kind:       domain.ChartKindScatter,
		Title:      "CTR vs Average Position",
		XField:     domain.ColumnPosition,
		YField:     domain.ColumnCTR,
		SizeField:  domain.ColumnImpressions,
		ColorField: domain.ColumnQuery,
		XLabel:     domain.ColumnPosition,
		YLabel:     "Click-Through Rate (%)",
		Points:     points,
	}
}
