// Package analytics computes dashboard metrics and chart specifications from a
// validated search performance table. Everything here is a pure function of the table.
package analytics

import (
	"math"

	"github.com/straye-as/search-insights/internal/domain"
)

// Summarize computes totals and averages. Averages that the data cannot define are
// returned as nil together with the warning that explains why. A total that would
// overflow is held at math.MaxInt64 and average CTR is withheld.
func Summarize(rows []domain.SearchPerformanceRow) (domain.Summary, []domain.Warning) {
	var (
		summary     domain.Summary
		warnings    []domain.Warning
		positionSum float64
		overflow    bool
	)

	for _, row := range rows {
		var ok bool
		if summary.TotalClicks, ok = addCount(summary.TotalClicks, row.Clicks); !ok {
			overflow = true
		}
		if summary.TotalImpressions, ok = addCount(summary.TotalImpressions, row.Impressions); !ok {
			overflow = true
		}
		positionSum += row.Position
	}

	if len(rows) == 0 {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningEmptyTable,
			Message: "The file contains no data rows; averages are not available.",
		})
	} else {
		avg := positionSum / float64(len(rows))
		summary.AveragePosition = &avg
	}

	if overflow {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningTotalsOverflow,
			Message: "Click or impression totals exceed the supported range; average CTR is not available.",
		})
		return summary, warnings
	}

	if summary.TotalImpressions > 0 {
		ctr := float64(summary.TotalClicks) / float64(summary.TotalImpressions) * 100
		summary.AverageCTR = &ctr
	} else if len(rows) > 0 {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningZeroImpressions,
			Message: "Total impressions is zero; average CTR is not available.",
		})
	}

	return summary, warnings
}

// addCount adds two non-negative counts, saturating at math.MaxInt64
func addCount(total, n int64) (int64, bool) {
	if total > math.MaxInt64-n {
		return math.MaxInt64, false
	}
	return total + n, true
}

// Round2 rounds half away from zero to two decimal places, as shown on the dashboard
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
