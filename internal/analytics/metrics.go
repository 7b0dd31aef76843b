package analytics

import (
	"strconv"

	"github.com/straye-as/search-insights/internal/domain"
)

// NotAvailable is displayed for metrics the data cannot define
const NotAvailable = "N/A"

// Metric labels, in display order
const (
	LabelTotalClicks      = "Total Clicks"
	LabelTotalImpressions = "Total Impressions"
	LabelAverageCTR       = "Average CTR (%)"
	LabelAveragePosition  = "Average Position"
)

// MetricCards formats the summary for display. Averages are rounded to two decimals.
func MetricCards(s domain.Summary) []domain.MetricCard {
	return []domain.MetricCard{
		{Label: LabelTotalClicks, Display: strconv.FormatInt(s.TotalClicks, 10), Available: true},
		{Label: LabelTotalImpressions, Display: strconv.FormatInt(s.TotalImpressions, 10), Available: true},
		optionalCard(LabelAverageCTR, s.AverageCTR),
		optionalCard(LabelAveragePosition, s.AveragePosition),
	}
}

func optionalCard(label string, v *float64) domain.MetricCard {
	if v == nil {
		return domain.MetricCard{Label: label, Display: NotAvailable}
	}
	return domain.MetricCard{
		Label:     label,
		Display:   strconv.FormatFloat(Round2(*v), 'f', 2, 64),
		Available: true,
	}
}
