package analytics

import (
	"sort"

	"github.com/straye-as/search-insights/internal/domain"
)

// DefaultTopN is the number of queries in the top keywords ranking
const DefaultTopN = 10

// TopByClicks returns the n rows with the most clicks, highest first.
// Rows with equal clicks keep their source order.
func TopByClicks(rows []domain.SearchPerformanceRow, n int) []domain.KeywordClicks {
	if n <= 0 || len(rows) == 0 {
		return []domain.KeywordClicks{}
	}

	ranked := make([]domain.KeywordClicks, len(rows))
	for i, row := range rows {
		ranked[i] = domain.KeywordClicks{Query: row.Query, Clicks: row.Clicks}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Clicks > ranked[j].Clicks
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
