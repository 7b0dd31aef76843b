package ingest

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/straye-as/search-insights/internal/domain"
)

// maxQualityWarnings caps per-row notices; the remainder is summarised in one warning
const maxQualityWarnings = 20

// checkQuality runs the row struct validation and turns each violation into a
// non-fatal warning. Rows are kept as uploaded.
func (p *Parser) checkQuality(table *domain.SearchPerformanceTable, records []sourceRecord) []domain.Warning {
	var (
		warnings   []domain.Warning
		suppressed int
	)

	for i, row := range table.Rows {
		err := p.validate.Struct(row)
		if err == nil {
			continue
		}

		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			continue
		}

		for _, fe := range ve {
			if len(warnings) >= maxQualityWarnings {
				suppressed++
				continue
			}
			warnings = append(warnings, domain.Warning{
				Code:    domain.WarningDataQuality,
				Line:    records[i].line,
				Message: qualityMessage(row, fe),
			})
		}
	}

	if suppressed > 0 {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningDataQuality,
			Message: fmt.Sprintf("%d more data quality issue(s) not listed", suppressed),
		})
	}

	return warnings
}

func qualityMessage(row domain.SearchPerformanceRow, fe validator.FieldError) string {
	switch fe.Field() {
	case "Impressions":
		if fe.Tag() == "gtefield" {
			return fmt.Sprintf("query %q has fewer impressions (%d) than clicks (%d)", row.Query, row.Impressions, row.Clicks)
		}
	case "CTR":
		return fmt.Sprintf("query %q has CTR %.2f outside the 0-100 range", row.Query, row.CTR)
	case "Position":
		return fmt.Sprintf("query %q has average position %.2f, expected 1 or more", row.Query, row.Position)
	}
	return fmt.Sprintf("query %q: %s failed %s validation", row.Query, fe.Field(), fe.Tag())
}
