package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/straye-as/search-insights/internal/domain"
)

var (
	errEmptyValue = errors.New("empty value")
	errNotNumber  = errors.New("not a number")
	errNotInteger = errors.New("not a whole number")
	errNegative   = errors.New("must not be negative")
	errNotFinite  = errors.New("must be a finite number")
	errOutOfRange = errors.New("exceeds the supported range")
	errTooLarge   = errors.New("column total exceeds the supported range")
)

// maxCount is 2^63, the first whole number an int64 cannot hold
const maxCount = 0x1p63

// columnIndex maps each required column to its position in the header
type columnIndex map[string]int

// indexColumns locates the required columns. Names are trimmed but matched case-sensitively;
// the first occurrence of a duplicated name wins.
func indexColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	idx := make(columnIndex, len(domain.RequiredColumns))
	var missing []string
	for _, col := range domain.RequiredColumns {
		pos, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		idx[col] = pos
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}
	return idx, nil
}

func buildTable(header []string, records []sourceRecord) (*domain.SearchPerformanceTable, error) {
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	cleanHeader := make([]string, len(header))
	for i, name := range header {
		cleanHeader[i] = strings.TrimSpace(name)
	}

	table := &domain.SearchPerformanceTable{
		Header:  cleanHeader,
		Records: make([][]string, 0, len(records)),
		Rows:    make([]domain.SearchPerformanceRow, 0, len(records)),
	}

	var clicks, impressions int64
	for _, rec := range records {
		row, err := parseRow(rec, idx)
		if err != nil {
			return nil, err
		}
		if clicks > math.MaxInt64-row.Clicks {
			return nil, &domain.ParseError{Line: rec.line, Column: domain.ColumnClicks, Err: errTooLarge}
		}
		if impressions > math.MaxInt64-row.Impressions {
			return nil, &domain.ParseError{Line: rec.line, Column: domain.ColumnImpressions, Err: errTooLarge}
		}
		clicks += row.Clicks
		impressions += row.Impressions

		table.Rows = append(table.Rows, row)
		table.Records = append(table.Records, rec.fields)
	}

	return table, nil
}

func parseRow(rec sourceRecord, idx columnIndex) (domain.SearchPerformanceRow, error) {
	cell := func(col string) string {
		return strings.TrimSpace(rec.fields[idx[col]])
	}
	fail := func(col string, err error) error {
		return &domain.ParseError{Line: rec.line, Column: col, Err: err}
	}

	var (
		row domain.SearchPerformanceRow
		err error
	)

	row.Query = cell(domain.ColumnQuery)

	if row.Clicks, err = parseCount(cell(domain.ColumnClicks)); err != nil {
		return row, fail(domain.ColumnClicks, err)
	}
	if row.Impressions, err = parseCount(cell(domain.ColumnImpressions)); err != nil {
		return row, fail(domain.ColumnImpressions, err)
	}
	if row.CTR, err = parsePercent(cell(domain.ColumnCTR)); err != nil {
		return row, fail(domain.ColumnCTR, err)
	}
	if row.Position, err = parseDecimal(cell(domain.ColumnPosition)); err != nil {
		return row, fail(domain.ColumnPosition, err)
	}

	return row, nil
}

// parseCount parses a non-negative whole number that fits an int64. "12.0" is accepted as 12.
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, errEmptyValue
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, errNegative
		}
		return n, nil
	}
	f, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, errNegative
	}
	if f >= maxCount {
		return 0, fmt.Errorf("%w: %q", errOutOfRange, s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", errNotInteger, s)
	}
	return int64(f), nil
}

// parsePercent parses a CTR value, allowing a trailing percent sign ("4.5%")
func parsePercent(s string) (float64, error) {
	return parseDecimal(strings.TrimSpace(strings.TrimSuffix(s, "%")))
}

func parseDecimal(s string) (float64, error) {
	if s == "" {
		return 0, errEmptyValue
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotNumber, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", errNotFinite, s)
	}
	return f, nil
}
