// Package ingest turns an uploaded Search Console export into a validated
// domain.SearchPerformanceTable. CSV is the primary format; spreadsheet exports
// (.xlsx) are read through excelize. Nothing is written to disk.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/straye-as/search-insights/internal/domain"
	"go.uber.org/zap"
)

// Format is the container format of an upload
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var extensionFormats = map[string]Format{
	".csv":  FormatCSV,
	".txt":  FormatCSV,
	".xlsx": FormatXLSX,
}

// DetectFormat maps a filename to a Format, applying the allowed extension filter.
// An empty allowed list accepts every known extension.
func DetectFormat(filename string, allowed []string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	format, known := extensionFormats[ext]
	if !known {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if len(allowed) == 0 {
		return format, nil
	}
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
}

// sourceRecord is one data row with the line it came from
type sourceRecord struct {
	line   int
	fields []string
}

// Parser reads and validates uploads
type Parser struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewParser creates a parser
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{
		validate: validator.New(),
		logger:   logger,
	}
}

// Parse reads r as the given format and returns the typed table.
// Malformed input yields *domain.ParseError, absent required columns *domain.SchemaError.
// A header with no data rows is a valid, empty table.
func (p *Parser) Parse(r io.Reader, format Format) (*domain.SearchPerformanceTable, error) {
	var (
		header  []string
		records []sourceRecord
		err     error
	)

	switch format {
	case FormatCSV:
		header, records, err = readCSV(r)
	case FormatXLSX:
		header, records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	table, err := buildTable(header, records)
	if err != nil {
		return nil, err
	}

	table.Warnings = p.checkQuality(table, records)

	p.logger.Debug("Parsed upload",
		zap.String("format", string(format)),
		zap.Int("columns", len(table.Header)),
		zap.Int("rows", table.Len()),
		zap.Int("warnings", len(table.Warnings)),
	)

	return table, nil
}
