package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/straye-as/search-insights/internal/domain"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of a workbook. The first non-blank row is the header.
// excelize drops trailing empty cells, so short rows are padded to the header width.
func readXLSX(r io.Reader) ([]string, []sourceRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, &domain.ParseError{Err: fmt.Errorf("invalid spreadsheet: %w", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, &domain.ParseError{Err: domain.ErrEmptyFile}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, &domain.ParseError{Err: fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)}
	}

	var (
		header  []string
		records []sourceRecord
	)
	for i, row := range rows {
		line := i + 1
		if isBlankRow(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		if len(row) > len(header) {
			return nil, nil, &domain.ParseError{
				Line: line,
				Err:  fmt.Errorf("wrong number of fields: row has %d, header has %d", len(row), len(header)),
			}
		}
		fields := make([]string, len(header))
		copy(fields, row)
		records = append(records, sourceRecord{line: line, fields: fields})
	}

	if header == nil {
		return nil, nil, &domain.ParseError{Err: domain.ErrEmptyFile}
	}

	return header, records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
