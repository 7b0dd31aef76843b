package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/straye-as/search-insights/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV reads a comma separated export. Every row must have as many fields as the header.
func readCSV(r io.Reader) ([]string, []sourceRecord, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, &domain.ParseError{Err: domain.ErrEmptyFile}
	}
	if err != nil {
		return nil, nil, csvParseError(err)
	}

	var records []sourceRecord
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, csvParseError(err)
		}
		line, _ := cr.FieldPos(0)
		records = append(records, sourceRecord{line: line, fields: fields})
	}

	return header, records, nil
}

func csvParseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &domain.ParseError{Line: pe.Line, Err: pe.Err}
	}
	return &domain.ParseError{Err: err}
}
