package domain

import (
	"errors"
	"fmt"
	"strings"
)

// APIError represents a standardized API error with HTTP status code
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// Common error types for RFC 7807 Problem Details
const (
	ErrorTypeParse             = "parse_error"
	ErrorTypeSchema            = "schema_error"
	ErrorTypeBadRequest        = "bad_request"
	ErrorTypeUnsupportedFormat = "unsupported_format"
	ErrorTypePayloadTooLarge   = "payload_too_large"
	ErrorTypeNotFound          = "not_found"
	ErrorTypeInternal          = "internal_error"
)

var (
	// ErrEmptyFile is returned when an upload has no header row at all
	ErrEmptyFile = errors.New("file is empty")

	// ErrUnsupportedFormat is returned when the file extension is not accepted
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoFile is returned when the upload form carries no file
	ErrNoFile = errors.New("no file uploaded")
)

// ParseError reports input that is not well-formed tabular data.
// Line is the 1-based source line (the header is line 1); zero when unknown.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " in column %q", e.Column)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports required columns absent from the header row
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required column(s): " + strings.Join(e.Missing, ", ")
}

// WarningCode classifies a non-fatal data notice
type WarningCode string

const (
	// WarningEmptyTable: the upload has a header but no data rows
	WarningEmptyTable WarningCode = "empty_table"
	// WarningZeroImpressions: average CTR is undefined
	WarningZeroImpressions WarningCode = "zero_impressions"
	// WarningDataQuality: a row breaks an expected range
	WarningDataQuality WarningCode = "data_quality"
	// WarningTotalsOverflow: a column total does not fit an int64
	WarningTotalsOverflow WarningCode = "totals_overflow"
)

// Warning is a non-fatal notice rendered alongside the dashboard.
// Degenerate data (no rows, no impressions) is reported this way instead of failing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
	Line    int         `json:"line,omitempty"`
}
