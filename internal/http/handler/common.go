package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/straye-as/search-insights/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusRequestEntityTooLarge:
		return domain.ErrorTypePayloadTooLarge
	case http.StatusUnsupportedMediaType:
		return domain.ErrorTypeUnsupportedFormat
	default:
		return domain.ErrorTypeInternal
	}
}

// apiErrorFor maps an upload pipeline error to problem details.
// The second return value is false for errors the user cannot fix (internal failures).
func apiErrorFor(err error) (domain.APIError, bool) {
	var (
		schemaErr *domain.SchemaError
		parseErr  *domain.ParseError
		tooLarge  *http.MaxBytesError
	)

	switch {
	case errors.As(err, &schemaErr):
		fields := make(map[string]string, len(schemaErr.Missing))
		for _, col := range schemaErr.Missing {
			fields[col] = "required column is missing"
		}
		return domain.APIError{
			Type:   domain.ErrorTypeSchema,
			Title:  "Missing Required Columns",
			Status: http.StatusUnprocessableEntity,
			Detail: schemaErr.Error(),
			Errors: fields,
		}, true

	case errors.As(err, &parseErr):
		apiErr := domain.APIError{
			Type:   domain.ErrorTypeParse,
			Title:  "Invalid File",
			Status: http.StatusBadRequest,
			Detail: parseErr.Error(),
		}
		if parseErr.Line > 0 || parseErr.Column != "" {
			apiErr.Errors = make(map[string]string)
			if parseErr.Line > 0 {
				apiErr.Errors["line"] = strconv.Itoa(parseErr.Line)
			}
			if parseErr.Column != "" {
				apiErr.Errors["column"] = parseErr.Column
			}
		}
		return apiErr, true

	case errors.Is(err, domain.ErrUnsupportedFormat):
		return domain.APIError{
			Type:   domain.ErrorTypeUnsupportedFormat,
			Title:  "Unsupported File Format",
			Status: http.StatusUnsupportedMediaType,
			Detail: err.Error(),
		}, true

	case errors.As(err, &tooLarge):
		return domain.APIError{
			Type:   domain.ErrorTypePayloadTooLarge,
			Title:  "File Too Large",
			Status: http.StatusRequestEntityTooLarge,
			Detail: "File too large: maximum size is " + formatSize(tooLarge.Limit),
		}, true

	case errors.Is(err, domain.ErrNoFile):
		return domain.APIError{
			Type:   domain.ErrorTypeBadRequest,
			Title:  "No File Uploaded",
			Status: http.StatusBadRequest,
			Detail: "Invalid file upload: file field is required",
		}, true

	default:
		return domain.APIError{
			Type:   domain.ErrorTypeInternal,
			Title:  http.StatusText(http.StatusInternalServerError),
			Status: http.StatusInternalServerError,
			Detail: "Failed to process upload",
		}, false
	}
}

// formatSize prints a byte limit in whole megabytes when it divides evenly, in bytes otherwise
func formatSize(n int64) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return strconv.FormatInt(n/mb, 10) + "MB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
