package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/straye-as/search-insights/internal/config"
	"github.com/straye-as/search-insights/internal/domain"
	"github.com/straye-as/search-insights/internal/http/handler"
	"github.com/straye-as/search-insights/internal/ingest"
	"github.com/straye-as/search-insights/internal/render"
	"github.com/straye-as/search-insights/internal/service"
	"github.com/straye-as/search-insights/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const exportHeader = "Query,Clicks,Impressions,CTR,Position\n"

func setupHandler(t *testing.T, maxUploadBytes int64) *handler.DashboardHandler {
	t.Helper()

	svc := service.NewDashboardService(
		ingest.NewParser(zap.NewNop()),
		telemetry.NewProvider().Metrics,
		&config.UploadConfig{MaxUploadSizeMB: 1, AllowedExtensions: []string{".csv", ".txt", ".xlsx"}},
		&config.AnalyticsConfig{TopN: 10},
		zap.NewNop(),
	)
	page, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	return handler.NewDashboardHandler(svc, page, render.NewJSONRenderer(), maxUploadBytes, zap.NewNop())
}

func multipartRequest(t *testing.T, path, field, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("comment", "no file here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) domain.APIError {
	t.Helper()
	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestDashboardHandler_GetIdle(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	h.GetIdle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var idle domain.IdleView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &idle))
	assert.Equal(t, "Awaiting CSV file upload. Please upload your Google Search Console data.", idle.Notice)
}

func TestDashboardHandler_Page(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Page(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Awaiting CSV file upload")
}

func TestDashboardHandler_PostUpload(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := multipartRequest(t, "/api/v1/dashboard/upload", "file", "export.csv", exportHeader+
		"shoe,10,100,10.0,5.0\n"+
		"boot,5,50,10.0,8.0\n")
	w := httptest.NewRecorder()
	h.PostUpload(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view domain.ReportView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "export.csv", view.Filename)
	assert.Equal(t, "15", view.Metrics[0].Display)
	assert.Equal(t, "150", view.Metrics[1].Display)
	assert.Equal(t, "10.00", view.Metrics[2].Display)
	assert.Equal(t, "6.50", view.Metrics[3].Display)
	assert.Equal(t, []domain.KeywordClicks{{Query: "shoe", Clicks: 10}, {Query: "boot", Clicks: 5}}, view.TopKeywords)
	assert.Equal(t, domain.ChartKindScatter, view.Charts.CTRByPosition.Kind)
}

func TestDashboardHandler_UploadRendersPage(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := multipartRequest(t, "/upload", "file", "export.csv", exportHeader+"shoe,10,100,10.0,5.0\n")
	w := httptest.NewRecorder()
	h.Upload(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Performance Overview")
	assert.Contains(t, w.Body.String(), "shoe")
}

func TestDashboardHandler_UploadErrorRendersPage(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := multipartRequest(t, "/upload", "file", "export.csv", "Query,Clicks\nshoe,1\n")
	w := httptest.NewRecorder()
	h.Upload(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Position")
	assert.NotContains(t, w.Body.String(), "Performance Overview")
}

func TestDashboardHandler_PostUploadErrors(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		filename   string
		content    string
		status     int
		errorType  string
		detailPart string
	}{
		{
			name:       "missing column",
			field:      "file",
			filename:   "export.csv",
			content:    "Query,Clicks,Impressions,CTR\nshoe,1,10,10\n",
			status:     http.StatusUnprocessableEntity,
			errorType:  domain.ErrorTypeSchema,
			detailPart: "Position",
		},
		{
			name:       "malformed value",
			field:      "file",
			filename:   "export.csv",
			content:    exportHeader + "shoe,lots,10,10,1\n",
			status:     http.StatusBadRequest,
			errorType:  domain.ErrorTypeParse,
			detailPart: "line 2",
		},
		{
			name:       "empty file",
			field:      "file",
			filename:   "export.csv",
			content:    "",
			status:     http.StatusBadRequest,
			errorType:  domain.ErrorTypeParse,
			detailPart: "file is empty",
		},
		{
			name:       "unsupported extension",
			field:      "file",
			filename:   "export.pdf",
			content:    exportHeader,
			status:     http.StatusUnsupportedMediaType,
			errorType:  domain.ErrorTypeUnsupportedFormat,
			detailPart: ".pdf",
		},
		{
			name:       "no file",
			status:     http.StatusBadRequest,
			errorType:  domain.ErrorTypeBadRequest,
			detailPart: "file field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupHandler(t, 1<<20)

			req := multipartRequest(t, "/api/v1/dashboard/upload", tt.field, tt.filename, tt.content)
			w := httptest.NewRecorder()
			h.PostUpload(w, req)

			assert.Equal(t, tt.status, w.Code)
			apiErr := decodeAPIError(t, w)
			assert.Equal(t, tt.errorType, apiErr.Type)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Contains(t, apiErr.Detail, tt.detailPart)
		})
	}
}

func TestDashboardHandler_ParseErrorDetails(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := multipartRequest(t, "/api/v1/dashboard/upload", "file", "export.csv", exportHeader+"ok,1,10,10,1\nshoe,1,-3,10,1\n")
	w := httptest.NewRecorder()
	h.PostUpload(w, req)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, "3", apiErr.Errors["line"])
	assert.Equal(t, "Impressions", apiErr.Errors["column"])
}

func TestDashboardHandler_FileTooLarge(t *testing.T) {
	h := setupHandler(t, 512)

	req := multipartRequest(t, "/api/v1/dashboard/upload", "file", "export.csv", exportHeader+strings.Repeat("shoe,1,10,10,1\n", 100))
	w := httptest.NewRecorder()
	h.PostUpload(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	apiErr := decodeAPIError(t, w)
	assert.Equal(t, domain.ErrorTypePayloadTooLarge, apiErr.Type)
	assert.Equal(t, "File too large: maximum size is 512 bytes", apiErr.Detail)
}

func TestDashboardHandler_FileTooLargeInMegabytes(t *testing.T) {
	h := setupHandler(t, 2<<20)

	req := multipartRequest(t, "/api/v1/dashboard/upload", "file", "export.csv", exportHeader)
	req.ContentLength = 3 << 20
	w := httptest.NewRecorder()
	h.PostUpload(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File too large: maximum size is 2MB", decodeAPIError(t, w).Detail)
}

func TestDashboardHandler_NotMultipart(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/upload", strings.NewReader(exportHeader))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	h.PostUpload(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrorTypeBadRequest, decodeAPIError(t, w).Type)
}

func TestDashboardHandler_NotFound(t *testing.T) {
	h := setupHandler(t, 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	h.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	apiErr := decodeAPIError(t, w)
	assert.Equal(t, domain.ErrorTypeNotFound, apiErr.Type)
	assert.Contains(t, apiErr.Detail, "/api/v1/nope")
}
