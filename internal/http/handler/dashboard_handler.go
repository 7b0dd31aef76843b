package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/straye-as/search-insights/internal/domain"
	"github.com/straye-as/search-insights/internal/http/middleware"
	"github.com/straye-as/search-insights/internal/logger"
	"github.com/straye-as/search-insights/internal/render"
	"github.com/straye-as/search-insights/internal/service"
	"go.uber.org/zap"
)

// uploadField is the multipart form field carrying the export
const uploadField = "file"

type DashboardHandler struct {
	dashboardService *service.DashboardService
	page             render.Renderer
	api              render.Renderer
	maxUploadBytes   int64
	logger           *zap.Logger
}

func NewDashboardHandler(
	dashboardService *service.DashboardService,
	page render.Renderer,
	api render.Renderer,
	maxUploadBytes int64,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		page:             page,
		api:              api,
		maxUploadBytes:   maxUploadBytes,
		logger:           logger,
	}
}

// Page serves the dashboard in its idle state
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.write(w, h.page, http.StatusOK, func(out io.Writer) error {
		return h.page.RenderIdle(out, h.dashboardService.Idle())
	})
}

// Upload analyzes a file posted from the dashboard page and answers with the loaded page
func (h *DashboardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.page)
}

// @Summary Get idle dashboard
// @Description Returns the upload instructions shown while no file is loaded.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.IdleView
// @Router /dashboard [get]
func (h *DashboardHandler) GetIdle(w http.ResponseWriter, r *http.Request) {
	h.write(w, h.api, http.StatusOK, func(out io.Writer) error {
		return h.api.RenderIdle(out, h.dashboardService.Idle())
	})
}

// @Summary Analyze a Search Console export
// @Description Parses an uploaded performance export and returns the dashboard.
// @Description
// @Description Required columns: Query, Clicks, Impressions, CTR, Position (case-sensitive).
// @Description
// @Description **Metrics:** total clicks, total impressions, average CTR (clicks / impressions * 100)
// @Description and average position (unweighted mean). Averages that the data cannot define are shown
// @Description as N/A with a notice instead of failing.
// @Description
// @Description **Charts:** top 10 queries by clicks (bar) and CTR vs position per query (scatter, sized by impressions).
// @Tags Dashboard
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Search Console export (.csv, .txt or .xlsx)"
// @Success 200 {object} domain.ReportView
// @Failure 400 {object} domain.APIError "Malformed file"
// @Failure 413 {object} domain.APIError "File too large"
// @Failure 415 {object} domain.APIError "Unsupported file extension"
// @Failure 422 {object} domain.APIError "Missing required columns"
// @Router /dashboard/upload [post]
func (h *DashboardHandler) PostUpload(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.api)
}

// NotFound answers unknown API routes with problem details
func (h *DashboardHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "No route for "+r.Method+" "+r.URL.Path)
}

func (h *DashboardHandler) upload(w http.ResponseWriter, r *http.Request, renderer render.Renderer) {
	// Limit request size
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	upload, cleanup, err := h.readUpload(r)
	if err != nil {
		h.fail(w, r, renderer, err)
		return
	}
	defer cleanup()

	session := domain.NewSession()
	if err := h.dashboardService.Process(r.Context(), session, upload); err != nil {
		h.fail(w, r, renderer, err)
		return
	}

	view, err := h.dashboardService.View(session)
	if err != nil {
		h.fail(w, r, renderer, err)
		return
	}

	h.write(w, renderer, http.StatusOK, func(out io.Writer) error {
		return renderer.RenderReport(out, view)
	})
}

// readUpload extracts the file part. The body limit equals the in-memory limit, so the
// multipart reader never spills the upload to a temporary file.
func (h *DashboardHandler) readUpload(r *http.Request) (service.Upload, func(), error) {
	if r.ContentLength > h.maxUploadBytes {
		return service.Upload{}, nil, &http.MaxBytesError{Limit: h.maxUploadBytes}
	}
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return service.Upload{}, nil, err
		}
		return service.Upload{}, nil, domain.ErrNoFile
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		_ = r.MultipartForm.RemoveAll()
		return service.Upload{}, nil, domain.ErrNoFile
	}

	cleanup := func() {
		_ = file.Close()
		_ = r.MultipartForm.RemoveAll()
	}

	return service.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	}, cleanup, nil
}

func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, renderer render.Renderer, err error) {
	apiErr, expected := apiErrorFor(err)
	if !expected {
		logger.WithRequest(h.logger, r.Method, r.URL.Path, r.Header.Get(middleware.RequestIDHeader)).
			Error("failed to process upload", zap.Error(err))
	}

	view := &domain.ErrorView{
		Title:  http.StatusText(apiErr.Status),
		Error:  apiErr,
		Upload: *h.dashboardService.Idle(),
	}
	h.write(w, renderer, apiErr.Status, func(out io.Writer) error {
		return renderer.RenderError(out, view)
	})
}

func (h *DashboardHandler) write(w http.ResponseWriter, renderer render.Renderer, status int, fn func(io.Writer) error) {
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	if err := fn(w); err != nil {
		h.logger.Error("failed to render view", zap.Error(err), zap.Int("status", status))
	}
}
