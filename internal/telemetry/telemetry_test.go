package telemetry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/straye-as/search-insights/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_IndependentRegistries(t *testing.T) {
	a := telemetry.NewProvider()
	b := telemetry.NewProvider()

	a.Metrics.RecordWarning("empty_table")

	assert.Equal(t, float64(1), testutil.ToFloat64(a.Metrics.WarningsTotal.WithLabelValues("empty_table")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Metrics.WarningsTotal.WithLabelValues("empty_table")))
}

func TestRecordUpload(t *testing.T) {
	p := telemetry.NewProvider()

	p.Metrics.RecordUpload("csv", telemetry.OutcomeLoaded, 42, 10*time.Millisecond)
	p.Metrics.RecordUpload("csv", telemetry.OutcomeParseError, 0, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(p.Metrics.UploadsTotal.WithLabelValues("csv", telemetry.OutcomeLoaded)))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.Metrics.UploadsTotal.WithLabelValues("csv", telemetry.OutcomeParseError)))

	count, err := testutil.GatherAndCount(p.Registry(), "search_insights_upload_rows")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandler(t *testing.T) {
	p := telemetry.NewProvider()
	p.Metrics.RecordUpload("xlsx", telemetry.OutcomeLoaded, 3, time.Millisecond)

	w := httptest.NewRecorder()
	p.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `search_insights_uploads_total{format="xlsx",outcome="loaded"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
