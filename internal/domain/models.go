package domain

import (
	"time"

	"github.com/google/uuid"
)

// Column names of a Search Console performance export. Matching is case-sensitive.
const (
	ColumnQuery       = "Query"
	ColumnClicks      = "Clicks"
	ColumnImpressions = "Impressions"
	ColumnCTR         = "CTR"
	ColumnPosition    = "Position"
)

// RequiredColumns lists the columns every upload must carry, in reporting order
var RequiredColumns = []string{
	ColumnQuery,
	ColumnClicks,
	ColumnImpressions,
	ColumnCTR,
	ColumnPosition,
}

// SearchPerformanceRow is one query observation from the export
type SearchPerformanceRow struct {
	Query       string  `json:"query"`
	Clicks      int64   `json:"clicks" validate:"gte=0"`
	Impressions int64   `json:"impressions" validate:"gte=0,gtefield=Clicks"`
	CTR         float64 `json:"ctr" validate:"gte=0,lte=100"`
	Position    float64 `json:"position" validate:"gte=1"`
}

// SearchPerformanceTable is an uploaded export after parsing.
// Rows and Records keep source file order. Records holds every source column as text
// for the raw data display; Rows holds the typed required columns.
type SearchPerformanceTable struct {
	Header   []string
	Records  [][]string
	Rows     []SearchPerformanceRow
	Warnings []Warning
}

// Len returns the number of data rows
func (t *SearchPerformanceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// SessionState is the dashboard lifecycle state
type SessionState string

const (
	SessionIdle   SessionState = "idle"
	SessionLoaded SessionState = "loaded"
)

// Session is the per-request dashboard context. It owns at most one table at a time
// and is passed explicitly through the pipeline; nothing keeps it after the response.
type Session struct {
	ID       uuid.UUID
	State    SessionState
	Filename string
	LoadedAt time.Time
	Table    *SearchPerformanceTable
	Report   *Report
}

// NewSession returns a session awaiting an upload
func NewSession() *Session {
	return &Session{
		ID:    uuid.New(),
		State: SessionIdle,
	}
}

// Load replaces whatever the session held with a freshly analyzed upload
func (s *Session) Load(filename string, table *SearchPerformanceTable, report *Report) {
	s.State = SessionLoaded
	s.Filename = filename
	s.LoadedAt = time.Now()
	s.Table = table
	s.Report = report
}

// IsLoaded reports whether the session holds an analyzed table
func (s *Session) IsLoaded() bool {
	return s.State == SessionLoaded && s.Table != nil && s.Report != nil
}
