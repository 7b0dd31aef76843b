package domain

import (
	"time"

	"github.com/google/uuid"
)

// Summary holds the dataset-wide scalar metrics.
// AverageCTR and AveragePosition are nil when the data cannot define them
// (zero impressions, zero rows); a matching Warning is attached to the report.
type Summary struct {
	TotalClicks      int64    `json:"totalClicks"`
	TotalImpressions int64    `json:"totalImpressions"`
	AverageCTR       *float64 `json:"averageCtr"`      // total clicks / total impressions * 100
	AveragePosition  *float64 `json:"averagePosition"` // unweighted mean of Position
}

// KeywordClicks is one entry of the top keywords ranking
type KeywordClicks struct {
	Query  string `json:"query"`
	Clicks int64  `json:"clicks"`
}

// ChartKind identifies how a chart spec is drawn
type ChartKind string

const (
	ChartKindBar     ChartKind = "bar"
	ChartKindScatter ChartKind = "scatter"
)

// ChartPoint is a single mark. Bar charts use Category and Y; scatter charts use all fields.
type ChartPoint struct {
	Category string  `json:"category"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
}

// ChartSpec is a declarative chart description, independent of any display engine
type ChartSpec struct {
	Kind       ChartKind    `json:"kind"`
	Title      string       `json:"title"`
	XField     string       `json:"xField"`
	YField     string       `json:"yField"`
	SizeField  string       `json:"sizeField,omitempty"`
	ColorField string       `json:"colorField,omitempty"`
	XLabel     string       `json:"xLabel"`
	YLabel     string       `json:"yLabel"`
	Points     []ChartPoint `json:"points"`
}

// ReportCharts groups the two dashboard charts
type ReportCharts struct {
	TopKeywords   ChartSpec `json:"topKeywords"`
	CTRByPosition ChartSpec `json:"ctrByPosition"`
}

// Report is everything computed from one uploaded table
type Report struct {
	ID              uuid.UUID       `json:"id"`
	GeneratedAt     time.Time       `json:"generatedAt"`
	RowCount        int             `json:"rowCount"`
	Summary         Summary         `json:"summary"`
	TopKeywords     []KeywordClicks `json:"topKeywords"`
	Charts          ReportCharts    `json:"charts"`
	Recommendations []string        `json:"recommendations"`
	Warnings        []Warning       `json:"warnings"`
}

// MetricCard is one labelled scalar on the dashboard
type MetricCard struct {
	Label     string `json:"label"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// RawTable is the uploaded data as shown in the raw data panel
type RawTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// IdleView is shown while no file is loaded
type IdleView struct {
	Title             string   `json:"title"`
	Notice            string   `json:"notice"`
	AllowedExtensions []string `json:"allowedExtensions"`
	MaxUploadSizeMB   int64    `json:"maxUploadSizeMb"`
}

// ReportView is the loaded dashboard
type ReportView struct {
	Title           string          `json:"title"`
	SessionID       uuid.UUID       `json:"sessionId"`
	Filename        string          `json:"filename"`
	RawData         RawTable        `json:"rawData"`
	Metrics         []MetricCard    `json:"metrics"`
	TopKeywords     []KeywordClicks `json:"topKeywords"`
	Charts          ReportCharts    `json:"charts"`
	Recommendations []string        `json:"recommendations"`
	Notices         []Warning       `json:"notices"`
	Upload          IdleView        `json:"upload"`
}

// ErrorView is a failed upload. The upload form is shown again so the user can retry.
type ErrorView struct {
	Title  string   `json:"title"`
	Error  APIError `json:"error"`
	Upload IdleView `json:"upload"`
}
