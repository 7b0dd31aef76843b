package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/straye-as/search-insights/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is what the page template receives. Exactly one of Idle, Report or Error is set.
type pageData struct {
	Title   string
	Upload  domain.IdleView
	Idle    *domain.IdleView
	Report  *domain.ReportView
	Error   *domain.ErrorView
	Bar     chartLayout
	Scatter chartLayout
}

// HTMLRenderer renders the single page dashboard with server side SVG charts
type HTMLRenderer struct {
	page *template.Template
}

// NewHTMLRenderer parses the embedded page template
func NewHTMLRenderer() (*HTMLRenderer, error) {
	page, err := template.New("dashboard.html").Funcs(template.FuncMap{
		"accept": func(exts []string) string { return strings.Join(exts, ",") },
		"px":     func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"add":    func(a, b float64) float64 { return a + b },
		"sub":    func(a, b float64) float64 { return a - b },
		"half":   func(v float64) float64 { return v / 2 },
	}).ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &HTMLRenderer{page: page}, nil
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *HTMLRenderer) RenderIdle(w io.Writer, v *domain.IdleView) error {
	return r.page.Execute(w, pageData{Title: v.Title, Upload: *v, Idle: v})
}

func (r *HTMLRenderer) RenderReport(w io.Writer, v *domain.ReportView) error {
	return r.page.Execute(w, pageData{
		Title:   v.Title,
		Upload:  v.Upload,
		Report:  v,
		Bar:     layoutChart(v.Charts.TopKeywords),
		Scatter: layoutChart(v.Charts.CTRByPosition),
	})
}

func (r *HTMLRenderer) RenderError(w io.Writer, v *domain.ErrorView) error {
	return r.page.Execute(w, pageData{Title: v.Title, Upload: v.Upload, Error: v})
}
