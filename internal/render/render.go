// Package render draws dashboard views. The views are plain data built by the service
// layer; a Renderer only decides how they look on the wire.
package render

import (
	"encoding/json"
	"io"

	"github.com/straye-as/search-insights/internal/domain"
)

// Renderer writes a view to w
type Renderer interface {
	ContentType() string
	RenderIdle(w io.Writer, v *domain.IdleView) error
	RenderReport(w io.Writer, v *domain.ReportView) error
	RenderError(w io.Writer, v *domain.ErrorView) error
}

// JSONRenderer encodes views as JSON for API clients
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func (r *JSONRenderer) RenderIdle(w io.Writer, v *domain.IdleView) error {
	return json.NewEncoder(w).Encode(v)
}

func (r *JSONRenderer) RenderReport(w io.Writer, v *domain.ReportView) error {
	return json.NewEncoder(w).Encode(v)
}

// RenderError writes only the problem details object, matching the API error shape
func (r *JSONRenderer) RenderError(w io.Writer, v *domain.ErrorView) error {
	return json.NewEncoder(w).Encode(v.Error)
}
