package render

import (
	"hash/fnv"
	"math"
	"strconv"

	"github.com/straye-as/search-insights/internal/domain"
)

const (
	chartWidth    = 720.0
	barRowHeight  = 28.0
	barLabelWidth = 200.0
	barValueWidth = 60.0
	scatterHeight = 400.0
	scatterPad    = 56.0
	minRadius     = 3.0
	maxRadius     = 20.0
	tickCount     = 5
)

// palette is a categorical colour cycle for scatter points
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

type svgBar struct {
	Y      float64
	Width  float64
	Label  string
	Value  string
	TextY  float64
	ValueX float64
}

type svgPoint struct {
	CX, CY, R float64
	Color     string
	Title     string
}

type svgTick struct {
	Pos   float64
	Label string
}

// chartLayout is a chart spec resolved to pixel coordinates
type chartLayout struct {
	Spec    domain.ChartSpec
	Width   float64
	Height  float64
	Empty   bool
	Bars    []svgBar
	Points  []svgPoint
	XTicks  []svgTick
	YTicks  []svgTick
	PlotX0  float64
	PlotX1  float64
	PlotY0  float64
	PlotY1  float64
	BarLeft float64
}

func layoutChart(spec domain.ChartSpec) chartLayout {
	if spec.Kind == domain.ChartKindScatter {
		return layoutScatter(spec)
	}
	return layoutBar(spec)
}

func layoutBar(spec domain.ChartSpec) chartLayout {
	l := chartLayout{
		Spec:    spec,
		Width:   chartWidth,
		Height:  math.Max(barRowHeight, float64(len(spec.Points))*barRowHeight),
		Empty:   len(spec.Points) == 0,
		BarLeft: barLabelWidth,
	}
	if l.Empty {
		return l
	}

	maxValue := 0.0
	for _, p := range spec.Points {
		maxValue = math.Max(maxValue, p.Y)
	}
	plotWidth := chartWidth - barLabelWidth - barValueWidth

	for i, p := range spec.Points {
		width := 0.0
		if maxValue > 0 {
			width = p.Y / maxValue * plotWidth
		}
		y := float64(i) * barRowHeight
		l.Bars = append(l.Bars, svgBar{
			Y:      y + 4,
			Width:  width,
			Label:  truncate(p.Category, 28),
			Value:  formatNumber(p.Y),
			TextY:  y + barRowHeight/2 + 4,
			ValueX: barLabelWidth + width + 6,
		})
	}
	return l
}

func layoutScatter(spec domain.ChartSpec) chartLayout {
	l := chartLayout{
		Spec:   spec,
		Width:  chartWidth,
		Height: scatterHeight,
		Empty:  len(spec.Points) == 0,
		PlotX0: scatterPad,
		PlotX1: chartWidth - scatterPad/2,
		PlotY0: scatterHeight - scatterPad,
		PlotY1: scatterPad / 2,
	}
	if l.Empty {
		return l
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMax, sizeMax := 0.0, 0.0
	for _, p := range spec.Points {
		xMin = math.Min(xMin, p.X)
		xMax = math.Max(xMax, p.X)
		yMax = math.Max(yMax, p.Y)
		sizeMax = math.Max(sizeMax, p.Size)
	}
	if xMax == xMin {
		xMin, xMax = xMin-1, xMax+1
	}
	if yMax == 0 {
		yMax = 1
	}

	scaleX := func(v float64) float64 {
		return l.PlotX0 + (v-xMin)/(xMax-xMin)*(l.PlotX1-l.PlotX0)
	}
	scaleY := func(v float64) float64 {
		return l.PlotY0 - v/yMax*(l.PlotY0-l.PlotY1)
	}

	for _, p := range spec.Points {
		r := minRadius
		if sizeMax > 0 {
			r += (maxRadius - minRadius) * math.Sqrt(p.Size/sizeMax)
		}
		l.Points = append(l.Points, svgPoint{
			CX:    scaleX(p.X),
			CY:    scaleY(p.Y),
			R:     r,
			Color: colorFor(p.Category),
			Title: p.Category + " (position " + formatNumber(p.X) + ", CTR " + formatNumber(p.Y) + "%, " +
				formatNumber(p.Size) + " impressions)",
		})
	}

	for i := 0; i <= tickCount; i++ {
		fx := xMin + (xMax-xMin)*float64(i)/tickCount
		fy := yMax * float64(i) / tickCount
		l.XTicks = append(l.XTicks, svgTick{Pos: scaleX(fx), Label: formatNumber(fx)})
		l.YTicks = append(l.YTicks, svgTick{Pos: scaleY(fy), Label: formatNumber(fy)})
	}

	return l
}

// colorFor gives every query a stable colour
func colorFor(category string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(category))
	return palette[h.Sum32()%uint32(len(palette))]
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
