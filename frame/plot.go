package frame

import (
	"fmt"
	"math"
	"os"
	"strings"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

// Plot is an HTML line chart.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

// PlotOpt sets a property of the chart layout.
type PlotOpt func(lay *grob.Layout)

// NewPlot returns an empty chart with the legend shown.
func NewPlot(opts ...PlotOpt) *Plot {
	lay := &grob.Layout{Showlegend: grob.True}
	for _, opt := range opts {
		opt(lay)
	}

	return &Plot{Fig: &grob.Fig{Layout: lay}, Lay: lay}
}

// WithSize sets the chart size in pixels. Zero keeps plotly's default.
func WithSize(width, height float64) PlotOpt {
	return func(lay *grob.Layout) {
		lay.Width, lay.Height = math.Max(width, 0), math.Max(height, 0)
	}
}

func WithTitle(title string) PlotOpt {
	return func(lay *grob.Layout) { lay.Title = &grob.LayoutTitle{Text: title} }
}

// WithAxisTitles labels the x and y axes.
func WithAxisTitles(x, y string) PlotOpt {
	return func(lay *grob.Layout) {
		lay.Xaxis = &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: x}}
		lay.Yaxis = &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: y}}
	}
}

// PlotSeries adds a line of y against the dates in x. Non-finite y values become gaps.
func (p *Plot) PlotSeries(x, y Column, seriesName, color string) error {
	if x.DataType() != DTdate || y.DataType() != DTfloat {
		return fmt.Errorf("series plots require a date x and float y, got %s and %s", x.DataType(), y.DataType())
	}

	if x.Len() != y.Len() {
		return fmt.Errorf("series lengths differ: %d and %d", x.Len(), y.Len())
	}

	xs, _ := x.Data().AsString()
	yf, _ := y.Data().AsFloat()

	// encoding/json rejects NaN and Inf
	ys := make([]any, len(yf))
	for ind, v := range yf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		ys[ind] = v
	}

	tr := &grob.Scatter{Name: seriesName, X: xs, Y: ys,
		Mode: grob.ScatterModeLines, Line: &grob.ScatterLine{Color: color}}

	p.Fig.AddTraces(tr)

	return nil
}

// Save writes the chart to fileName, which must end in .html.
func (p *Plot) Save(fileName string) error {
	if !strings.HasSuffix(strings.ToLower(fileName), ".html") {
		return fmt.Errorf("plot file must be .html: %s", fileName)
	}

	// offline.ToHtml drops write errors, so the file is created here first and checked after
	f, e := os.Create(fileName)
	if e != nil {
		return fmt.Errorf("plot: %w", e)
	}

	if e = f.Close(); e != nil {
		return fmt.Errorf("plot: %w", e)
	}

	offline.ToHtml(p.Fig, fileName)

	var fi os.FileInfo
	if fi, e = os.Stat(fileName); e != nil {
		return fmt.Errorf("plot: %w", e)
	}

	if fi.Size() == 0 {
		return fmt.Errorf("plot %s: nothing written", fileName)
	}

	return nil
}
