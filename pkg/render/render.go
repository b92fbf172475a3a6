/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/eth-easl/tsdplot/pkg/common"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

const yBins = 4

var (
	initDashes = []vg.Length{vg.Points(4), vg.Points(2)}
	endDashes  = []vg.Length{vg.Points(1), vg.Points(1.5)}
)

// Panel is one series of a chart.
type Panel struct {
	Label  string
	Kind   string
	Series common.AnnotatedSeries
}

// Chart is a stack of panels showing the same metric on shared axes.
type Chart struct {
	Metric string
	XLabel string
	YLabel string
	YLim   *[2]float64

	Width  vg.Length
	Height vg.Length

	Panels []Panel
}

type Renderer struct {
	Styles      StyleTable
	MarkerColor color.Color
	Viewer      string
}

func NewRenderer(styles StyleTable, markerColor color.Color, viewer string) *Renderer {
	if markerColor == nil {
		markerColor = color.Black
	}

	return &Renderer{
		Styles:      styles,
		MarkerColor: markerColor,
		Viewer:      viewer,
	}
}

// Render writes chart as a PDF to path. With an empty path the PDF goes to a
// temporary file that is opened with the configured viewer.
func (r *Renderer) Render(chart Chart, path string) error {
	if path == "" {
		return r.display(chart)
	}

	if dir := filepath.Dir(path); dir != "" {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			log.Infof("Creating the output directory %s", dir)
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return err
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := r.WriteTo(chart, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Infof("Wrote %s chart with %d panels to %s", chart.Metric, len(chart.Panels), path)

	return nil
}

func (r *Renderer) display(chart Chart) error {
	f, err := os.CreateTemp("", "tsdplot-*.pdf")
	if err != nil {
		return err
	}
	if err := r.WriteTo(chart, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if r.Viewer == "" {
		log.Infof("No viewer configured, chart left at %s", f.Name())
		return nil
	}

	log.Debugf("Opening %s with %s", f.Name(), r.Viewer)
	return exec.Command(r.Viewer, f.Name()).Start()
}

// WriteTo draws chart as a single PDF page on w.
func (r *Renderer) WriteTo(chart Chart, w io.Writer) error {
	if len(chart.Panels) == 0 {
		return fmt.Errorf("chart %q has no panels", chart.Metric)
	}

	width, height := chart.Width, chart.Height
	if width == 0 {
		width = common.DefaultWidthInches * vg.Inch
	}
	if height == 0 {
		height = common.DefaultHeightInches * vg.Inch
	}

	plots, err := r.buildPlots(chart)
	if err != nil {
		return err
	}

	canvas := vgpdf.New(width, height)
	dc := draw.New(canvas)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Points(1),
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(8),
	}

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}

	canvases := plot.Align(grid, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	_, err = canvas.WriteTo(w)
	return err
}

func (r *Renderer) buildPlots(chart Chart) ([]*plot.Plot, error) {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)

	values := make([][]float64, len(chart.Panels))
	for i, panel := range chart.Panels {
		column, err := panel.Series.Series.Column(chart.Metric)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", panel.Label, err)
		}
		if len(column) == 0 {
			return nil, fmt.Errorf("panel %q: series is empty", panel.Label)
		}
		values[i] = column

		finite := finiteValues(column)
		if len(finite) == 0 {
			return nil, fmt.Errorf("panel %q: no %s values to draw", panel.Label, chart.Metric)
		}

		index := panel.Series.Series.Index
		xMin = math.Min(xMin, index[0])
		xMax = math.Max(xMax, index[len(index)-1])
		yMin = math.Min(yMin, floats.Min(finite))
		yMax = math.Max(yMax, floats.Max(finite))
	}

	if chart.YLim != nil {
		yMin, yMax = chart.YLim[0], chart.YLim[1]
	}
	if yMin == yMax {
		yMin, yMax = yMin-1, yMax+1
	}

	initLegend, endLegend := common.InitLegend, common.EndLegend
	plots := make([]*plot.Plot, len(chart.Panels))
	for i, panel := range chart.Panels {
		p := plot.New()
		p.Legend.Top = true
		p.Y.Label.Text = chart.YLabel
		p.Y.Tick.Marker = maxTicks{Bins: yBins}
		if i == len(chart.Panels)-1 {
			p.X.Label.Text = chart.XLabel
		} else {
			p.X.Tick.Marker = unlabelled{plot.DefaultTicks{}}
		}

		style := r.Styles.StyleOf(panel.Label, panel.Kind)
		for j, segment := range segments(panel.Series.Series.Index, values[i]) {
			curve, err := plotter.NewLine(segment)
			if err != nil {
				return nil, fmt.Errorf("panel %q: %w", panel.Label, err)
			}
			curve.LineStyle.Color = style.Color
			curve.LineStyle.Width = style.Width
			p.Add(curve)
			if j == 0 {
				p.Legend.Add(panel.Label, curve)
			}
		}

		if row, ok := panel.Series.RowOf(common.Start); ok {
			marker, err := r.marker(panel.Series.Series.Index[row], yMin, yMax, initDashes)
			if err != nil {
				return nil, err
			}
			p.Add(marker)
			if initLegend != "" {
				p.Legend.Add(initLegend, marker)
				initLegend = ""
			}

			if row, ok := panel.Series.RowOf(common.End); ok {
				marker, err := r.marker(panel.Series.Series.Index[row], yMin, yMax, endDashes)
				if err != nil {
					return nil, err
				}
				p.Add(marker)
				if endLegend != "" {
					p.Legend.Add(endLegend, marker)
					endLegend = ""
				}
			}
		} else {
			log.Debugf("Panel %q has no reconfiguration marker", panel.Label)
		}

		p.X.Min, p.X.Max = xMin, xMax
		p.Y.Min, p.Y.Max = yMin, yMax
		plots[i] = p
	}

	return plots, nil
}

func (r *Renderer) marker(x, yMin, yMax float64, dashes []vg.Length) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = r.MarkerColor
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = dashes

	return line, nil
}

// segments splits the curve at NaN values so that missing samples show up as
// gaps in the line.
func segments(x, y []float64) []plotter.XYs {
	var out []plotter.XYs
	var current plotter.XYs
	for i := range x {
		if math.IsNaN(y[i]) {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(current) > 0 {
		out = append(out, current)
	}

	return out
}

func finiteValues(values []float64) []float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	return finite
}
