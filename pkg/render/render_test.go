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
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfDates = regexp.MustCompile(`/(CreationDate|ModDate) ?\([^)]*\)`)

func annotated(offset float64, start, end int) common.AnnotatedSeries {
	ts := common.NewTimeSeries([]string{"LATENCY", "THROUGHPUT"})
	for i := 0; i < 20; i++ {
		ts.Index = append(ts.Index, float64(i))
		ts.Columns["LATENCY"] = append(ts.Columns["LATENCY"], offset+float64(i%5))
		ts.Columns["THROUGHPUT"] = append(ts.Columns["THROUGHPUT"], 1000-offset*float64(i%3))
	}

	as := common.NewAnnotatedSeries(ts)
	if start >= 0 {
		as.Labels[start] = common.Start
	}
	if end >= 0 {
		as.Labels[end] = common.End
	}

	return as
}

func testChart() Chart {
	return Chart{
		Metric: "LATENCY",
		XLabel: "Elapsed Time (seconds)",
		YLabel: "Latency (ms)",
		YLim:   &[2]float64{0, 50},
		Panels: []Panel{
			{Label: "Stop and Copy TPC-C", Series: annotated(10, 5, 12)},
			{Label: "Squall TPC-C", Series: annotated(20, 6, -1)},
		},
	}
}

func TestRenderWritesPDF(t *testing.T) {
	r := NewRenderer(DefaultStyleTable(), nil, "")
	path := filepath.Join(t.TempDir(), "figs", "tpcTSDmeanLat.pdf")

	require.NoError(t, r.Render(testChart(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer(DefaultStyleTable(), color.Black, "")
	dir := t.TempDir()

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		path := filepath.Join(dir, "chart.pdf")
		require.NoError(t, r.Render(testChart(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		outputs = append(outputs, pdfDates.ReplaceAll(data, nil))
	}

	assert.True(t, bytes.Equal(outputs[0], outputs[1]), "rendering the same chart twice produced different PDFs")
}

func TestRenderWithoutMarkersOrYLim(t *testing.T) {
	r := NewRenderer(DefaultStyleTable(), nil, "")
	chart := testChart()
	chart.Metric = "THROUGHPUT"
	chart.YLim = nil
	chart.Panels[0].Series = annotated(10, -1, -1)

	var buf bytes.Buffer
	require.NoError(t, r.WriteTo(chart, &buf))
	assert.NotZero(t, buf.Len())
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(DefaultStyleTable(), nil, "")

	var buf bytes.Buffer
	assert.Error(t, r.WriteTo(Chart{Metric: "LATENCY"}, &buf))

	chart := testChart()
	chart.Metric = "ABORTS"
	assert.Error(t, r.WriteTo(chart, &buf))

	chart = testChart()
	chart.Panels[1].Series = common.NewAnnotatedSeries(common.NewTimeSeries([]string{"LATENCY"}))
	assert.Error(t, r.WriteTo(chart, &buf))
}

func TestRenderDisplayWithoutViewer(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	r := NewRenderer(DefaultStyleTable(), nil, "")

	require.NoError(t, r.Render(testChart(), ""))

	written, err := filepath.Glob(filepath.Join(tmp, "tsdplot-*.pdf"))
	require.NoError(t, err)
	assert.Len(t, written, 1)
}

func TestRenderSkipsMissingSamples(t *testing.T) {
	r := NewRenderer(DefaultStyleTable(), nil, "")
	chart := testChart()
	chart.YLim = nil
	latency := chart.Panels[0].Series.Series.Columns["LATENCY"]
	latency[0] = math.NaN()
	latency[7] = math.NaN()
	latency[8] = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, r.WriteTo(chart, &buf))

	for i := range latency {
		latency[i] = math.NaN()
	}
	assert.Error(t, r.WriteTo(chart, &buf))
}

func TestSegments(t *testing.T) {
	nan := math.NaN()
	parts := segments([]float64{1, 2, 3, 4, 5, 6}, []float64{nan, 10, 11, nan, nan, 12})

	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 2)
	assert.Equal(t, float64(2), parts[0][0].X)
	assert.Len(t, parts[1], 1)
	assert.Equal(t, float64(12), parts[1][0].Y)

	assert.Empty(t, segments([]float64{1}, []float64{nan}))
}

func TestStyleTable(t *testing.T) {
	st := DefaultStyleTable()

	assert.Equal(t, common.KindSystem, st.KindOf("Squall TPC-C", ""))
	assert.Equal(t, common.KindBaseline, st.KindOf("Stop and Copy TPC-C", ""))
	assert.Equal(t, common.KindSystem, st.KindOf("Stop and Copy TPC-C", common.KindSystem))

	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, st.StyleOf("Stop and Copy TPC-C", "").Color)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, st.StyleOf("Squall TPC-C", "").Color)
	assert.Equal(t, color.Black, st.StyleOf("x", "unknown").Color)
}

func TestMaxTicks(t *testing.T) {
	ticks := maxTicks{Bins: 4}.Ticks(0, 2000)

	var labels []string
	for _, tick := range ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"0", "500", "1000", "1500", "2000"}, labels)

	ticks = maxTicks{Bins: 4}.Ticks(0, 1)
	assert.LessOrEqual(t, len(ticks), 5)
	assert.Equal(t, "0.25", ticks[1].Label)

	ticks = unlabelled{maxTicks{Bins: 4}}.Ticks(0, 2000)
	for _, tick := range ticks {
		assert.Empty(t, tick.Label)
	}
}
