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

package config

import (
	"github.com/eth-easl/tsdplot/pkg/series"
)

// Configuration lists the experiments to plot. Each Group is one set of
// runs compared side by side; each of its Charts becomes one PDF.
type Configuration struct {
	IndexColumn    string  `json:"IndexColumn" yaml:"index_column"`
	IndexDivisor   float64 `json:"IndexDivisor" yaml:"index_divisor"`
	ResultSuffix   string  `json:"ResultSuffix" yaml:"result_suffix"`
	EventLogSuffix string  `json:"EventLogSuffix" yaml:"event_log_suffix"`
	StartMarker    string  `json:"StartMarker" yaml:"start_marker"`
	EndMarker      string  `json:"EndMarker" yaml:"end_marker"`

	XLabel       string                 `json:"XLabel" yaml:"x_label"`
	MarkerColor  string                 `json:"MarkerColor" yaml:"marker_color"`
	Styles       map[string]StyleConfig `json:"Styles" yaml:"styles"`
	KindMatchers []KindMatcherConfig    `json:"KindMatchers" yaml:"kind_matchers"`
	DefaultKind  string                 `json:"DefaultKind" yaml:"default_kind"`
	WidthInches  float64                `json:"WidthInches" yaml:"width_inches"`
	HeightInches float64                `json:"HeightInches" yaml:"height_inches"`

	OutputDir string `json:"OutputDir" yaml:"output_dir"`
	Viewer    string `json:"Viewer" yaml:"viewer"`

	// Optional
	AnnotatedDir    string `json:"AnnotatedDir" yaml:"annotated_dir"`
	SummaryPath     string `json:"SummaryPath" yaml:"summary_path"`
	MetricsTextfile string `json:"MetricsTextfile" yaml:"metrics_textfile"`

	Groups []Group `json:"Groups" yaml:"groups"`
}

type StyleConfig struct {
	Color       string  `json:"Color" yaml:"color"`
	WidthPoints float64 `json:"WidthPoints" yaml:"width_points"`
}

type KindMatcherConfig struct {
	Substring string `json:"Substring" yaml:"substring"`
	Kind      string `json:"Kind" yaml:"kind"`
}

type Group struct {
	Name     string             `json:"Name" yaml:"name"`
	BaseDir  string             `json:"BaseDir" yaml:"base_dir"`
	Truncate series.Truncation  `json:"Truncate" yaml:"truncate"`
	Series   []SeriesDescriptor `json:"Series" yaml:"series"`
	Charts   []ChartDescriptor  `json:"Charts" yaml:"charts"`
}

type SeriesDescriptor struct {
	Label string `json:"Label" yaml:"label"`
	Path  string `json:"Path" yaml:"path"`
	// Optional, inferred from KindMatchers when empty
	Kind string `json:"Kind" yaml:"kind"`
}

type ChartDescriptor struct {
	Metric string      `json:"Metric" yaml:"metric"`
	YLabel string      `json:"YLabel" yaml:"y_label"`
	YLim   *[2]float64 `json:"YLim" yaml:"y_lim"`
	// Relative to OutputDir; empty opens the chart in Viewer instead
	Output string `json:"Output" yaml:"output"`
}
