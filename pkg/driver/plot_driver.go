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

package driver

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/eth-easl/tsdplot/pkg/config"
	"github.com/eth-easl/tsdplot/pkg/metric"
	"github.com/eth-easl/tsdplot/pkg/reconfig"
	"github.com/eth-easl/tsdplot/pkg/render"
	"github.com/eth-easl/tsdplot/pkg/series"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
)

type Driver struct {
	Configuration *config.Configuration
	RunID         string

	logger    *log.Entry
	renderer  *render.Renderer
	extractor *reconfig.Extractor
	collector *metric.Collector
	exporter  *metric.Exporter
}

func NewDriver(cfg *config.Configuration) (*Driver, error) {
	renderer, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := log.WithField("run", runID)

	collector := metric.NewCollector()

	extractor := reconfig.NewExtractor(cfg.StartMarker, cfg.EndMarker)
	extractor.Logger = logger
	extractor.OnOutcome = collector.ObserveOutcome

	return &Driver{
		Configuration: cfg,
		RunID:         runID,

		logger:    logger,
		renderer:  renderer,
		extractor: extractor,
		collector: collector,
		exporter:  metric.NewExporter(),
	}, nil
}

// RunExperiment renders every chart of every group. The first failure stops
// the run.
func (d *Driver) RunExperiment() error {
	cfg := d.Configuration
	d.logger.Infof("Plotting %d experiment groups into %s", len(cfg.Groups), cfg.OutputDir)

	for _, group := range cfg.Groups {
		baseDir := group.BaseDir
		if err := common.CheckDir(baseDir); err != nil {
			return fmt.Errorf("group %q: %w", group.Name, err)
		}

		for _, chart := range group.Charts {
			if err := d.plotChart(group, chart); err != nil {
				return fmt.Errorf("group %q, chart %s: %w", group.Name, chart.Metric, err)
			}
		}
	}

	if cfg.SummaryPath != "" {
		if err := d.exporter.FinishAndSave(cfg.SummaryPath); err != nil {
			return err
		}
	}
	if cfg.MetricsTextfile != "" {
		if err := d.collector.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("failed to write metrics to %s: %w", cfg.MetricsTextfile, err)
		}
	}

	return nil
}

func (d *Driver) plotChart(group config.Group, desc config.ChartDescriptor) error {
	cfg := d.Configuration
	logger := d.logger.WithFields(log.Fields{"group": group.Name, "metric": desc.Metric})

	chart := render.Chart{
		Metric: desc.Metric,
		XLabel: cfg.XLabel,
		YLabel: desc.YLabel,
		YLim:   desc.YLim,
		Width:  vg.Length(cfg.WidthInches) * vg.Inch,
		Height: vg.Length(cfg.HeightInches) * vg.Inch,
	}

	for _, s := range group.Series {
		annotated, err := d.loadPanel(group, s, desc.Metric)
		if err != nil {
			return err
		}

		if cfg.AnnotatedDir != "" {
			if _, err := metric.ExportAnnotated(cfg.AnnotatedDir, group.Name, s.Label, desc.Metric, annotated); err != nil {
				return err
			}
		}

		impact, err := metric.Impact(group.Name, s.Label, desc.Metric, annotated)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		for _, r := range impact {
			logger.Infof("%s %s: n=%d mean=%.2f median=%.2f p99=%.2f", s.Label, r.Phase, r.Samples, r.Mean, r.Median, r.P99)
		}
		d.exporter.ReportImpact(impact...)

		chart.Panels = append(chart.Panels, render.Panel{Label: s.Label, Kind: s.Kind, Series: annotated})
	}

	output := ""
	if desc.Output != "" {
		output = filepath.Join(cfg.OutputDir, desc.Output)
	}

	start := time.Now()
	if err := d.renderer.Render(chart, output); err != nil {
		return err
	}
	d.collector.ObserveRender(time.Since(start))

	return nil
}

// loadPanel runs Loader, Event Extractor and Event Merger for one series and
// converts the index to display units.
func (d *Driver) loadPanel(group config.Group, s config.SeriesDescriptor, metrics ...string) (common.AnnotatedSeries, error) {
	cfg := d.Configuration
	path := filepath.Join(group.BaseDir, s.Path)

	if !group.Truncate.IsZero() {
		d.logger.Debugf("Truncating %s to %s", path, group.Truncate)
	}

	ts, err := series.Load(path, series.LoadOptions{
		IndexColumn: cfg.IndexColumn,
		Truncate:    group.Truncate,
		Metrics:     metrics,
	})
	if err != nil {
		return common.AnnotatedSeries{}, err
	}
	d.collector.ObserveSeries(ts)

	eventLog, err := reconfig.EventLogPath(path, cfg.ResultSuffix, cfg.EventLogSuffix)
	if err != nil {
		return common.AnnotatedSeries{}, err
	}

	events, err := d.extractor.Extract(eventLog)
	if err != nil {
		return common.AnnotatedSeries{}, err
	}
	d.collector.ObserveEvents(events)

	return reconfig.Merge(ts, events).Scale(cfg.IndexDivisor), nil
}
