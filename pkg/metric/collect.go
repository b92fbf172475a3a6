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

package metric

import (
	"time"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts what a plotting run did. The metrics are written in the
// node exporter textfile format at the end of the run.
type Collector struct {
	registry *prometheus.Registry

	charts        prometheus.Counter
	seriesLoaded  prometheus.Counter
	rowsLoaded    prometheus.Counter
	events        *prometheus.CounterVec
	outcomes      *prometheus.CounterVec
	renderSeconds prometheus.Histogram
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		charts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tsdplot",
			Name:      "charts_rendered_total",
			Help:      "Charts written.",
		}),
		seriesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tsdplot",
			Name:      "series_loaded_total",
			Help:      "Interval result files loaded.",
		}),
		rowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tsdplot",
			Name:      "rows_loaded_total",
			Help:      "Rows kept after truncation.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tsdplot",
			Name:      "reconfig_events_total",
			Help:      "Reconfiguration events extracted, by kind.",
		}, []string{"kind"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tsdplot",
			Name:      "reconfig_extractions_total",
			Help:      "Event log extractions, by outcome.",
		}, []string{"outcome"}),
		renderSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tsdplot",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one chart.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
	}

	c.registry.MustRegister(c.charts, c.seriesLoaded, c.rowsLoaded, c.events, c.outcomes, c.renderSeconds)

	return c
}

func (c *Collector) ObserveSeries(ts common.TimeSeries) {
	c.seriesLoaded.Inc()
	c.rowsLoaded.Add(float64(ts.Len()))
}

func (c *Collector) ObserveEvents(events []common.ReconfigEvent) {
	for _, e := range events {
		c.events.WithLabelValues(e.Kind.String()).Inc()
	}
}

// ObserveOutcome counts one event log extraction. It matches the
// OnOutcome hook of reconfig.Extractor.
func (c *Collector) ObserveOutcome(outcome string) {
	c.outcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveRender(d time.Duration) {
	c.charts.Inc()
	c.renderSeconds.Observe(d.Seconds())
}

func (c *Collector) WriteTextfile(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	return prometheus.WriteToTextfile(path, c.registry)
}
