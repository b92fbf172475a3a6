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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/eth-easl/tsdplot/pkg/config"
	"github.com/eth-easl/tsdplot/pkg/series"
	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfiguration(t *testing.T) *config.Configuration {
	out := t.TempDir()

	cfg := &config.Configuration{
		OutputDir:       filepath.Join(out, "figs"),
		AnnotatedDir:    filepath.Join(out, "annotated"),
		SummaryPath:     filepath.Join(out, "impact.csv"),
		MetricsTextfile: filepath.Join(out, "tsdplot.prom"),
		Viewer:          "",
		Groups: []config.Group{{
			Name:     "contraction",
			BaseDir:  "test_data/out",
			Truncate: series.Truncation{Range: &[2]float64{2000, 28000}},
			Series: []config.SeriesDescriptor{
				{Label: "Stop and Copy TPC-C", Path: "stopcopy-2b/tpcc-08p-test-interval_res.csv"},
				{Label: "Squall TPC-C", Path: "reconfig-2b/tpcc-08p-test-interval_res.csv"},
			},
			Charts: []config.ChartDescriptor{
				{Metric: "LATENCY", YLabel: "Latency (ms)", YLim: &[2]float64{0, 500}, Output: "tpcTSDmeanLat.pdf"},
				{Metric: "THROUGHPUT", YLabel: "TPS", Output: "tpcTSDmeanTPS.pdf"},
			},
		}},
	}
	config.ApplyDefaults(cfg)
	cfg.Viewer = ""
	require.NoError(t, config.Validate(*cfg))

	return cfg
}

func TestRunExperiment(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	cfg := createTestConfiguration(t)
	driver, err := NewDriver(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, driver.RunID)

	require.NoError(t, driver.RunExperiment())

	for _, name := range []string{"tpcTSDmeanLat.pdf", "tpcTSDmeanTPS.pdf"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), name)
	}

	noEnd := 0
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, "No end found") {
			noEnd++
			assert.Equal(t, driver.RunID, entry.Data["run"])
		}
	}
	assert.Equal(t, 2, noEnd, "stop and copy has no END event and is read once per chart")

	f, err := os.Open(cfg.SummaryPath)
	require.NoError(t, err)
	defer f.Close()
	var impact []common.ImpactRecord
	require.NoError(t, gocsv.UnmarshalFile(f, &impact))
	assert.Len(t, impact, 12)

	metrics, err := os.ReadFile(cfg.MetricsTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "tsdplot_charts_rendered_total 2")
	assert.Contains(t, string(metrics), "tsdplot_series_loaded_total 4")
	assert.Contains(t, string(metrics), `tsdplot_reconfig_extractions_total{outcome="complete"} 2`)
	assert.Contains(t, string(metrics), `tsdplot_reconfig_extractions_total{outcome="no_end"} 2`)
}

func TestRunExperimentAnnotatedExport(t *testing.T) {
	cfg := createTestConfiguration(t)
	driver, err := NewDriver(cfg)
	require.NoError(t, err)
	require.NoError(t, driver.RunExperiment())

	f, err := os.Open(filepath.Join(cfg.AnnotatedDir, "contraction_Squall_TPC-C_LATENCY.csv"))
	require.NoError(t, err)
	defer f.Close()

	var records []common.AnnotatedRecord
	require.NoError(t, gocsv.UnmarshalFile(f, &records))
	require.Len(t, records, 27)
	assert.Equal(t, float64(2), records[0].Timestamp)

	marks := map[string]float64{}
	for _, r := range records {
		if r.Reconfig != "" {
			marks[r.Reconfig] = r.Timestamp
		}
	}
	assert.Equal(t, map[string]float64{"START": 11, "END": 15}, marks)
}

func TestRunExperimentMissingBaseDir(t *testing.T) {
	cfg := createTestConfiguration(t)
	cfg.Groups[0].BaseDir = "test_data/does-not-exist"

	driver, err := NewDriver(cfg)
	require.NoError(t, err)

	err = driver.RunExperiment()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRunExperimentMissingMetric(t *testing.T) {
	cfg := createTestConfiguration(t)
	cfg.Groups[0].Charts = []config.ChartDescriptor{{Metric: "ABORTS", Output: "aborts.pdf"}}

	driver, err := NewDriver(cfg)
	require.NoError(t, err)

	err = driver.RunExperiment()
	var dfe *common.DataFormatError
	require.True(t, errors.As(err, &dfe), "expected a DataFormatError, got %v", err)
	assert.Equal(t, "ABORTS", dfe.Column)
}

func TestRunExperimentUnreadableEventLog(t *testing.T) {
	base := t.TempDir()
	data, err := os.ReadFile("test_data/out/reconfig-2b/tpcc-08p-test-interval_res.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(base, "run-interval_res.csv"), data, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "run-hevent.log"), 0o755))

	cfg := createTestConfiguration(t)
	cfg.Groups[0].BaseDir = base
	cfg.Groups[0].Series = []config.SeriesDescriptor{{Label: "Squall TPC-C", Path: "run-interval_res.csv"}}

	driver, err := NewDriver(cfg)
	require.NoError(t, err)

	err = driver.RunExperiment()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run-hevent.log")
}

func TestNewStyleTable(t *testing.T) {
	cfg := createTestConfiguration(t)

	table, err := NewStyleTable(cfg)
	require.NoError(t, err)
	assert.Equal(t, common.KindSystem, table.KindOf("Squall TPC-C", ""))
	assert.Equal(t, common.KindBaseline, table.KindOf("Stop and Copy TPC-C", ""))

	cfg.Styles[common.KindSystem] = config.StyleConfig{Color: "nope"}
	_, err = NewStyleTable(cfg)
	assert.Error(t, err)
}
