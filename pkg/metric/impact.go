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
	"math"
	"sort"

	"github.com/eth-easl/tsdplot/pkg/common"
	"gonum.org/v1/gonum/stat"
)

const (
	PhaseAll    = "all"
	PhaseBefore = "before"
	PhaseDuring = "during"
	PhaseAfter  = "after"
)

// Impact summarises metricName before, during and after the reconfiguration
// marked on the series. START and END rows belong to the "during" phase; a
// missing END stretches it to the last row. Without a START the whole series
// is reported as a single phase.
func Impact(group, label, metricName string, as common.AnnotatedSeries) ([]common.ImpactRecord, error) {
	values, err := as.Series.Column(metricName)
	if err != nil {
		return nil, err
	}

	base := common.ImpactRecord{Group: group, Label: label, Metric: metricName}

	start, ok := as.RowOf(common.Start)
	if !ok {
		return []common.ImpactRecord{summarise(base, PhaseAll, values)}, nil
	}

	end, ok := as.RowOf(common.End)
	if !ok || end < start {
		end = len(values) - 1
	}

	return []common.ImpactRecord{
		summarise(base, PhaseBefore, values[:start]),
		summarise(base, PhaseDuring, values[start:end+1]),
		summarise(base, PhaseAfter, values[end+1:]),
	}, nil
}

func summarise(base common.ImpactRecord, phase string, values []float64) common.ImpactRecord {
	record := base
	record.Phase = phase

	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	record.Samples = len(sorted)
	if len(sorted) == 0 {
		return record
	}
	sort.Float64s(sorted)

	record.Mean = stat.Mean(sorted, nil)
	record.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	record.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)

	return record
}
