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

package common

import (
	"fmt"
)

// TimeSeries is a timestamp-indexed table of numeric metric columns. Index is
// strictly increasing and every column has len(Index) values.
type TimeSeries struct {
	Index   []float64
	Names   []string
	Columns map[string][]float64
}

func NewTimeSeries(names []string) TimeSeries {
	ts := TimeSeries{
		Index:   []float64{},
		Names:   append([]string(nil), names...),
		Columns: make(map[string][]float64, len(names)),
	}
	for _, name := range names {
		ts.Columns[name] = []float64{}
	}

	return ts
}

func (ts TimeSeries) Len() int {
	return len(ts.Index)
}

func (ts TimeSeries) Column(name string) ([]float64, error) {
	values, ok := ts.Columns[name]
	if !ok {
		return nil, fmt.Errorf("metric %q not present in series (have %v)", name, ts.Names)
	}

	return values, nil
}

// Slice returns rows [lo, hi) as a new series.
func (ts TimeSeries) Slice(lo, hi int) TimeSeries {
	lo = MaxOf(lo, 0)
	hi = MinOf(hi, ts.Len())
	if hi < lo {
		hi = lo
	}

	out := NewTimeSeries(ts.Names)
	out.Index = append(out.Index, ts.Index[lo:hi]...)
	for _, name := range ts.Names {
		out.Columns[name] = append(out.Columns[name], ts.Columns[name][lo:hi]...)
	}

	return out
}

// Scale returns a copy of the series with every timestamp divided by divisor.
func (ts TimeSeries) Scale(divisor float64) TimeSeries {
	out := ts.Slice(0, ts.Len())
	if divisor == 0 || divisor == 1 {
		return out
	}
	for i := range out.Index {
		out.Index[i] /= divisor
	}

	return out
}

// AnnotatedSeries pairs a series with one EventKind per row.
type AnnotatedSeries struct {
	Series TimeSeries
	Labels []EventKind
}

func NewAnnotatedSeries(ts TimeSeries) AnnotatedSeries {
	return AnnotatedSeries{
		Series: ts,
		Labels: make([]EventKind, ts.Len()),
	}
}

// RowOf returns the first row labelled with kind.
func (as AnnotatedSeries) RowOf(kind EventKind) (int, bool) {
	for i, label := range as.Labels {
		if label == kind {
			return i, true
		}
	}

	return -1, false
}

func (as AnnotatedSeries) Count(kind EventKind) int {
	count := 0
	for _, label := range as.Labels {
		if label == kind {
			count++
		}
	}

	return count
}

func (as AnnotatedSeries) Scale(divisor float64) AnnotatedSeries {
	return AnnotatedSeries{
		Series: as.Series.Scale(divisor),
		Labels: append([]EventKind(nil), as.Labels...),
	}
}
