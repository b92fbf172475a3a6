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

package reconfig

import (
	"testing"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesAt(index ...float64) common.TimeSeries {
	ts := common.NewTimeSeries([]string{"LATENCY"})
	for _, t := range index {
		ts.Index = append(ts.Index, t)
		ts.Columns["LATENCY"] = append(ts.Columns["LATENCY"], t*2)
	}

	return ts
}

func TestMergeExactMatch(t *testing.T) {
	annotated := Merge(seriesAt(0, 5, 10), []common.ReconfigEvent{{Timestamp: 5, Kind: common.Start}})

	assert.Equal(t, []common.EventKind{common.None, common.Start, common.None}, annotated.Labels)
	assert.Equal(t, 1, annotated.Count(common.Start))
}

func TestMergeNearestRow(t *testing.T) {
	annotated := Merge(seriesAt(0, 5, 10, 15), []common.ReconfigEvent{
		{Timestamp: 6.2, Kind: common.Start},
		{Timestamp: 12.5, Kind: common.End}, // tie between 10 and 15
	})

	row, ok := annotated.RowOf(common.Start)
	require.True(t, ok)
	assert.Equal(t, 1, row)

	row, ok = annotated.RowOf(common.End)
	require.True(t, ok)
	assert.Equal(t, 2, row)
}

func TestMergeOutOfRangeAndCollisions(t *testing.T) {
	annotated := Merge(seriesAt(0, 5, 10), []common.ReconfigEvent{
		{Timestamp: -1, Kind: common.Start},
		{Timestamp: 11, Kind: common.End},
	})
	assert.Equal(t, 3, annotated.Count(common.None))

	annotated = Merge(seriesAt(0, 5, 10), []common.ReconfigEvent{
		{Timestamp: 5, Kind: common.Start},
		{Timestamp: 5.5, Kind: common.End},
	})
	assert.Equal(t, 1, annotated.Count(common.Start))
	assert.Equal(t, 0, annotated.Count(common.End))
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	ts := seriesAt(0, 5, 10)

	annotated := Merge(ts, nil)

	assert.Equal(t, 3, annotated.Count(common.None))
	assert.Equal(t, ts.Index, annotated.Series.Index)

	empty := Merge(seriesAt(), []common.ReconfigEvent{{Timestamp: 1, Kind: common.Start}})
	assert.Empty(t, empty.Labels)
}
