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
	"github.com/eth-easl/tsdplot/pkg/common"
	log "github.com/sirupsen/logrus"
)

// Merge labels the row nearest to each event. Ties go to the earlier row.
// Events outside the series' index range, and events that land on an already
// labelled row, are not placed.
func Merge(ts common.TimeSeries, events []common.ReconfigEvent) common.AnnotatedSeries {
	annotated := common.NewAnnotatedSeries(ts)
	if ts.Len() == 0 {
		if len(events) > 0 {
			log.Warnf("Cannot place %d reconfig events on an empty series", len(events))
		}
		return annotated
	}

	first, last := ts.Index[0], ts.Index[ts.Len()-1]
	for _, event := range events {
		if event.Timestamp < first || event.Timestamp > last {
			log.Warnf("Reconfig %s at %v is outside the series range [%v, %v]", event.Kind, event.Timestamp, first, last)
			continue
		}

		row := common.NearestIndex(ts.Index, event.Timestamp)
		if annotated.Labels[row] != common.None {
			log.Warnf("Reconfig %s at %v collides with %s on row %d", event.Kind, event.Timestamp, annotated.Labels[row], row)
			continue
		}

		log.Tracef("Reconfig %s at %v placed on row %d (t=%v)", event.Kind, event.Timestamp, row, ts.Index[row])
		annotated.Labels[row] = event.Kind
	}

	return annotated
}
