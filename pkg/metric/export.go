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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

type Exporter struct {
	mutex         sync.Mutex
	impactRecords []common.ImpactRecord
}

func NewExporter() *Exporter {
	return &Exporter{
		impactRecords: []common.ImpactRecord{},
	}
}

func (ep *Exporter) ReportImpact(records ...common.ImpactRecord) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()
	ep.impactRecords = append(ep.impactRecords, records...)
}

func (ep *Exporter) GetImpactRecordLen() int {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()
	return len(ep.impactRecords)
}

// FinishAndSave writes the collected impact records to path as CSV.
func (ep *Exporter) FinishAndSave(path string) error {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&ep.impactRecords, f); err != nil {
		return fmt.Errorf("failed to write impact summary %s: %w", path, err)
	}

	log.Infof("Wrote %d impact records to %s", len(ep.impactRecords), path)
	return nil
}

// AnnotatedRecords flattens one metric of an annotated series into rows.
func AnnotatedRecords(group, label, metricName string, as common.AnnotatedSeries) ([]common.AnnotatedRecord, error) {
	values, err := as.Series.Column(metricName)
	if err != nil {
		return nil, err
	}

	records := make([]common.AnnotatedRecord, as.Series.Len())
	for i, ts := range as.Series.Index {
		records[i] = common.AnnotatedRecord{
			Group:     group,
			Label:     label,
			Timestamp: ts,
			Metric:    metricName,
			Value:     values[i],
		}
		if as.Labels[i] != common.None {
			records[i].Reconfig = as.Labels[i].String()
		}
	}

	return records, nil
}

// ExportAnnotated writes an annotated series to dir, one file per
// (group, label, metric).
func ExportAnnotated(dir, group, label, metricName string, as common.AnnotatedSeries) (string, error) {
	records, err := AnnotatedRecords(group, label, metricName, as)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.csv", fileSafe(group), fileSafe(label), fileSafe(metricName)))
	if err := ensureDir(path); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return "", fmt.Errorf("failed to export annotated series %s: %w", path, err)
	}

	log.Debugf("Exported %d annotated rows to %s", len(records), path)
	return path, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}

	return os.MkdirAll(dir, os.ModePerm)
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
