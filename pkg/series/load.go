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

package series

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// Truncation restricts the rows returned by Load. Limit keeps the first Limit
// rows; Range keeps rows whose index lies in [Range[0], Range[1]]. Range bounds
// are in raw index units. The zero value keeps every row.
type Truncation struct {
	Limit int         `json:"Limit" yaml:"limit"`
	Range *[2]float64 `json:"Range" yaml:"range"`
}

func (t Truncation) IsZero() bool {
	return t.Limit <= 0 && t.Range == nil
}

func (t Truncation) String() string {
	switch {
	case t.Limit > 0:
		return fmt.Sprintf("first %d rows", t.Limit)
	case t.Range != nil:
		return fmt.Sprintf("[%v, %v]", t.Range[0], t.Range[1])
	default:
		return "all rows"
	}
}

// LoadOptions configures Load. Metrics lists the columns the caller needs:
// they must be present and numeric, otherwise Load fails with a
// DataFormatError instead of skipping them.
type LoadOptions struct {
	IndexColumn string
	Truncate    Truncation
	Metrics     []string
}

// Load reads an interval result file into a TimeSeries.
func Load(path string, opts LoadOptions) (common.TimeSeries, error) {
	log.Debugf("Loading interval results from %s", path)

	f, err := common.OpenInput(path)
	if err != nil {
		return common.TimeSeries{}, err
	}
	defer f.Close()

	ts, err := Parse(f, path, opts)
	if err != nil {
		return common.TimeSeries{}, err
	}

	log.Debugf("Loaded %d rows with metrics %v from %s", ts.Len(), ts.Names, path)

	return ts, nil
}

// Parse is Load over an already opened reader; name is used in errors.
func Parse(r io.Reader, name string, opts LoadOptions) (common.TimeSeries, error) {
	indexColumn := opts.IndexColumn
	if indexColumn == "" {
		indexColumn = common.DefaultIndexColumn
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return common.TimeSeries{}, err
	}

	header, err := readHeader(data)
	if err != nil {
		return common.TimeSeries{}, &common.DataFormatError{Path: name, Reason: err.Error()}
	}
	if !contains(header, indexColumn) {
		return common.TimeSeries{}, &common.DataFormatError{Path: name, Column: indexColumn, Reason: "missing index column"}
	}

	rows, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return common.TimeSeries{}, &common.DataFormatError{Path: name, Reason: err.Error()}
	}

	index := make([]float64, len(rows))
	for i, row := range rows {
		row = trimRow(row)
		rows[i] = row

		index[i], err = strconv.ParseFloat(row[indexColumn], 64)
		if err != nil || math.IsNaN(index[i]) || math.IsInf(index[i], 0) {
			return common.TimeSeries{}, &common.DataFormatError{
				Path: name, Column: indexColumn, Row: i + 1,
				Reason: fmt.Sprintf("non-numeric index value %q", row[indexColumn]),
			}
		}
		if i > 0 && index[i] <= index[i-1] {
			return common.TimeSeries{}, &common.DataFormatError{
				Path: name, Column: indexColumn, Row: i + 1,
				Reason: fmt.Sprintf("index not strictly increasing (%v after %v)", index[i], index[i-1]),
			}
		}
	}

	for _, metric := range opts.Metrics {
		if !contains(header, metric) {
			return common.TimeSeries{}, &common.DataFormatError{Path: name, Column: metric, Reason: "missing metric column"}
		}
	}

	var names []string
	columns := make(map[string][]float64)
	for _, column := range header {
		if column == indexColumn {
			continue
		}

		values, badRow := parseColumn(rows, column)
		if badRow >= 0 {
			if contains(opts.Metrics, column) {
				return common.TimeSeries{}, &common.DataFormatError{
					Path: name, Column: column, Row: badRow + 1,
					Reason: fmt.Sprintf("non-numeric value %q", rows[badRow][column]),
				}
			}
			log.Debugf("Skipping non-numeric column %q in %s", column, name)
			continue
		}
		names = append(names, column)
		columns[column] = values
	}

	ts := common.NewTimeSeries(names)
	ts.Index = index
	for _, column := range names {
		ts.Columns[column] = columns[column]
	}

	return truncate(ts, opts.Truncate), nil
}

func truncate(ts common.TimeSeries, t Truncation) common.TimeSeries {
	switch {
	case t.Limit > 0:
		return ts.Slice(0, t.Limit)
	case t.Range != nil:
		lo, hi := 0, ts.Len()
		for lo < ts.Len() && ts.Index[lo] < t.Range[0] {
			lo++
		}
		for hi > lo && ts.Index[hi-1] > t.Range[1] {
			hi--
		}
		return ts.Slice(lo, hi)
	default:
		return ts
	}
}

func readHeader(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file, expected a header row")
	} else if err != nil {
		return nil, err
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	return header, nil
}

func trimRow(row map[string]string) map[string]string {
	trimmed := make(map[string]string, len(row))
	for k, v := range row {
		trimmed[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return trimmed
}

// parseColumn converts a column to floats. Blank cells become NaN gaps. The
// returned row is the first unparseable cell, or -1.
func parseColumn(rows []map[string]string, column string) ([]float64, int) {
	values := make([]float64, len(rows))
	for i, row := range rows {
		if row[column] == "" {
			values[i] = math.NaN()
			continue
		}

		v, err := strconv.ParseFloat(row[column], 64)
		if err != nil {
			return nil, i
		}
		values[i] = v
	}

	return values, -1
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
