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
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/eth-easl/tsdplot/pkg/common"
	log "github.com/sirupsen/logrus"
)

// Profiler REPORT lines share the event log and can be long.
const maxLineSize = 16 * 1024 * 1024

// Extractor scans an event log for the lines that open and close a
// reconfiguration. Lines look like
//
//	<timestamp>,<EVENT_NAME>[,<details>...]
//
// A line holding StartMarker is a START event, otherwise a line holding
// EndMarker is an END event. Everything else is ignored.
//
// OnOutcome, when set, is called once per successfully read log with one of
// the common.Outcome* values.
type Extractor struct {
	StartMarker string
	EndMarker   string
	Logger      log.FieldLogger
	OnOutcome   func(outcome string)
}

func NewExtractor(startMarker, endMarker string) *Extractor {
	if startMarker == "" {
		startMarker = common.DefaultStartMarker
	}
	if endMarker == "" {
		endMarker = common.DefaultEndMarker
	}

	return &Extractor{
		StartMarker: startMarker,
		EndMarker:   endMarker,
		Logger:      log.StandardLogger(),
	}
}

// Extract reads the event log at path. Only I/O failures are returned;
// unusable event sets are logged and yield an empty list.
func (e *Extractor) Extract(path string) ([]common.ReconfigEvent, error) {
	f, err := common.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return e.ExtractFrom(f, path)
}

func (e *Extractor) ExtractFrom(r io.Reader, name string) ([]common.ReconfigEvent, error) {
	logger := e.logger().WithField("log", name)

	var starts, ends []common.ReconfigEvent

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var kind common.EventKind
		switch {
		case strings.Contains(line, e.StartMarker):
			kind = common.Start
		case strings.Contains(line, e.EndMarker):
			kind = common.End
		default:
			continue
		}

		event, err := parseEventLine(line, kind)
		if err != nil {
			logger.Debugf("Skipping %s line %d: %v", kind, lineNo, err)
			continue
		}

		if kind == common.Start {
			starts = append(starts, event)
		} else {
			ends = append(ends, event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading %s after line %d: %w", name, lineNo, err)
	}

	switch {
	case len(starts) > 1 || len(ends) > 1:
		logger.Errorf("Multiple reconfig events not supported (%d start, %d end)", len(starts), len(ends))
		e.observe(common.OutcomeMultiple)
		return []common.ReconfigEvent{}, nil
	case len(starts) == 0:
		logger.Error("No reconfig event found")
		e.observe(common.OutcomeNone)
		return []common.ReconfigEvent{}, nil
	case len(ends) == 0:
		logger.Warnf("No end found for reconfiguration started at %v", starts[0].Timestamp)
		e.observe(common.OutcomeNoEnd)
		return starts, nil
	}

	events := []common.ReconfigEvent{starts[0], ends[0]}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
	e.observe(common.OutcomeComplete)

	return events, nil
}

func (e *Extractor) observe(outcome string) {
	if e.OnOutcome != nil {
		e.OnOutcome(outcome)
	}
}

func (e *Extractor) logger() log.FieldLogger {
	if e.Logger == nil {
		return log.StandardLogger()
	}

	return e.Logger
}

func parseEventLine(line string, kind common.EventKind) (common.ReconfigEvent, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return common.ReconfigEvent{}, fmt.Errorf("expected <timestamp>,<event>, got %q", line)
	}

	ts, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return common.ReconfigEvent{}, fmt.Errorf("invalid timestamp %q", fields[0])
	}

	return common.ReconfigEvent{
		Timestamp: ts,
		Kind:      kind,
		Name:      strings.TrimSpace(fields[1]),
	}, nil
}

// EventLogPath derives the event log of an interval result file by replacing
// resultSuffix with eventSuffix in the file name.
func EventLogPath(csvPath, resultSuffix, eventSuffix string) (string, error) {
	dir, file := filepath.Split(csvPath)
	if resultSuffix == "" || !strings.Contains(file, resultSuffix) {
		return "", fmt.Errorf("%s does not contain the result suffix %q", csvPath, resultSuffix)
	}

	return dir + strings.ReplaceAll(file, resultSuffix, eventSuffix), nil
}
