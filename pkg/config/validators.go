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

package config

import (
	"errors"
	"fmt"

	"github.com/eth-easl/tsdplot/pkg/common"
	log "github.com/sirupsen/logrus"
)

// Validate checks a configuration after defaults have been applied. Directory
// existence is checked later, when the group is plotted.
func Validate(config Configuration) error {
	log.Debug("Checking plot configuration")

	if len(config.Groups) == 0 {
		return errors.New("no group found in configuration file")
	}
	if config.IndexDivisor <= 0 {
		return fmt.Errorf("IndexDivisor must be positive, got %v", config.IndexDivisor)
	}
	if _, err := common.ParseColor(config.MarkerColor); err != nil {
		return fmt.Errorf("MarkerColor: %w", err)
	}
	for kind, style := range config.Styles {
		if _, err := common.ParseColor(style.Color); err != nil {
			return fmt.Errorf("style %q: %w", kind, err)
		}
	}
	if _, ok := config.Styles[config.DefaultKind]; !ok {
		return fmt.Errorf("no style for default kind %q", config.DefaultKind)
	}
	for _, m := range config.KindMatchers {
		if _, ok := config.Styles[m.Kind]; !ok {
			return fmt.Errorf("kind matcher %q refers to unknown kind %q", m.Substring, m.Kind)
		}
	}

	for _, group := range config.Groups {
		if err := validateGroup(config, group); err != nil {
			return fmt.Errorf("group %q: %w", group.Name, err)
		}
	}

	log.Debug("All plot configs are valid")
	return nil
}

func validateGroup(config Configuration, group Group) error {
	if group.BaseDir == "" {
		return errors.New("missing BaseDir")
	}
	if len(group.Series) == 0 {
		return errors.New("no series")
	}
	if len(group.Charts) == 0 {
		return errors.New("no charts")
	}

	truncate := group.Truncate
	if truncate.Limit < 0 {
		return fmt.Errorf("negative truncation limit %d", truncate.Limit)
	}
	if truncate.Limit > 0 && truncate.Range != nil {
		return errors.New("truncation limit and range are mutually exclusive")
	}
	if truncate.Range != nil && truncate.Range[0] > truncate.Range[1] {
		return fmt.Errorf("truncation range %v is reversed", *truncate.Range)
	}

	for _, s := range group.Series {
		if s.Label == "" || s.Path == "" {
			return fmt.Errorf("series %+v needs both Label and Path", s)
		}
		if s.Kind != "" {
			if _, ok := config.Styles[s.Kind]; !ok {
				return fmt.Errorf("series %q has unknown kind %q", s.Label, s.Kind)
			}
		}
	}

	for _, c := range group.Charts {
		if c.Metric == "" {
			return errors.New("chart without Metric")
		}
		if c.YLim != nil && c.YLim[0] >= c.YLim[1] {
			return fmt.Errorf("chart %q has invalid YLim %v", c.Metric, *c.YLim)
		}
	}

	return nil
}
