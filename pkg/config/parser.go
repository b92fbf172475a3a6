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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eth-easl/tsdplot/pkg/common"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadConfigurationFile parses a JSON or, for *.yaml/*.yml, YAML file and
// fills in defaults for unset fields.
func ReadConfigurationFile(path string) (Configuration, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, err
	}

	var config Configuration
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(byteValue, &config)
	default:
		err = json.Unmarshal(byteValue, &config)
	}
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&config)
	log.Debugf("Read configuration with %d groups from %s", len(config.Groups), path)

	return config, nil
}

func ApplyDefaults(config *Configuration) {
	setDefault(&config.IndexColumn, common.DefaultIndexColumn)
	setDefault(&config.ResultSuffix, common.DefaultResultSuffix)
	setDefault(&config.EventLogSuffix, common.DefaultEventLogSuffix)
	setDefault(&config.StartMarker, common.DefaultStartMarker)
	setDefault(&config.EndMarker, common.DefaultEndMarker)
	setDefault(&config.XLabel, common.DefaultXLabel)
	setDefault(&config.MarkerColor, common.DefaultMarkerColor)
	setDefault(&config.DefaultKind, common.KindBaseline)
	setDefault(&config.OutputDir, common.DefaultOutputDir)
	setDefault(&config.Viewer, common.DefaultViewer)

	if config.IndexDivisor == 0 {
		config.IndexDivisor = common.DefaultIndexDivisor
	}
	if config.WidthInches == 0 {
		config.WidthInches = common.DefaultWidthInches
	}
	if config.HeightInches == 0 {
		config.HeightInches = common.DefaultHeightInches
	}

	if len(config.Styles) == 0 {
		config.Styles = map[string]StyleConfig{
			common.KindBaseline: {Color: "red"},
			common.KindSystem:   {Color: "blue"},
		}
	}
	if config.KindMatchers == nil {
		config.KindMatchers = []KindMatcherConfig{{Substring: "Squall", Kind: common.KindSystem}}
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
