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

package main

import (
	"flag"
	"os"
	"time"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/eth-easl/tsdplot/pkg/config"
	"github.com/eth-easl/tsdplot/pkg/driver"

	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "cmd/config_tpcc.json", "Path to plot configuration file (JSON or YAML)")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	outputDir  = flag.String("output", "", "Overrides OutputDir of the configuration file")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	common.Check(common.CheckPath(*configPath))

	cfg, err := config.ReadConfigurationFile(*configPath)
	common.Check(err)
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	plotDriver, err := driver.NewDriver(&cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := plotDriver.RunExperiment(); err != nil {
		log.Fatal(err)
	}

	log.Infof("Run %s finished", plotDriver.RunID)
}
