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

const (
	DefaultIndexColumn    = "TIMESTAMP"
	DefaultIndexDivisor   = 1000.0
	DefaultResultSuffix   = "interval_res.csv"
	DefaultEventLogSuffix = "hevent.log"

	// Event log markers. RECONFIG_TXN_INIT opens a reconfiguration and
	// RECONFIGURATION_END closes it.
	DefaultStartMarker = "TXN"
	DefaultEndMarker   = "END"
)

const (
	DefaultXLabel      = "Elapsed Time (seconds)"
	DefaultMarkerColor = "black"
	DefaultOutputDir   = "figs"
	DefaultViewer      = "xdg-open"

	DefaultWidthInches  = 6.0
	DefaultHeightInches = 4.0
)

const (
	KindBaseline = "baseline"
	KindSystem   = "system"
)

const (
	InitLegend = "Reconfig Init"
	EndLegend  = "Reconfig End"
)
