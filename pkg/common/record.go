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

// AnnotatedRecord is one row of an annotated series export.
type AnnotatedRecord struct {
	Group     string  `csv:"group"`
	Label     string  `csv:"label"`
	Timestamp float64 `csv:"timestamp"`
	Metric    string  `csv:"metric"`
	Value     float64 `csv:"value"`
	Reconfig  string  `csv:"reconfig"`
}

// ImpactRecord summarises a metric around one reconfiguration window.
type ImpactRecord struct {
	Group  string `csv:"group"`
	Label  string `csv:"label"`
	Metric string `csv:"metric"`
	Phase  string `csv:"phase"`

	Samples int     `csv:"samples"`
	Mean    float64 `csv:"mean"`
	Median  float64 `csv:"median"`
	P99     float64 `csv:"p99"`
}
