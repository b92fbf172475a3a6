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

package render

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// maxTicks places at most Bins+1 major ticks on round values.
type maxTicks struct {
	Bins int
}

func (t maxTicks) Ticks(min, max float64) []plot.Tick {
	if t.Bins < 1 || max <= min {
		return plot.DefaultTicks{}.Ticks(min, max)
	}

	step := niceStep((max - min) / float64(t.Bins))
	decimals := decimalsOf(step)

	var ticks []plot.Tick
	for k := math.Ceil(min/step - 1e-9); k*step <= max+step*1e-9; k++ {
		v := k * step
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
	}

	return ticks
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*mag >= raw-raw*1e-9 {
			return m * mag
		}
	}

	return 10 * mag
}

func decimalsOf(step float64) int {
	decimals := 0
	for s := step; math.Abs(s-math.Round(s)) > 1e-9 && decimals < 6; s *= 10 {
		decimals++
	}

	return decimals
}

// unlabelled keeps the tick positions of Ticker but drops the labels, used on
// panels that share the x axis of the panel below.
type unlabelled struct {
	plot.Ticker
}

func (u unlabelled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}

	return ticks
}
