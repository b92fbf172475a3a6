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
	"image/color"
	"strings"

	"github.com/eth-easl/tsdplot/pkg/common"
	"gonum.org/v1/plot/vg"
)

type Style struct {
	Color color.Color
	Width vg.Length
}

// KindMatcher assigns Kind to every series whose label contains Substring.
type KindMatcher struct {
	Substring string
	Kind      string
}

// StyleTable maps series kinds to line styles. A series without an explicit
// kind takes the kind of the first matching KindMatcher, else DefaultKind.
type StyleTable struct {
	Styles      map[string]Style
	Matchers    []KindMatcher
	DefaultKind string
}

func DefaultStyleTable() StyleTable {
	return StyleTable{
		Styles: map[string]Style{
			common.KindBaseline: {Color: color.RGBA{R: 0xff, A: 0xff}, Width: vg.Points(1)},
			common.KindSystem:   {Color: color.RGBA{B: 0xff, A: 0xff}, Width: vg.Points(1)},
		},
		Matchers:    []KindMatcher{{Substring: "Squall", Kind: common.KindSystem}},
		DefaultKind: common.KindBaseline,
	}
}

func (st StyleTable) KindOf(label, kind string) string {
	if kind != "" {
		return kind
	}
	for _, m := range st.Matchers {
		if m.Substring != "" && strings.Contains(label, m.Substring) {
			return m.Kind
		}
	}

	return st.DefaultKind
}

func (st StyleTable) StyleOf(label, kind string) Style {
	style, ok := st.Styles[st.KindOf(label, kind)]
	if !ok {
		style = Style{Color: color.Black}
	}
	if style.Color == nil {
		style.Color = color.Black
	}
	if style.Width == 0 {
		style.Width = vg.Points(1)
	}

	return style
}
