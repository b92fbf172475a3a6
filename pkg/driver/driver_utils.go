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

package driver

import (
	"fmt"

	"github.com/eth-easl/tsdplot/pkg/common"
	"github.com/eth-easl/tsdplot/pkg/config"
	"github.com/eth-easl/tsdplot/pkg/render"
	"gonum.org/v1/plot/vg"
)

// NewStyleTable builds the render style table from the configured colours.
func NewStyleTable(cfg *config.Configuration) (render.StyleTable, error) {
	table := render.StyleTable{
		Styles:      make(map[string]render.Style, len(cfg.Styles)),
		DefaultKind: cfg.DefaultKind,
	}

	for kind, sc := range cfg.Styles {
		c, err := common.ParseColor(sc.Color)
		if err != nil {
			return render.StyleTable{}, fmt.Errorf("style %q: %w", kind, err)
		}
		table.Styles[kind] = render.Style{Color: c, Width: vg.Points(sc.WidthPoints)}
	}

	for _, m := range cfg.KindMatchers {
		table.Matchers = append(table.Matchers, render.KindMatcher{Substring: m.Substring, Kind: m.Kind})
	}

	return table, nil
}

func NewRenderer(cfg *config.Configuration) (*render.Renderer, error) {
	styles, err := NewStyleTable(cfg)
	if err != nil {
		return nil, err
	}

	markerColor, err := common.ParseColor(cfg.MarkerColor)
	if err != nil {
		return nil, fmt.Errorf("MarkerColor: %w", err)
	}

	return render.NewRenderer(styles, markerColor, cfg.Viewer), nil
}
