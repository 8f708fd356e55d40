// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotgrid lays out univariate diagnostic plots of a table,
// one panel per column, in a grid three panels wide.
//
// Render computes a Figure from a go-gg table and hands it to a
// Surface, which encodes it. Every panel in a figure uses the same
// Mode: a histogram (optionally with a kernel density estimate),
// horizontal bars of group proportions, horizontal bars of group
// means of a target column, or a boxplot.
//
// Panels are placed in row-major order. The last row may be short;
// the cells after the last panel are not part of the figure.
package plotgrid

import (
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
)

// Warning is the logger Univariate reports failures to.
var Warning = log.New(os.Stderr, "[plotgrid] ", 0)

// Render computes the figure of features of data in the given mode
// and draws it on s. If s is nil, the figure is computed but not
// drawn.
//
// If there are no features, Render returns a *LayoutError. If a
// feature or the BarMean target is not a column of data, it returns a
// *DataAccessError. In both cases nothing is drawn.
//
// If some panels cannot be computed, for example because a boxplot
// feature is not numeric, the remaining panels are drawn and Render
// returns the figure along with a *PartialError.
func Render(s Surface, data *table.Table, features []string, mode Mode, style Style) (*Figure, error) {
	grid, err := NewGrid(len(features))
	if err != nil {
		return nil, err
	}
	if mode == nil {
		mode = Histogram{}
	}
	if data == nil {
		data = new(table.Table)
	}
	for _, f := range features {
		if data.Column(f) == nil {
			return nil, &DataAccessError{Column: f}
		}
	}
	if m, ok := mode.(BarMean); ok && data.Column(m.Target) == nil {
		return nil, &DataAccessError{Column: m.Target}
	}

	style = style.withDefaults()
	fig := &Figure{Grid: grid, Style: style, Mode: mode}
	var failed []*RenderError
	for i, feature := range features {
		p := &Panel{Index: i, Feature: feature}
		p.Row, p.Col = grid.Cell(i)

		switch m := mode.(type) {
		case BarMean:
			p.Bars, err = means(data, feature, m.Target)
		case BarProportion:
			p.Bars = proportions(data, feature)
		case Boxplot:
			p.Box, err = boxplot(data, feature)
		case Histogram:
			p.Hist, err = histogram(data, feature, m)
		default:
			err = fmt.Errorf("unsupported mode %T", mode)
		}
		if p.Bars != nil {
			p.Bars.TextOffset = style.TextOffset
		}
		if err != nil {
			rerr := &RenderError{Index: i, Feature: feature, Err: err}
			p.Err = rerr
			failed = append(failed, rerr)
			err = nil
		}
		fig.Panels = append(fig.Panels, p)
	}

	if s != nil {
		if err := s.Draw(fig); err != nil {
			return fig, fmt.Errorf("plotgrid: drawing figure: %w", err)
		}
	}
	if failed != nil {
		return fig, &PartialError{Panels: len(features), Failed: failed}
	}
	return fig, nil
}

// Univariate renders features of data on s in the mode selected by
// flags. It never fails: errors are printed to Warning and the figure
// is left incomplete.
func Univariate(s Surface, data *table.Table, features []string, flags Flags, style Style) {
	defer func() {
		if err := recover(); err != nil {
			Warning.Print(err)
		}
	}()
	if _, err := Render(s, data, features, flags.Mode(), style); err != nil {
		Warning.Print(err)
	}
}
