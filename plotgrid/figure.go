// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import "fmt"

// A Surface draws a computed Figure, typically by encoding it to an
// output stream.
type Surface interface {
	Draw(fig *Figure) error
}

// Figure is a grid of panels ready to be drawn.
type Figure struct {
	Grid   Grid
	Style  Style
	Mode   Mode
	Panels []*Panel
}

// Panel is one sub-chart of a Figure. Exactly one of Bars, Hist, and
// Box is set, unless Err is non-nil.
type Panel struct {
	Index    int
	Row, Col int

	// Feature is the column this panel shows. It is also the
	// panel title.
	Feature string

	Bars *Bars
	Hist *Hist
	Box  *Box

	// Err is the reason this panel could not be computed.
	Err error
}

// Bars is a horizontal bar chart over the groups of a feature. Bars
// are listed bottom to top.
type Bars struct {
	Bars []Bar

	// Percent indicates that values are percentages.
	Percent bool

	// TextOffset is the gap between a bar's end and its
	// annotation, in data units.
	TextOffset float64
}

// Bar is one group of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// Annotation returns the text drawn next to bar i.
func (b *Bars) Annotation(i int) string {
	if b.Percent {
		return fmt.Sprintf("%.1f%%", b.Bars[i].Value)
	}
	return fmt.Sprintf("%.1f", b.Bars[i].Value)
}

// Max returns the largest bar value, ignoring NaNs, or 0.
func (b *Bars) Max() float64 {
	max := 0.0
	for _, bar := range b.Bars {
		if bar.Value > max {
			max = bar.Value
		}
	}
	return max
}

// Hist is a histogram with heights in percent of the total count.
type Hist struct {
	Bins []Bin

	// Labels names the bins of a categorical histogram. Bin i is
	// then centered on i. Labels is nil for numeric histograms.
	Labels []string

	// Density is the kernel density estimate on the percent
	// scale, or nil.
	Density []Point
}

// Bin is one histogram bin covering [Lo, Hi).
type Bin struct {
	Lo, Hi  float64
	Percent float64
}

// Point is a point of a density curve.
type Point struct {
	X, Y float64
}

// Range returns the horizontal and vertical extent of h.
func (h *Hist) Range() (xmin, xmax, ymax float64) {
	xmin, xmax = h.Bins[0].Lo, h.Bins[len(h.Bins)-1].Hi
	for _, b := range h.Bins {
		if b.Percent > ymax {
			ymax = b.Percent
		}
	}
	for _, p := range h.Density {
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return
}

// Box is a five-number summary with Tukey whiskers.
type Box struct {
	Q1, Median, Q3 float64

	// Low and High are the whisker ends: the most extreme values
	// within 1.5 IQR of the box.
	Low, High float64

	// Outliers are the values beyond the whiskers, in increasing
	// order.
	Outliers []float64

	// Values is the sorted sample, NaNs removed.
	Values []float64
}

// Range returns the smallest and largest values drawn for b.
func (b *Box) Range() (min, max float64) {
	return b.Values[0], b.Values[len(b.Values)-1]
}

// Failed returns the panels that could not be computed.
func (f *Figure) Failed() []*Panel {
	var out []*Panel
	for _, p := range f.Panels {
		if p.Err != nil {
			out = append(out, p)
		}
	}
	return out
}
