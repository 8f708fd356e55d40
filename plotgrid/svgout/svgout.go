// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgout draws plotgrid figures as SVG.
package svgout

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/aclements/edaplot/plotgrid"
	"github.com/aclements/go-moremath/scale"
	"github.com/ajstarks/svgo"
)

// fontSize is the font size in pixels.
const fontSize float64 = 15

// charWidth estimates the advance of one character, as a multiple of
// fontSize. SVG has no text metrics, so label extents are guesses.
const charWidth = 0.6

const tickSep = 5

// Surface is a plotgrid.Surface that writes an SVG document.
type Surface struct {
	w io.Writer
}

// New returns a Surface that writes to w.
func New(w io.Writer) *Surface {
	return &Surface{w: w}
}

// Draw writes fig as a single SVG document. Each panel is a
// <g class="panel"> element; failed panels are omitted.
func (s *Surface) Draw(fig *plotgrid.Figure) error {
	ew := &errWriter{w: s.w}
	width, height := fig.Style.Pixels()
	cw := float64(width) / float64(fig.Grid.Cols)
	ch := float64(height) / float64(fig.Grid.Rows)

	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, fontSize))
	r := &renderer{canvas: canvas, fill: plotgrid.Hex(fig.Style.Color)}
	for _, p := range fig.Panels {
		if p.Err != nil {
			continue
		}
		c := cell{x: float64(p.Col) * cw, y: float64(p.Row) * ch, w: cw, h: ch}
		canvas.Group(fmt.Sprintf(`class="panel" id="panel-%d"`, p.Index))
		r.title(c, p.Feature)
		switch {
		case p.Bars != nil:
			r.bars(c, p.Bars)
		case p.Hist != nil:
			r.hist(c, p.Hist)
		case p.Box != nil:
			r.box(c, p.Box)
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

// errWriter records the first error from w. svgo does not report
// write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

type renderer struct {
	canvas *svg.SVG
	fill   string
}

// cell is the pixel rectangle of one grid cell.
type cell struct {
	x, y, w, h float64
}

// pad is the gap between a cell's edge and its contents.
func (c cell) pad() float64 {
	return 0.04 * math.Min(c.w, c.h)
}

func titleHeight() float64 {
	return 1.8 * fontSize
}

func textWidth(s string) float64 {
	return charWidth * fontSize * float64(utf8.RuneCountInString(s))
}

func maxTextWidth(labels []string) float64 {
	w := 0.0
	for _, l := range labels {
		w = math.Max(w, textWidth(l))
	}
	return w
}

func (r *renderer) title(c cell, label string) {
	r.canvas.Text(round(c.x+c.w/2), round(c.y+c.pad()+fontSize), label,
		fmt.Sprintf(`text-anchor="middle" font-size="%.6gpx" font-weight="bold"`, fontSize*1.15))
}

// axis maps a data interval to a pixel interval.
type axis struct {
	s      scale.Linear
	lo, hi float64
}

func newAxis(min, max, lo, hi float64) *axis {
	if min == max {
		min, max = min-0.5, max+0.5
	}
	return &axis{s: scale.Linear{Min: min, Max: max}, lo: lo, hi: hi}
}

func (a *axis) pix(x float64) float64 {
	return a.lo + a.s.Map(x)*(a.hi-a.lo)
}

func (a *axis) ticks(max int) ([]float64, []string) {
	if max < 2 {
		max = 2
	}
	major, _ := a.s.Ticks(scale.TickOptions{Max: max})
	labels := make([]string, len(major))
	for i, t := range major {
		labels[i] = fmt.Sprintf("%.6g", t)
	}
	return major, labels
}

// bars draws a horizontal bar chart with no frame, grid, or value
// axis. Categories are labelled on the left and each bar is annotated
// with its value.
func (r *renderer) bars(c cell, b *plotgrid.Bars) {
	labels := make([]string, len(b.Bars))
	var notes []string
	for i, bar := range b.Bars {
		labels[i] = bar.Label
		notes = append(notes, b.Annotation(i))
	}
	pad := c.pad()
	x0 := c.x + pad + maxTextWidth(labels) + tickSep
	x1 := c.x + c.w - pad - maxTextWidth(notes)
	y0, y1 := c.y+pad+titleHeight(), c.y+c.h-pad
	if len(b.Bars) == 0 || x1 <= x0 {
		return
	}

	min := 0.0
	for _, bar := range b.Bars {
		min = math.Min(min, bar.Value)
	}
	ax := newAxis(min, b.Max()+b.TextOffset, x0, x1)
	band := (y1 - y0) / float64(len(b.Bars))
	for i, bar := range b.Bars {
		// Bar 0 is at the bottom.
		mid := y1 - (float64(i)+0.5)*band
		r.canvas.Text(round(x0-tickSep), round(mid), bar.Label, `text-anchor="end" dy=".3em"`)
		if math.IsNaN(bar.Value) {
			continue
		}
		left, right := ax.pix(0), ax.pix(bar.Value)
		if right < left {
			left, right = right, left
		}
		r.canvas.Rect(round(left), round(mid-0.4*band), round(right-left), round(0.8*band), "fill:"+r.fill)
		r.canvas.Text(round(ax.pix(bar.Value+b.TextOffset)), round(mid), b.Annotation(i), `dy=".3em"`)
	}
}

// hist draws a percent histogram with an optional density curve.
func (r *renderer) hist(c cell, h *plotgrid.Hist) {
	xmin, xmax, ymax := h.Range()
	yax := newAxis(0, ymax*1.05, 0, 0)
	yticks, ylabels := yax.ticks(6)

	pad := c.pad()
	x0 := c.x + pad + 1.5*fontSize + maxTextWidth(ylabels) + tickSep
	x1 := c.x + c.w - pad
	y0, y1 := c.y+pad+titleHeight(), c.y+c.h-pad-fontSize-tickSep
	if x1 <= x0 || y1 <= y0 {
		return
	}
	yax.lo, yax.hi = y1, y0

	xax := newAxis(xmin, xmax, x0, x1)
	xticks, xlabels := xax.ticks(int((x1 - x0) / 60))
	if h.Labels != nil {
		xticks, xlabels = nil, h.Labels
		for i := range h.Labels {
			xticks = append(xticks, float64(i))
		}
		xax = newAxis(-0.5, float64(len(h.Labels))-0.5, x0, x1)
	}

	r.background(x0, y0, x1, y1)
	r.grid(yax, yticks, 'y', x0, x1)
	for _, bin := range h.Bins {
		left, right := xax.pix(bin.Lo), xax.pix(bin.Hi)
		top := yax.pix(bin.Percent)
		r.canvas.Rect(round(left), round(top), round(right-left), round(y1-top), "fill:"+r.fill+"; fill-opacity:0.75; stroke:#fff; stroke-width:0.5")
	}
	if h.Density != nil {
		var path strings.Builder
		for i, p := range h.Density {
			cmd := 'L'
			if i == 0 {
				cmd = 'M'
			}
			fmt.Fprintf(&path, "%c%.6g %.6g", cmd, xax.pix(p.X), yax.pix(p.Y))
		}
		r.canvas.Path(wrapPath(path.String()), "fill:none; stroke:"+r.fill+"; stroke-width:2")
	}

	r.tickLabels(xax, xticks, xlabels, 'x', y1)
	r.tickLabels(yax, yticks, ylabels, 'y', x0)
	lx, ly := round(c.x+pad+fontSize), round((y0+y1)/2)
	r.canvas.Text(lx, ly, "Percent", fmt.Sprintf(`text-anchor="middle" fill="#666" transform="rotate(-90 %d %d)"`, lx, ly))
}

// box draws a horizontal boxplot with Tukey whiskers and outliers.
func (r *renderer) box(c cell, b *plotgrid.Box) {
	pad := c.pad()
	x0, x1 := c.x+pad+tickSep, c.x+c.w-pad
	y0, y1 := c.y+pad+titleHeight(), c.y+c.h-pad-fontSize-tickSep
	if x1 <= x0 || y1 <= y0 {
		return
	}
	min, max := b.Range()
	span := max - min
	xax := newAxis(min-0.05*span, max+0.05*span, x0, x1)
	xticks, xlabels := xax.ticks(int((x1 - x0) / 60))

	r.background(x0, y0, x1, y1)
	r.grid(xax, xticks, 'x', y0, y1)

	mid := (y0 + y1) / 2
	half := 0.2 * (y1 - y0)
	q1, q3 := xax.pix(b.Q1), xax.pix(b.Q3)
	lo, hi := xax.pix(b.Low), xax.pix(b.High)
	const line = "stroke:#333; stroke-width:1.5"
	r.canvas.Line(round(lo), round(mid), round(q1), round(mid), line)
	r.canvas.Line(round(q3), round(mid), round(hi), round(mid), line)
	r.canvas.Line(round(lo), round(mid-half/2), round(lo), round(mid+half/2), line)
	r.canvas.Line(round(hi), round(mid-half/2), round(hi), round(mid+half/2), line)
	r.canvas.Rect(round(q1), round(mid-half), round(q3-q1), round(2*half), "fill:"+r.fill+"; "+line)
	med := round(xax.pix(b.Median))
	r.canvas.Line(med, round(mid-half), med, round(mid+half), line)
	for _, x := range b.Outliers {
		r.canvas.Circle(round(xax.pix(x)), round(mid), 3, "fill:none; stroke:#333")
	}

	r.tickLabels(xax, xticks, xlabels, 'x', y1)
}

func (r *renderer) background(x0, y0, x1, y1 float64) {
	r.canvas.Rect(round(x0), round(y0), round(x1-x0), round(y1-y0), "fill:#eee")
}

// grid draws white grid lines at ticks, spanning [start, end] on the
// other axis.
func (r *renderer) grid(a *axis, ticks []float64, dir rune, start, end float64) {
	var path bytes.Buffer
	for _, t := range ticks {
		p := math.Floor(a.pix(t) + 0.5)
		if dir == 'x' {
			fmt.Fprintf(&path, "M%.6g %.6gv%.6g", p, start, end-start)
		} else {
			fmt.Fprintf(&path, "M%.6g %.6gh%.6g", start, p, end-start)
		}
	}
	if path.Len() > 0 {
		r.canvas.Path(wrapPath(path.String()), "stroke:#fff; stroke-width:2")
	}
}

func (r *renderer) tickLabels(a *axis, ticks []float64, labels []string, dir rune, pos float64) {
	for i, t := range ticks {
		p := round(a.pix(t))
		if dir == 'x' {
			r.canvas.Text(p, round(pos+tickSep), labels[i], `text-anchor="middle" dy="1em" fill="#666"`)
		} else {
			r.canvas.Text(round(pos-tickSep), p, labels[i], `text-anchor="end" dy=".3em" fill="#666"`)
		}
	}
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// wrapPath wraps path data p to stay under SVG's recommended line
// length of 255 characters.
func wrapPath(p string) string {
	const width = 70
	var parts []string
	for len(p) > width {
		// Split before the last command letter that fits.
		split := 0
		for i := 1; i < len(p) && (i < width || split == 0); i++ {
			if ch := p[i]; 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
				split = i
			}
		}
		if split == 0 {
			break
		}
		parts, p = append(parts, p[:split]), p[split:]
	}
	return strings.Join(append(parts, p), "\n")
}
