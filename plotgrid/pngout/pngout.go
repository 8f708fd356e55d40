// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pngout draws plotgrid figures as PNG images using
// gonum/plot.
package pngout

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/aclements/edaplot/plotgrid"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Surface is a plotgrid.Surface that encodes a PNG image.
type Surface struct {
	w io.Writer

	// Scale downsamples the rendered image by this factor before
	// encoding. Values <= 1 leave the image at full size.
	Scale float64
}

// New returns a Surface that writes to w.
func New(w io.Writer) *Surface {
	return &Surface{w: w}
}

// Draw renders each panel of fig with gonum/plot into its grid tile
// and encodes the result. Failed panels leave their tile blank.
func (s *Surface) Draw(fig *plotgrid.Figure) error {
	st := fig.Style
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(st.Width)*vg.Inch, vg.Length(st.Height)*vg.Inch),
		vgimg.UseDPI(int(st.DPI)),
	)
	dc := draw.New(img)

	pad := vg.Length(0.15) * vg.Inch
	tiles := draw.Tiles{
		Rows:      fig.Grid.Rows,
		Cols:      fig.Grid.Cols,
		PadX:      pad,
		PadY:      pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	for _, p := range fig.Panels {
		if p.Err != nil {
			continue
		}
		pl, err := panelPlot(p, st.Color)
		if err != nil {
			return fmt.Errorf("panel %d (%s): %w", p.Index, p.Feature, err)
		}
		pl.Draw(tiles.At(dc, p.Col, p.Row))
	}

	var out image.Image = img.Image()
	if s.Scale > 1 {
		out = downscale(out, s.Scale)
	}
	return png.Encode(s.w, out)
}

// downscale shrinks src by factor using bilinear filtering.
func downscale(src image.Image, factor float64) image.Image {
	sb := src.Bounds()
	w := int(math.Max(1, math.Round(float64(sb.Dx())/factor)))
	h := int(math.Max(1, math.Round(float64(sb.Dy())/factor)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Over, nil)
	return dst
}

func panelPlot(p *plotgrid.Panel, c color.Color) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Feature
	pl.X.Label.Text = ""

	var err error
	switch {
	case p.Bars != nil:
		err = addBars(pl, p.Bars, c)
	case p.Hist != nil:
		err = addHist(pl, p.Hist, c)
	case p.Box != nil:
		err = addBox(pl, p.Box, c)
	}
	return pl, err
}

// addBars draws bars horizontally with the value axis, frame, and
// grid hidden. A panel with no bars gets only its title.
func addBars(pl *plot.Plot, b *plotgrid.Bars, c color.Color) error {
	if len(b.Bars) == 0 {
		// No groups: leave just the title.
		pl.HideAxes()
		return nil
	}
	vals := make(plotter.Values, len(b.Bars))
	labels := make([]string, len(b.Bars))
	var notes plotter.XYLabels
	for i, bar := range b.Bars {
		labels[i] = bar.Label
		v := bar.Value
		if math.IsNaN(v) {
			v = 0
		}
		vals[i] = v
		notes.XYs = append(notes.XYs, plotter.XY{X: v + b.TextOffset, Y: float64(i)})
		notes.Labels = append(notes.Labels, b.Annotation(i))
	}
	bc, err := plotter.NewBarChart(vals, vg.Points(18))
	if err != nil {
		return err
	}
	bc.Horizontal = true
	bc.Color = c
	bc.LineStyle.Width = 0

	ann, err := plotter.NewLabels(notes)
	if err != nil {
		return err
	}
	for i := range ann.TextStyle {
		ann.TextStyle[i].YAlign = text.YCenter
	}

	pl.Add(bc, ann)
	pl.NominalY(labels...)
	pl.HideX()
	pl.Y.LineStyle.Width = 0
	pl.Y.Tick.LineStyle.Width = 0
	pl.X.Max = math.Max(pl.X.Max, (b.Max()+b.TextOffset)*1.15)
	return nil
}

func addHist(pl *plot.Plot, h *plotgrid.Hist, c color.Color) error {
	hist := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(h.Bins)),
		Width:     h.Bins[0].Hi - h.Bins[0].Lo,
		FillColor: c,
		LineStyle: plotter.DefaultLineStyle,
	}
	hist.LineStyle.Color = color.White
	for i, bin := range h.Bins {
		hist.Bins[i] = plotter.HistogramBin{Min: bin.Lo, Max: bin.Hi, Weight: bin.Percent}
	}
	pl.Add(hist)
	pl.Y.Label.Text = "Percent"
	pl.Add(plotter.NewGrid())

	if h.Labels != nil {
		pl.NominalX(h.Labels...)
	}
	if h.Density != nil {
		xys := make(plotter.XYs, len(h.Density))
		for i, p := range h.Density {
			xys[i] = plotter.XY{X: p.X, Y: p.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = c
		line.Width = vg.Points(2)
		pl.Add(line)
	}
	return nil
}

// addBox draws a horizontal boxplot using b's summary rather than
// gonum's own quartiles, so PNG and SVG output agree.
func addBox(pl *plot.Plot, b *plotgrid.Box, c color.Color) error {
	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(b.Values))
	if err != nil {
		return err
	}
	box.Horizontal = true
	box.FillColor = c
	box.Median = b.Median
	box.Quartile1, box.Quartile3 = b.Q1, b.Q3
	box.AdjLow, box.AdjHigh = b.Low, b.High
	box.Outside = box.Outside[:0]
	for i, x := range b.Values {
		if x < b.Low || x > b.High {
			box.Outside = append(box.Outside, i)
		}
	}
	pl.Add(box, plotter.NewGrid())
	pl.HideY()
	return nil
}
