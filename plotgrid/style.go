// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style controls the appearance of a figure.
type Style struct {
	// Color fills every bar, bin, and box in the figure.
	Color color.Color

	// Width and Height give the figure size in inches.
	Width, Height float64

	// TextOffset shifts bar annotations along the value axis, in
	// data units.
	TextOffset float64

	// DPI converts inches to pixels for raster and SVG output.
	DPI float64
}

// DefaultStyle returns the style used for zero Style fields.
func DefaultStyle() Style {
	return Style{
		Color:      color.RGBA{0x8d, 0x08, 0x01, 0xff},
		Width:      24,
		Height:     12,
		TextOffset: 0.5,
		DPI:        96,
	}
}

// withDefaults fills the zero fields of s from DefaultStyle.
// TextOffset is kept as given since zero is a meaningful offset.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Color == nil {
		s.Color = d.Color
	}
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.DPI <= 0 {
		s.DPI = d.DPI
	}
	return s
}

// Pixels returns the figure size in pixels.
func (s Style) Pixels() (w, h int) {
	return int(math.Round(s.Width * s.DPI)), int(math.Round(s.Height * s.DPI))
}

// ParseColor parses "#rrggbb", "#rgb", or an SVG color name such as
// "steelblue".
func ParseColor(s string) (color.Color, error) {
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return nil, fmt.Errorf("unknown color %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
