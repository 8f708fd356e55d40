// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pngout

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/aclements/edaplot/plotgrid"
	"github.com/aclements/go-gg/table"
)

func testTable() *table.Table {
	return new(table.Builder).
		Add("category", []string{"a", "a", "b", "c", "c", "c"}).
		Add("size", []float64{1, 2, 3, 4, 5, 60}).
		Add("label", []string{"p", "q", "r", "s", "t", "u"}).
		Done()
}

func TestDrawSize(t *testing.T) {
	style := plotgrid.Style{Width: 3, Height: 1, DPI: 96}
	for _, scale := range []float64{0, 2} {
		var buf bytes.Buffer
		s := New(&buf)
		s.Scale = scale
		if _, err := plotgrid.Render(s, testTable(), []string{"size"}, plotgrid.Histogram{}, style); err != nil {
			t.Fatalf("scale %v: %v", scale, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("scale %v: decoding: %v", scale, err)
		}
		wantW, wantH := 288, 96
		if scale > 1 {
			wantW, wantH = 144, 48
		}
		if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("scale %v: image is %dx%d; want %dx%d", scale, b.Dx(), b.Dy(), wantW, wantH)
		}
	}
}

func TestDrawModes(t *testing.T) {
	features := []string{"size", "category", "size", "category"}
	style := plotgrid.Style{Width: 6, Height: 4, DPI: 48}
	for _, mode := range []plotgrid.Mode{
		plotgrid.Histogram{KDE: true},
		plotgrid.Histogram{Bins: 3},
		plotgrid.BarProportion{},
		plotgrid.BarMean{Target: "size"},
	} {
		var buf bytes.Buffer
		if _, err := plotgrid.Render(New(&buf), testTable(), features, mode, style); err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if _, err := png.Decode(&buf); err != nil {
			t.Errorf("%v: decoding: %v", mode, err)
		}
	}
}

func TestDrawPartial(t *testing.T) {
	var buf bytes.Buffer
	style := plotgrid.Style{Width: 6, Height: 2, DPI: 48}
	_, err := plotgrid.Render(New(&buf), testTable(), []string{"size", "label"}, plotgrid.Boxplot{}, style)
	var perr *plotgrid.PartialError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v; want *PartialError", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("partial figure is not a valid PNG: %v", err)
	}
}

func TestDrawEmptyBars(t *testing.T) {
	nan := math.NaN()
	tab := new(table.Builder).
		Add("v", []float64{1, 2, 2}).
		Add("k", []float64{nan, nan, nan}).
		Done()
	var buf bytes.Buffer
	style := plotgrid.Style{Width: 6, Height: 2, DPI: 48}
	fig, err := plotgrid.Render(New(&buf), tab, []string{"v", "k"}, plotgrid.BarProportion{}, style)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(fig.Panels[1].Bars.Bars); n != 0 {
		t.Fatalf("all-NaN key column has %d bars; want 0", n)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("figure with an empty bar panel is not a valid PNG: %v", err)
	}
}
