// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"
	"testing"
)

func TestFlagsMode(t *testing.T) {
	// Every combination of flags resolves to exactly one mode.
	for bits := 0; bits < 32; bits++ {
		f := Flags{
			Histplot: bits&1 != 0,
			Barplot:  bits&2 != 0,
			Outliers: bits&4 != 0,
			KDE:      bits&8 != 0,
		}
		if bits&16 != 0 {
			f.Mean = "target"
		}

		var want Mode
		switch {
		case f.Barplot && f.Mean != "":
			want = BarMean{Target: "target"}
		case f.Barplot:
			want = BarProportion{}
		case f.Outliers:
			want = Boxplot{}
		default:
			want = Histogram{KDE: f.KDE}
		}
		if got := f.Mode(); got != want {
			t.Errorf("%+v.Mode() = %v; want %v", f, got, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, test := range []struct {
		name, mean string
		want       Mode
	}{
		{"", "", Histogram{}},
		{"hist", "", Histogram{}},
		{"bar", "", BarProportion{}},
		{"bar", "price", BarMean{Target: "price"}},
		{"box", "", Boxplot{}},
		{"boxplot", "price", Boxplot{}},
	} {
		got, err := ParseMode(test.name, test.mean, false, 0)
		if err != nil {
			t.Errorf("ParseMode(%q, %q): %v", test.name, test.mean, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseMode(%q, %q) = %v; want %v", test.name, test.mean, got, test.want)
		}
	}
	if _, err := ParseMode("pie", "", false, 0); err == nil {
		t.Errorf("ParseMode(\"pie\") succeeded")
	}
	if _, err := ParseMode("hist", "", false, -1); err == nil {
		t.Errorf("ParseMode with negative bins succeeded")
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.RGBA
	}{
		{"#8d0801", color.RGBA{0x8d, 0x08, 0x01, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
	} {
		c, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got := color.RGBAModel.Convert(c); got != test.want {
			t.Errorf("ParseColor(%q) = %v; want %v", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"#12", "#zzzzzz", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
	if h := Hex(DefaultStyle().Color); h != "#8d0801" {
		t.Errorf("Hex(default) = %s; want #8d0801", h)
	}
}
