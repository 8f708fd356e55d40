// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

const (
	// maxAutoBins caps the automatic bin count for very long
	// tailed data.
	maxAutoBins = 200

	// densityPoints is the number of points the KDE is sampled at.
	densityPoints = 200

	// categoryWidth is the width of a categorical histogram bar.
	categoryWidth = 0.8
)

var errNoValues = errors.New("no finite values")

func histogram(t *table.Table, feature string, m Histogram) (*Hist, error) {
	if !numericColumn(t, feature) {
		return categorical(t.MustColumn(feature))
	}
	xs, err := floats(t, feature)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, errNoValues
	}

	lo, hi := stats.Bounds(xs)
	if lo == hi {
		// A single bin one unit wide, centered on the value.
		return &Hist{Bins: []Bin{{Lo: lo - 0.5, Hi: hi + 0.5, Percent: 100}}}, nil
	}

	nbins := m.Bins
	if nbins == 0 {
		nbins = autoBins(xs, lo, hi)
	}
	h := stats.NewLinearHist(lo, hi, nbins)
	for _, x := range xs {
		h.Add(x)
	}
	_, counts, over := h.Counts()

	width := (hi - lo) / float64(nbins)
	n := float64(len(xs))
	hist := &Hist{Bins: make([]Bin, nbins)}
	for i := range hist.Bins {
		c := counts[i]
		if i == nbins-1 {
			// The top edge is closed: the maximum lands
			// in the overflow count.
			c += over
		}
		hist.Bins[i] = Bin{
			Lo:      lo + float64(i)*width,
			Hi:      lo + float64(i+1)*width,
			Percent: float64(c) / n * 100,
		}
	}
	hist.Bins[nbins-1].Hi = hi

	if m.KDE {
		hist.Density = density(xs, lo, hi, width)
	}
	return hist, nil
}

// autoBins picks a bin count from the smaller of the Sturges and
// Freedman-Diaconis bin widths.
func autoBins(xs []float64, lo, hi float64) int {
	n := float64(len(xs))
	width := (hi - lo) / (math.Log2(n) + 1)

	s := stats.Sample{Xs: xs}
	iqr := s.Quantile(0.75) - s.Quantile(0.25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3); fd > 0 && fd < width {
		width = fd
	}

	nbins := int(math.Ceil((hi - lo) / width))
	if nbins < 1 {
		nbins = 1
	} else if nbins > maxAutoBins {
		nbins = maxAutoBins
	}
	return nbins
}

// density samples a Gaussian KDE of xs over [lo, hi], scaled so its
// area matches a percent histogram with the given bin width.
func density(xs []float64, lo, hi, binWidth float64) []Point {
	kde := stats.KDE{Sample: stats.Sample{Xs: xs}, Kernel: stats.GaussianKernel}
	kde.Bandwidth = stats.BandwidthScott(kde.Sample)
	if !(kde.Bandwidth > 0) {
		return nil
	}
	grid := vec.Linspace(lo, hi, densityPoints)
	pdf := vec.Map(kde.PDF, grid)
	pts := make([]Point, len(grid))
	for i, x := range grid {
		pts[i] = Point{x, pdf[i] * binWidth * 100}
	}
	return pts
}

// categorical counts the distinct present values of seq in order of
// first appearance.
func categorical(seq table.Slice) (*Hist, error) {
	ks, missing := keys(seq)
	kv := reflect.ValueOf(ks)
	index := map[string]int{}
	var labels []string
	var counts []int
	n := 0
	for i := 0; i < kv.Len(); i++ {
		if missing[i] {
			continue
		}
		label := fmt.Sprint(kv.Index(i).Interface())
		j, ok := index[label]
		if !ok {
			j = len(labels)
			index[label] = j
			labels = append(labels, label)
			counts = append(counts, 0)
		}
		counts[j]++
		n++
	}
	if n == 0 {
		return nil, errNoValues
	}

	hist := &Hist{Labels: labels}
	for i, c := range counts {
		x := float64(i)
		hist.Bins = append(hist.Bins, Bin{
			Lo:      x - categoryWidth/2,
			Hi:      x + categoryWidth/2,
			Percent: float64(c) / float64(n) * 100,
		})
	}
	return hist, nil
}
