// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import "fmt"

// A Mode selects how every panel of a figure is drawn. It is one of
// Histogram, BarProportion, BarMean, or Boxplot.
type Mode interface {
	isMode()
	String() string
}

// Histogram draws a binned distribution of each feature with the y
// axis in percent of the total count. Non-numeric features get one
// bar per distinct value.
type Histogram struct {
	// KDE overlays a kernel density estimate scaled to the
	// histogram's percent axis.
	KDE bool

	// Bins is the number of bins. If Bins is 0, it is chosen from
	// the data.
	Bins int
}

// BarProportion draws horizontal bars giving the percentage of rows
// in each group of a feature.
type BarProportion struct{}

// BarMean draws horizontal bars giving the mean of Target in each
// group of a feature.
type BarMean struct {
	Target string
}

// Boxplot draws a horizontal box-and-whisker summary of each
// feature, with points beyond 1.5 IQR drawn as outliers.
type Boxplot struct{}

func (Histogram) isMode()     {}
func (BarProportion) isMode() {}
func (BarMean) isMode()       {}
func (Boxplot) isMode()       {}

func (m Histogram) String() string {
	if m.KDE {
		return "histogram+kde"
	}
	return "histogram"
}
func (BarProportion) String() string { return "bar proportion" }
func (m BarMean) String() string     { return "bar mean of " + m.Target }
func (Boxplot) String() string       { return "boxplot" }

// Flags is the boolean selector accepted by Univariate.
type Flags struct {
	// Histplot is accepted for compatibility. A histogram is drawn
	// whenever neither Barplot nor Outliers is set.
	Histplot bool
	Barplot  bool
	// Mean names the target column for mean bars. It is only
	// consulted when Barplot is set.
	Mean     string
	Outliers bool
	KDE      bool
}

// Mode resolves f to a single Mode. Barplot takes priority over
// Outliers, which takes priority over the histogram default.
func (f Flags) Mode() Mode {
	switch {
	case f.Barplot && f.Mean != "":
		return BarMean{Target: f.Mean}
	case f.Barplot:
		return BarProportion{}
	case f.Outliers:
		return Boxplot{}
	}
	return Histogram{KDE: f.KDE}
}

// ParseMode returns the Mode named by name: "hist" (or "histogram"),
// "bar", or "box" (or "boxplot"). For "bar", a non-empty mean selects
// BarMean. kde and bins apply to histograms only.
func ParseMode(name, mean string, kde bool, bins int) (Mode, error) {
	switch name {
	case "", "hist", "histogram":
		if bins < 0 {
			return nil, fmt.Errorf("negative bin count %d", bins)
		}
		return Histogram{KDE: kde, Bins: bins}, nil
	case "bar":
		if mean != "" {
			return BarMean{Target: mean}, nil
		}
		return BarProportion{}, nil
	case "box", "boxplot":
		return Boxplot{}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", name)
}
