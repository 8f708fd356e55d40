// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// whiskerIQR is how far, in IQRs, whiskers may reach past the box.
const whiskerIQR = 1.5

func boxplot(t *table.Table, feature string) (*Box, error) {
	xs, err := floats(t, feature)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, errNoValues
	}

	s := stats.Sample{Xs: xs}
	s.Sort()
	b := &Box{
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Values: s.Xs,
	}
	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-whiskerIQR*iqr, b.Q3+whiskerIQR*iqr

	b.Low, b.High = b.Median, b.Median
	for _, x := range s.Xs {
		if x < lo || x > hi {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		if x < b.Low {
			b.Low = x
		}
		if x > b.High {
			b.High = x
		}
	}
	return b, nil
}
