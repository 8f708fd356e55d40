// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestBoxplot(t *testing.T) {
	col := []float64{100, 9, 8, 7, 6, 5, 4, 3, 2, 1, math.NaN()}
	tab := new(table.Builder).Add("x", col).Done()
	b, err := boxplot(tab, "x")
	if err != nil {
		t.Fatal(err)
	}
	if b.Median != 5.5 {
		t.Errorf("median is %v; want 5.5", b.Median)
	}
	if !(b.Q1 < b.Median && b.Median < b.Q3) {
		t.Errorf("quartiles out of order: %v %v %v", b.Q1, b.Median, b.Q3)
	}
	if b.Low != 1 || b.High != 9 {
		t.Errorf("whiskers are [%v, %v]; want [1, 9]", b.Low, b.High)
	}
	if !reflect.DeepEqual(b.Outliers, []float64{100}) {
		t.Errorf("outliers are %v; want [100]", b.Outliers)
	}
	if min, max := b.Range(); min != 1 || max != 100 {
		t.Errorf("range is [%v, %v]; want [1, 100]", min, max)
	}
	if col[0] != 100 {
		t.Errorf("boxplot reordered the table column")
	}
}

func TestBoxplotNoOutliers(t *testing.T) {
	tab := new(table.Builder).Add("x", []int{1, 2, 3, 4, 5}).Done()
	b, err := boxplot(tab, "x")
	if err != nil {
		t.Fatal(err)
	}
	if b.Median != 3 || b.Low != 1 || b.High != 5 || len(b.Outliers) != 0 {
		t.Errorf("got %+v; want median 3, whiskers [1, 5], no outliers", b)
	}
}

func TestBoxplotNonNumeric(t *testing.T) {
	tab := new(table.Builder).Add("x", []string{"a", "b"}).Done()
	if _, err := boxplot(tab, "x"); err == nil {
		t.Fatal("boxplot of a string column succeeded")
	}
}
