// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"database/sql"
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
)

func TestProportions(t *testing.T) {
	tab := new(table.Builder).
		Add("category", []string{"c", "a", "c", "b", "a", "c"}).
		Done()
	got := proportions(tab, "category")
	want := &Bars{
		Percent: true,
		Bars:    []Bar{{"a", 33.33}, {"b", 16.67}, {"c", 50}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("proportions mismatch (-want +got):\n%s", diff)
	}

	sum := 0.0
	for _, b := range got.Bars {
		sum += b.Value
	}
	if math.Abs(sum-100) > 0.1 {
		t.Errorf("proportions sum to %v; want 100", sum)
	}
	if a := got.Annotation(0); a != "33.3%" {
		t.Errorf("Annotation(0) = %q; want %q", a, "33.3%")
	}
}

func TestProportionsNumericKeys(t *testing.T) {
	tab := new(table.Builder).
		Add("rooms", []float64{3, 1, 2, math.NaN(), 3, 1, 3}).
		Done()
	got := proportions(tab, "rooms")
	var labels []string
	sum := 0.0
	for _, b := range got.Bars {
		labels = append(labels, b.Label)
		sum += b.Value
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, labels); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(sum-100) > 0.1 {
		t.Errorf("proportions sum to %v; want 100", sum)
	}
}

func TestMeans(t *testing.T) {
	tab := new(table.Builder).
		Add("city", []string{"x", "y", "x", "y", "x", "z"}).
		Add("price", []float64{1, 2, 2, 4, 2, math.NaN()}).
		Done()
	got, err := means(tab, "city", "price")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Bars) != 3 {
		t.Fatalf("means gave %d bars; want 3", len(got.Bars))
	}
	// 5/3 rounds to 1.67.
	if b := got.Bars[0]; b.Label != "x" || b.Value != 1.67 {
		t.Errorf("bar 0 = %+v; want {x 1.67}", b)
	}
	if b := got.Bars[1]; b.Label != "y" || b.Value != 3 {
		t.Errorf("bar 1 = %+v; want {y 3}", b)
	}
	if b := got.Bars[2]; b.Label != "z" || !math.IsNaN(b.Value) {
		t.Errorf("bar 2 = %+v; want {z NaN}", b)
	}
	if got.Percent {
		t.Errorf("mean bars are marked as percentages")
	}
	if a := got.Annotation(1); a != "3.0" {
		t.Errorf("Annotation(1) = %q; want %q", a, "3.0")
	}
}

func TestMeansIntTarget(t *testing.T) {
	tab := new(table.Builder).
		Add("g", []string{"a", "a", "b"}).
		Add("n", []int{1, 2, 7}).
		Done()
	got, err := means(tab, "g", "n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Bar{{"a", 1.5}, {"b", 7}}
	if diff := cmp.Diff(want, got.Bars); diff != "" {
		t.Errorf("means mismatch (-want +got):\n%s", diff)
	}
}

func TestMeansNonNumeric(t *testing.T) {
	tab := new(table.Builder).
		Add("g", []string{"a", "b"}).
		Add("name", []string{"p", "q"}).
		Done()
	if _, err := means(tab, "g", "name"); err == nil {
		t.Fatal("means of a string column succeeded")
	}
}

func TestFloatsDoesNotAlias(t *testing.T) {
	col := []float64{3, 1, 2}
	tab := new(table.Builder).Add("x", col).Done()
	xs, err := floats(tab, "x")
	if err != nil {
		t.Fatal(err)
	}
	xs[0] = 100
	if col[0] != 3 {
		t.Fatalf("floats aliases the table column")
	}
}

func TestMeansOfGroupingColumn(t *testing.T) {
	tab := new(table.Builder).Add("g", []int{1, 1, 2}).Done()
	got, err := means(tab, "g", "g")
	if err != nil {
		t.Fatal(err)
	}
	want := []Bar{{"1", 1}, {"2", 2}}
	if diff := cmp.Diff(want, got.Bars); diff != "" {
		t.Errorf("means mismatch (-want +got):\n%s", diff)
	}
}

func TestProportionsMissingKeys(t *testing.T) {
	tab := new(table.Builder).
		Add("c", []sql.NullString{{String: "a", Valid: true}, {}, {String: "b", Valid: true}, {String: "a", Valid: true}}).
		Add("x", []int{1, 2, 3, 4}).
		Done()
	got := proportions(tab, "c")
	want := []Bar{{"a", 66.67}, {"b", 33.33}}
	if diff := cmp.Diff(want, got.Bars); diff != "" {
		t.Errorf("proportions mismatch (-want +got):\n%s", diff)
	}

	m, err := means(tab, "c", "x")
	if err != nil {
		t.Fatal(err)
	}
	want = []Bar{{"a", 2.5}, {"b", 3}}
	if diff := cmp.Diff(want, m.Bars); diff != "" {
		t.Errorf("means mismatch (-want +got):\n%s", diff)
	}
}

func TestProportionsBoolKeys(t *testing.T) {
	tab := new(table.Builder).Add("ok", []bool{true, false, true}).Done()
	got := proportions(tab, "ok")
	want := []Bar{{"false", 33.33}, {"true", 66.67}}
	if diff := cmp.Diff(want, got.Bars); diff != "" {
		t.Errorf("proportions mismatch (-want +got):\n%s", diff)
	}

	nb := new(table.Builder).Add("ok", []sql.NullBool{{Bool: true, Valid: true}, {}, {Bool: false, Valid: true}}).Done()
	got = proportions(nb, "ok")
	want = []Bar{{"false", 50}, {"true", 50}}
	if diff := cmp.Diff(want, got.Bars); diff != "" {
		t.Errorf("nullable proportions mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupsAllMissing(t *testing.T) {
	nan := math.NaN()
	tab := new(table.Builder).
		Add("k", []float64{nan, nan}).
		Add("v", []float64{1, 2}).
		Done()
	if got := proportions(tab, "k"); len(got.Bars) != 0 {
		t.Errorf("proportions of all-NaN keys = %v; want no bars", got.Bars)
	}
	got, err := means(tab, "k", "v")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Bars) != 0 {
		t.Errorf("means over all-NaN keys = %v; want no bars", got.Bars)
	}
}
