// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// isNumeric reports whether a column of element kind k can be
// converted to float64.
func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func numericColumn(t *table.Table, col string) bool {
	seq := t.Column(col)
	return seq != nil && isNumeric(reflect.TypeOf(seq).Elem().Kind())
}

// floats returns the finite values of column col of t. The result
// never aliases the table.
func floats(t *table.Table, col string) ([]float64, error) {
	xs, err := columnFloats(t, col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if isFinite(x) {
			out = append(out, x)
		}
	}
	return out, nil
}

// columnFloats returns every value of column col of t as a float64,
// including NaNs.
func columnFloats(t *table.Table, col string) ([]float64, error) {
	seq := t.Column(col)
	if seq == nil {
		return nil, &DataAccessError{Column: col}
	}
	if et := reflect.TypeOf(seq).Elem(); !isNumeric(et.Kind()) {
		return nil, fmt.Errorf("column %q has non-numeric type %s", col, et)
	}
	var xs []float64
	slice.Convert(&xs, seq)
	return xs, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// keys returns the values of seq for use as group keys. missing[i]
// is set for NaN floats and for invalid sql.NullString and
// sql.NullBool values, which are unwrapped in the result.
func keys(seq table.Slice) (out table.Slice, missing []bool) {
	missing = make([]bool, reflect.ValueOf(seq).Len())
	switch seq := seq.(type) {
	case []sql.NullString:
		ss := make([]string, len(seq))
		for i, v := range seq {
			ss[i], missing[i] = v.String, !v.Valid
		}
		return ss, missing
	case []sql.NullBool:
		bs := make([]bool, len(seq))
		for i, v := range seq {
			bs[i], missing[i] = v.Bool, !v.Valid
		}
		return bs, missing
	}
	sv := reflect.ValueOf(seq)
	if k := sv.Type().Elem().Kind(); k == reflect.Float32 || k == reflect.Float64 {
		for i := range missing {
			missing[i] = math.IsNaN(sv.Index(i).Float())
		}
	}
	return seq, missing
}

type group struct {
	key   interface{}
	label string
	// rows are the row indexes of the group in the source table.
	rows []int
}

// groupBy splits the rows of t by the distinct values of col. Groups
// are in key order if the key type is orderable or bool, and in order
// of first appearance otherwise. Rows with missing keys are dropped.
func groupBy(t *table.Table, col string) []group {
	ks, missing := keys(t.MustColumn(col))

	// Group a table of just the present keys and their row
	// indexes. GroupBy turns the key into a constant column, so
	// the row column keeps each group's length.
	var rows []int
	for i, m := range missing {
		if !m {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	kt := new(table.Builder).Add("key", slice.Select(ks, rows)).Add("row", rows).Done()

	g := table.GroupBy(kt, "key")
	var groups []group
	for _, gid := range g.Tables() {
		key := gid.Label()
		rows := g.Table(gid).MustColumn("row").([]int)
		groups = append(groups, group{key, fmt.Sprint(key), rows})
	}

	keyType := reflect.TypeOf(groups[0].key)
	switch {
	case keyType.Kind() == reflect.Bool:
		sort.SliceStable(groups, func(i, j int) bool {
			return !groups[i].key.(bool) && groups[j].key.(bool)
		})
	case generic.CanOrderR(keyType.Kind()):
		byKey := make(map[interface{}]group, len(groups))
		sorted := reflect.MakeSlice(reflect.SliceOf(keyType), 0, len(groups))
		for _, gr := range groups {
			byKey[gr.key] = gr
			sorted = reflect.Append(sorted, reflect.ValueOf(gr.key))
		}
		slice.Sort(sorted.Interface())
		for i := range groups {
			groups[i] = byKey[sorted.Index(i).Interface()]
		}
	}
	return groups
}

// proportions returns the percentage of rows of t in each group of
// feature, rounded to two decimal places. Rows with a missing feature
// value are not counted.
func proportions(t *table.Table, feature string) *Bars {
	groups := groupBy(t, feature)
	total := 0
	for _, gr := range groups {
		total += len(gr.rows)
	}
	bars := &Bars{Percent: true}
	for _, gr := range groups {
		pct := round2(float64(len(gr.rows)) / float64(total) * 100)
		bars.Bars = append(bars.Bars, Bar{Label: gr.label, Value: pct})
	}
	return bars
}

// means returns the mean of target in each group of feature, rounded
// to two decimal places. NaN targets are skipped.
func means(t *table.Table, feature, target string) (*Bars, error) {
	ys, err := columnFloats(t, target)
	if err != nil {
		return nil, err
	}
	bars := &Bars{}
	for _, gr := range groupBy(t, feature) {
		var xs []float64
		for _, i := range gr.rows {
			if isFinite(ys[i]) {
				xs = append(xs, ys[i])
			}
		}
		bars.Bars = append(bars.Bars, Bar{Label: gr.label, Value: round2(stats.Mean(xs))})
	}
	return bars, nil
}
