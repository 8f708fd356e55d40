// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads tabular data into go-gg tables for plotting.
package dataset

import (
	"database/sql"
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// naValues are the cell values read as missing.
var naValues = []string{"", "NA", "NaN", "<nil>"}

// ReadCSV reads a CSV file with a header row from r. Column types are
// detected from the values: integer, float, bool, or string. Empty
// cells and "NA" are missing values.
//
// Numeric columns with missing values become float64 columns with
// NaN in the missing rows. String and bool columns with missing
// values become []sql.NullString and []sql.NullBool, which plotgrid
// treats as missing group keys.
func ReadCSV(r io.Reader) (*table.Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("reading CSV: %w", df.Err)
	}
	return FromDataFrame(df)
}

// FromDataFrame converts df to a table with one column per series,
// in df's column order.
func FromDataFrame(df dataframe.DataFrame) (*table.Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	tb := new(table.Builder)
	for _, name := range df.Names() {
		col, err := seriesSlice(df.Col(name))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		tb.Add(name, col)
	}
	return tb.Done(), nil
}

// seriesSlice returns the values of s as a Go slice suitable for a
// table column.
func seriesSlice(s series.Series) (interface{}, error) {
	switch s.Type() {
	case series.Int:
		if hasNaN(s) {
			return nanFloats(s), nil
		}
		return s.Int()
	case series.Float:
		return nanFloats(s), nil
	case series.Bool:
		if !hasNaN(s) {
			return s.Bool()
		}
		nan := s.IsNaN()
		out := make([]sql.NullBool, s.Len())
		for i := range out {
			if !nan[i] {
				b, err := s.Elem(i).Bool()
				if err != nil {
					return nil, err
				}
				out[i] = sql.NullBool{Bool: b, Valid: true}
			}
		}
		return out, nil
	default:
		if !hasNaN(s) {
			return s.Records(), nil
		}
		nan := s.IsNaN()
		out := make([]sql.NullString, s.Len())
		for i, v := range s.Records() {
			out[i] = sql.NullString{String: v, Valid: !nan[i]}
		}
		return out, nil
	}
}

func hasNaN(s series.Series) bool {
	for _, nan := range s.IsNaN() {
		if nan {
			return true
		}
	}
	return false
}

func nanFloats(s series.Series) []float64 {
	xs := s.Float()
	for i, nan := range s.IsNaN() {
		if nan {
			xs[i] = math.NaN()
		}
	}
	return xs
}
