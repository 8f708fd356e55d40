// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"errors"
	"io"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"
)

// A run is one benchmark result line.
type run struct {
	name   string
	config map[string]string
	result map[string]float64
}

var configLineRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// ValueParser parses a raw configuration value into a typed value.
type ValueParser func(string) (interface{}, error)

// DefaultValueParsers are tried in order for each configuration
// column. Columns no parser accepts are kept as strings.
var DefaultValueParsers = []ValueParser{
	func(s string) (interface{}, error) { return strconv.Atoi(s) },
	func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
	func(s string) (interface{}, error) { return time.ParseDuration(s) },
}

// ReadBench reads a Go benchmark results file from r and returns a
// table with one row per result line.
//
// The table has a "name" column, one column per configuration key
// (from configuration lines, "/key:value" name components, and the
// "-N" GOMAXPROCS suffix), and one float64 column per result unit.
// Configuration columns are typed by the first of DefaultValueParsers
// that accepts every value in the column. Results missing from a row
// are NaN.
func ReadBench(r io.Reader) (*table.Table, error) {
	runs, err := parseRuns(r)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, errors.New("no benchmark results")
	}
	return runsToTable(runs, DefaultValueParsers), nil
}

func parseRuns(r io.Reader) ([]*run, error) {
	var runs []*run
	block := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := configLineRe.FindStringSubmatch(line); m != nil {
			block[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if b := parseRun(line, block); b != nil {
				runs = append(runs, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// parseRun parses one result line, or returns nil if line is not a
// well-formed result.
func parseRun(line string, block map[string]string) *run {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	if next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):]); f[0] != "Benchmark" && !unicode.IsUpper(next) {
		return nil
	}
	if n, err := strconv.Atoi(f[1]); err != nil || n <= 0 {
		return nil
	}

	b := &run{
		config: map[string]string{"gomaxprocs": "1"},
		result: make(map[string]float64),
	}
	for k, v := range block {
		b.config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			b.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	b.name = parts[0]
	for _, part := range parts[1:] {
		if k, v, ok := strings.Cut(part, ":"); ok {
			b.config[k] = v
		}
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		b.result[f[i+1]] = val
	}
	if len(b.result) == 0 {
		return nil
	}
	return b
}

func runsToTable(runs []*run, parsers []ValueParser) *table.Table {
	names := make([]string, len(runs))
	configs, results := map[string][]string{}, map[string][]float64{}
	for i, b := range runs {
		names[i] = b.name
		for k, v := range b.config {
			col, ok := configs[k]
			if !ok {
				col = make([]string, len(runs))
				configs[k] = col
			}
			col[i] = v
		}
		for k, v := range b.result {
			col, ok := results[k]
			if !ok {
				col = make([]float64, len(runs))
				for j := range col {
					col[j] = math.NaN()
				}
				results[k] = col
			}
			col[i] = v
		}
	}

	tb := new(table.Builder).Add("name", names)
	for _, k := range sortedKeys(configs) {
		tb.Add(k, parseColumn(configs[k], parsers))
	}
	for _, k := range sortedKeys(results) {
		tb.Add(k, results[k])
	}
	return tb.Done()
}

// parseColumn converts raw to a slice of the type produced by the
// first parser that accepts every value, or returns raw.
func parseColumn(raw []string, parsers []ValueParser) interface{} {
tryParsers:
	for _, vp := range parsers {
		var col reflect.Value
		for i, s := range raw {
			v, err := vp(s)
			if err != nil {
				continue tryParsers
			}
			if !col.IsValid() {
				col = reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(v)), len(raw), len(raw))
			}
			col.Index(i).Set(reflect.ValueOf(v))
		}
		if col.IsValid() {
			return col.Interface()
		}
	}
	return raw
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
