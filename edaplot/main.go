// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edaplot draws a grid of univariate plots, one per column of
// a dataset, for exploratory data analysis.
//
// The input is a CSV file with a header row or a Go benchmark results
// file [1], read from the named file or standard input. Each selected
// column gets one panel in a three-column grid. Panels show a percent
// histogram (the default), horizontal bars of group proportions or of
// per-group means of another column, or a boxplot.
//
// With -config, edaplot instead renders each "figure" block of an
// HCL file, for example:
//
//	figure "sizes" {
//	  features = ["weight", "height"]
//	  mode     = "box"
//	  output   = "sizes.png"
//	}
//
// Output is SVG unless the output file ends in ".png" or -png is given.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/aclements/edaplot/dataset"
	"github.com/aclements/edaplot/plotgrid"
	"github.com/aclements/edaplot/plotgrid/pngout"
	"github.com/aclements/edaplot/plotgrid/svgout"
	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("edaplot: ")
	log.SetFlags(0)

	var (
		flagFormat     = flag.String("format", "csv", "input `format`: csv or bench")
		flagFeatures   = flag.String("features", "", "shell-quoted `list` of columns to plot (default: all columns)")
		flagMode       = flag.String("mode", "hist", "plot `mode`: hist, bar, or box")
		flagMean       = flag.String("mean", "", "with -mode bar, plot the mean of `column` for each group")
		flagKDE        = flag.Bool("kde", false, "overlay a kernel density estimate on histograms")
		flagBins       = flag.Int("bins", 0, "number of histogram `bins` (default: automatic)")
		flagColor      = flag.String("color", "", "fill `color` as #rrggbb or a color name (default #8d0801)")
		flagSize       = flag.String("size", "24x12", "figure size `WxH` in inches")
		flagTextOffset = flag.Float64("text-offset", 0.5, "shift bar annotations by `offset` data units")
		flagDPI        = flag.Float64("dpi", 96, "output `resolution` in pixels per inch")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagPNG        = flag.Bool("png", false, "write PNG instead of SVG")
		flagScale      = flag.Float64("scale", 1, "downsample PNG output by `factor`")
		flagConfig     = flag.String("config", "", "render the figures described in HCL `file`")
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	// Collect the figures to draw.
	var jobs []*job
	if *flagConfig != "" {
		src, err := os.ReadFile(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
		jobs, err = parseConfig(src, *flagConfig)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		j := &job{output: *flagOut, png: *flagPNG, scale: *flagScale}
		var err error
		if j.features, err = parseFeatures(*flagFeatures); err != nil {
			log.Fatal(err)
		}
		if j.mode, err = plotgrid.ParseMode(*flagMode, *flagMean, *flagKDE, *flagBins); err != nil {
			log.Fatal(err)
		}
		j.style.TextOffset = *flagTextOffset
		j.style.DPI = *flagDPI
		if j.style.Width, j.style.Height, err = parseSize(*flagSize); err != nil {
			log.Fatal(err)
		}
		if *flagColor != "" {
			if j.style.Color, err = plotgrid.ParseColor(*flagColor); err != nil {
				log.Fatal(err)
			}
		}
		jobs = []*job{j}
	}
	for _, j := range jobs {
		if j.isPNG() && j.output == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatal("refusing to write PNG to a terminal; use -o")
		}
	}

	tab, err := readInput(flag.Arg(0), *flagFormat)
	if err != nil {
		log.Fatal(err)
	}

	if status := runJobs(jobs, tab, os.Stdout); status != 0 {
		pprof.StopCPUProfile()
		os.Exit(status)
	}
}

// runJobs runs every job, logging failures, and returns the exit
// status: 0 if all figures were written in full and 1 otherwise.
func runJobs(jobs []*job, tab *table.Table, stdout io.Writer) int {
	status := 0
	for _, j := range jobs {
		if err := j.run(tab, stdout); err != nil {
			log.Printf("%s: %v", j, err)
			status = 1
		}
	}
	return status
}

// readInput reads the dataset at path ("" or "-" for stdin) in the
// given format.
func readInput(path, format string) (*table.Table, error) {
	f := os.Stdin
	if path != "" && path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	switch format {
	case "csv":
		return dataset.ReadCSV(f)
	case "bench":
		return dataset.ReadBench(f)
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// parseFeatures splits a shell-quoted list of column names.
func parseFeatures(s string) ([]string, error) {
	features, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad -features list: %w", err)
	}
	return features, nil
}

// parseSize parses a figure size of the form "WxH".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad size %q: want WxH", s)
	}
	w, err1 := strconv.ParseFloat(ws, 64)
	h, err2 := strconv.ParseFloat(hs, 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q: want positive WxH", s)
	}
	return w, h, nil
}

// A job is one figure to render and where to write it.
type job struct {
	label    string
	features []string
	mode     plotgrid.Mode
	style    plotgrid.Style

	// output is the output file, or "" for stdout.
	output string
	png    bool
	scale  float64
}

func (j *job) String() string {
	if j.label != "" {
		return j.label
	}
	if j.output != "" {
		return j.output
	}
	return "figure"
}

func (j *job) isPNG() bool {
	return j.png || strings.EqualFold(filepath.Ext(j.output), ".png")
}

// run renders j from tab and writes it to j.output, or to stdout if
// j.output is empty. Nothing is written if the figure cannot be laid
// out. A figure with failed panels is still written and run returns
// the *plotgrid.PartialError.
func (j *job) run(tab *table.Table, stdout io.Writer) error {
	features := j.features
	if len(features) == 0 {
		features = tab.Columns()
	}

	var buf bytes.Buffer
	var s plotgrid.Surface
	if j.isPNG() {
		ps := pngout.New(&buf)
		ps.Scale = j.scale
		s = ps
	} else {
		s = svgout.New(&buf)
	}
	_, err := plotgrid.Render(s, tab, features, j.mode, j.style)
	var perr *plotgrid.PartialError
	if err != nil && !errors.As(err, &perr) {
		return err
	}

	if j.output == "" {
		if _, werr := stdout.Write(buf.Bytes()); werr != nil {
			return werr
		}
	} else if werr := os.WriteFile(j.output, buf.Bytes(), 0666); werr != nil {
		return werr
	}
	return err
}
