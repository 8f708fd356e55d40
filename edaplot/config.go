// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/edaplot/plotgrid"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// configFile is the top-level structure of an HCL figure file.
type configFile struct {
	Figures []*figureBlock `hcl:"figure,block"`
}

// figureBlock describes one figure. Zero fields take the same
// defaults as the corresponding command-line flags.
type figureBlock struct {
	Label      string   `hcl:"label,label"`
	Features   []string `hcl:"features,optional"`
	Mode       string   `hcl:"mode,optional"`
	Mean       string   `hcl:"mean,optional"`
	KDE        bool     `hcl:"kde,optional"`
	Bins       int      `hcl:"bins,optional"`
	Color      string   `hcl:"color,optional"`
	Width      float64  `hcl:"width,optional"`
	Height     float64  `hcl:"height,optional"`
	TextOffset *float64 `hcl:"text_offset,optional"`
	DPI        float64  `hcl:"dpi,optional"`
	Scale      float64  `hcl:"scale,optional"`
	Output     string   `hcl:"output,optional"`
}

// parseConfig decodes the figure blocks in the HCL source src.
// filename is used only in error messages.
func parseConfig(src []byte, filename string) ([]*job, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	var cfg configFile
	if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}
	if len(cfg.Figures) == 0 {
		return nil, fmt.Errorf("%s: no figure blocks", filename)
	}

	jobs := make([]*job, 0, len(cfg.Figures))
	outputs := make(map[string]string)
	for _, fb := range cfg.Figures {
		j, err := fb.job()
		if err != nil {
			return nil, fmt.Errorf("%s: figure %q: %w", filename, fb.Label, err)
		}
		if prev, ok := outputs[j.output]; ok {
			return nil, fmt.Errorf("%s: figures %q and %q both write %s", filename, prev, fb.Label, j.output)
		}
		outputs[j.output] = fb.Label
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (fb *figureBlock) job() (*job, error) {
	mode, err := plotgrid.ParseMode(fb.Mode, fb.Mean, fb.KDE, fb.Bins)
	if err != nil {
		return nil, err
	}
	j := &job{
		label:    fb.Label,
		features: fb.Features,
		mode:     mode,
		output:   fb.Output,
		scale:    fb.Scale,
		style: plotgrid.Style{
			Width:      fb.Width,
			Height:     fb.Height,
			TextOffset: plotgrid.DefaultStyle().TextOffset,
			DPI:        fb.DPI,
		},
	}
	if j.output == "" {
		j.output = fb.Label + ".svg"
	}
	if fb.TextOffset != nil {
		j.style.TextOffset = *fb.TextOffset
	}
	if fb.Color != "" {
		if j.style.Color, err = plotgrid.ParseColor(fb.Color); err != nil {
			return nil, err
		}
	}
	return j, nil
}
