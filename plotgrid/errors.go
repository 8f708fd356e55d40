// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"fmt"
	"strings"
)

// LayoutError reports a grid that cannot be laid out, such as one
// with no features.
type LayoutError struct {
	Features int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("plotgrid: cannot lay out a grid of %d features", e.Features)
}

// DataAccessError reports a feature or target column that is absent
// from the dataset.
type DataAccessError struct {
	Column string
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("plotgrid: column %q not in dataset", e.Column)
}

// RenderError reports a failure to aggregate or draw one panel.
type RenderError struct {
	Index   int
	Feature string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("plotgrid: panel %d (%s): %v", e.Index, e.Feature, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// PartialError is returned by Render when some panels failed and the
// rest were drawn.
type PartialError struct {
	Panels int
	Failed []*RenderError
}

func (e *PartialError) Error() string {
	var feats []string
	for _, f := range e.Failed {
		feats = append(feats, f.Feature)
	}
	msg := fmt.Sprintf("plotgrid: %d of %d panels failed (%s)", len(e.Failed), e.Panels, strings.Join(feats, ", "))
	if len(e.Failed) > 0 {
		msg += ": " + e.Failed[0].Err.Error()
	}
	return msg
}
