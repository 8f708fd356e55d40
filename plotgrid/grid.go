// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

// Columns is the fixed number of panels per grid row.
const Columns = 3

// Grid is the cell layout of a figure. Panels fill cells in row-major
// order; cells past the last panel do not exist in the figure.
type Grid struct {
	Rows, Cols int

	// N is the number of populated cells.
	N int
}

// NewGrid returns the layout for n panels. It returns a *LayoutError
// if n is not positive.
func NewGrid(n int) (Grid, error) {
	if n <= 0 {
		return Grid{}, &LayoutError{Features: n}
	}
	rows := n / Columns
	if n%Columns > 0 {
		rows++
	}
	return Grid{Rows: rows, Cols: Columns, N: n}, nil
}

// Cell returns the row and column of panel i.
func (g Grid) Cell(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// Unused returns the number of trailing cells with no panel.
func (g Grid) Unused() int {
	return g.Rows*g.Cols - g.N
}
