// SPDX-License-Identifier: MIT

package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidCell if a
// cell is neither Wall nor Floor.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
	}
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		for c, v := range values[r] {
			if v != Wall && v != Floor {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrInvalidCell)
			}
		}
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsFloor reports whether (row, col) is in bounds and occupied.
func (g *Grid) IsFloor(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col] == Floor
}

// Value returns the raw cell value at (row, col). The caller must check
// InBounds first.
func (g *Grid) Value(row, col int) int {
	return g.cells[row][col]
}

// Values returns a deep copy of the cell matrix.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for r := range g.cells {
		out[r] = append([]int(nil), g.cells[r]...)
	}

	return out
}

// FloorCount returns the number of occupied cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			n += v
		}
	}

	return n
}

// Index maps (row, col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.width, idx % g.width
}
