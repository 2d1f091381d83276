// SPDX-License-Identifier: MIT

package tiling

import (
	"fmt"

	"github.com/katalvlaran/sqtile/grid"
)

const methodTile = "Tile"

// tiler is the per-call state of Tile. It owns the output grid and the
// label counter; nothing is shared between calls.
type tiler struct {
	g         *grid.Grid
	opts      Options
	out       [][]int
	nextLabel int
	tiles     []Placement
}

// Tile partitions g into labeled tiles.
//
// Behavior:
//  1. Walls become Wall, floor cells start Unlabeled.
//  2. Discovery: scan rows top to bottom, columns left to right.
//  3. Each floor cell still Unlabeled anchors a tile of side chosen by
//     opts.Side; the fill writes the label only into Unlabeled cells.
//  4. Labels start at 1 and increase by one per tile.
//
// Either the full Result is returned or an error and no Result.
// Returns ErrNilGrid for a nil grid and, under Strict, ErrOutOfBounds.
// Complexity: O(W×H×S) time, O(W×H) memory.
func Tile(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodTile, ErrNilGrid)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := newTiler(g, o)
	if err := t.discover(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTile, err)
	}

	return &Result{
		width:  g.Width(),
		height: g.Height(),
		labels: t.out,
		tiles:  t.tiles,
	}, nil
}

// newTiler allocates the output grid with Wall/Unlabeled cells.
func newTiler(g *grid.Grid, o Options) *tiler {
	out := make([][]int, g.Height())
	for r := range out {
		out[r] = make([]int, g.Width())
		for c := range out[r] {
			if g.IsFloor(r, c) {
				out[r][c] = Unlabeled
			} else {
				out[r][c] = Wall
			}
		}
	}

	return &tiler{g: g, opts: o, out: out, nextLabel: 1}
}

// discover runs the outer row-major scan and places a tile at every
// unclaimed floor cell.
func (t *tiler) discover() error {
	for r := 0; r < t.g.Height(); r++ {
		for c := 0; c < t.g.Width(); c++ {
			if !t.g.IsFloor(r, c) || t.out[r][c] != Unlabeled {
				continue
			}
			tile, err := t.fill(r, c, t.side(r, c))
			if err != nil {
				return err
			}
			t.tiles = append(t.tiles, tile)
			t.nextLabel++
		}
	}

	return nil
}

// side returns the candidate side for the anchor (row, col).
func (t *tiler) side(row, col int) int {
	switch t.opts.Side {
	case ForwardRunSide:
		return ForwardSquareSide(t.g, row, col)
	case FreeSquareSide:
		return t.freeSquareSide(row, col)
	default:
		return MaxSquareSide(t.g, row, col)
	}
}

// available reports whether (row, col) is an in-bounds floor cell not yet
// claimed by any tile.
func (t *tiler) available(row, col int) bool {
	return t.g.IsFloor(row, col) && t.out[row][col] == Unlabeled
}

// freeSquareSide grows the square anchored at (row, col) one ring at a time
// while the new bottom row and right column are all available.
func (t *tiler) freeSquareSide(row, col int) int {
	s := 1
	for {
		for i := 0; i <= s; i++ {
			if !t.available(row+s, col+i) || !t.available(row+i, col+s) {
				return s
			}
		}
		s++
	}
}

// fill writes nextLabel into every Unlabeled cell of the side×side square
// anchored at (row, col). Cells claimed earlier are left alone. The square
// is clipped to the grid under Clamp and rejected under Strict.
func (t *tiler) fill(row, col, side int) (Placement, error) {
	rows, cols := side, side
	if row+side > t.g.Height() || col+side > t.g.Width() {
		if t.opts.Bounds == Strict {
			return Placement{}, fmt.Errorf("label %d at (%d,%d) side %d in %dx%d grid: %w",
				t.nextLabel, row, col, side, t.g.Height(), t.g.Width(), ErrOutOfBounds)
		}
		rows = min(side, t.g.Height()-row)
		cols = min(side, t.g.Width()-col)
	}

	tile := Placement{Label: t.nextLabel, Row: row, Col: col, Side: side}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if t.out[row+i][col+j] == Unlabeled {
				t.out[row+i][col+j] = t.nextLabel
				tile.Cells++
			}
		}
	}

	return tile, nil
}
