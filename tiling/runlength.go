// SPDX-License-Identifier: MIT

package tiling

import "github.com/katalvlaran/sqtile/grid"

// RunLength counts consecutive floor cells of the input grid starting at
// (row, col) and stepping in dir, stopping at the first wall or the grid
// edge. The start cell counts, so the result is ≥ 1 for a floor start and 0
// for a wall or out-of-bounds start. Tiles already placed are not consulted.
// Complexity: O(max(W, H)).
func RunLength(g *grid.Grid, dir Direction, row, col int) int {
	dr, dc := dir.delta()
	n := 0
	for g.IsFloor(row, col) {
		n++
		row += dr
		col += dc
	}

	return n
}

// MaxSquareSide returns the minimum of the four run lengths from (row, col).
// It bounds the candidate square but does not prove the square is free of
// walls or earlier tiles.
func MaxSquareSide(g *grid.Grid, row, col int) int {
	side := RunLength(g, Directions[0], row, col)
	for _, d := range Directions[1:] {
		if n := RunLength(g, d, row, col); n < side {
			side = n
		}
	}

	return side
}

// ForwardSquareSide returns the minimum of the Right and Down runs from
// (row, col), i.e. MaxSquareSide without the runs behind the anchor.
func ForwardSquareSide(g *grid.Grid, row, col int) int {
	return min(RunLength(g, Right, row, col), RunLength(g, Down, row, col))
}
