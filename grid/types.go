// SPDX-License-Identifier: MIT

package grid

// Cell values accepted by New.
const (
	Wall  = 0
	Floor = 1
)

// Grid is a rectangular occupancy grid. It is immutable once built:
// cells[row][col] holds Wall or Floor and is never written after New.
type Grid struct {
	width, height int
	cells         [][]int
}

// Region is a 4-connected set of floor cells, stored as row-major indices
// in BFS discovery order.
type Region []int
