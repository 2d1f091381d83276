// SPDX-License-Identifier: MIT

package tiling

// Output cell values that are not tile labels.
const (
	// Wall marks an output cell whose input was a wall.
	Wall = -1
	// Unlabeled marks a floor cell not yet claimed. It never appears in a
	// returned Result.
	Unlabeled = 0
)

// DefaultWallMarker is the text used for Wall cells when rendering.
const DefaultWallMarker = "x"

// Direction selects one of the four cardinal directions for RunLength.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// delta returns the (dRow, dCol) step for d.
func (d Direction) delta() (int, int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 1, 0
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}

	return "unknown"
}

// Directions lists all four directions in the order MaxSquareSide reads them.
var Directions = [4]Direction{Left, Right, Up, Down}

// Placement describes one placed tile.
type Placement struct {
	Label int // 1-based label, in discovery order
	Row   int // anchor row (top edge)
	Col   int // anchor column (left edge)
	Side  int // candidate side chosen for the anchor
	Cells int // cells that actually received Label
}

// Square reports whether the tile filled its whole Side×Side square.
func (t Placement) Square() bool {
	return t.Cells == t.Side*t.Side
}

// Result is the labeled output of Tile. It is never mutated after return;
// accessors hand out copies.
type Result struct {
	width, height int
	labels        [][]int
	tiles         []Placement
}

// Stats summarises a Result.
type Stats struct {
	Tiles       int // number of tiles placed
	FloorCells  int // cells carrying a label
	WallCells   int // cells carrying Wall
	LargestSide int // largest candidate side among tiles
	NonSquare   int // tiles whose cells do not fill their square
}
