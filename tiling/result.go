// SPDX-License-Identifier: MIT

package tiling

// Width returns the number of columns.
func (r *Result) Width() int { return r.width }

// Height returns the number of rows.
func (r *Result) Height() int { return r.height }

// Label returns the output value at (row, col): Wall or a tile label.
func (r *Result) Label(row, col int) int { return r.labels[row][col] }

// Labels returns a deep copy of the output grid.
func (r *Result) Labels() [][]int {
	out := make([][]int, len(r.labels))
	for i := range r.labels {
		out[i] = append([]int(nil), r.labels[i]...)
	}

	return out
}

// Tiles returns the tile placements in label order.
func (r *Result) Tiles() []Placement {
	return append([]Placement(nil), r.tiles...)
}

// NumTiles returns the number of tiles placed.
func (r *Result) NumTiles() int { return len(r.tiles) }

// Stats summarises the result.
func (r *Result) Stats() Stats {
	var s Stats
	s.Tiles = len(r.tiles)
	for _, row := range r.labels {
		for _, v := range row {
			if v == Wall {
				s.WallCells++
			} else {
				s.FloorCells++
			}
		}
	}
	boxes := labelBoxes(r.labels)
	for _, tl := range r.tiles {
		if tl.Side > s.LargestSide {
			s.LargestSide = tl.Side
		}
		if b, ok := boxes[tl.Label]; !ok || !b.square() {
			s.NonSquare++
		}
	}

	return s
}

// box is the bounding box and cell count of one label.
type box struct {
	minRow, minCol, maxRow, maxCol int
	cells                          int
}

// square reports whether the cells exactly fill a square bounding box.
func (b box) square() bool {
	h := b.maxRow - b.minRow + 1
	w := b.maxCol - b.minCol + 1

	return h == w && b.cells == h*w
}

// labelBoxes collects a box per positive label.
func labelBoxes(labels [][]int) map[int]box {
	boxes := make(map[int]box)
	for r, row := range labels {
		for c, v := range row {
			if v <= 0 {
				continue
			}
			b, ok := boxes[v]
			if !ok {
				b = box{minRow: r, minCol: c, maxRow: r, maxCol: c}
			}
			b.minRow = min(b.minRow, r)
			b.minCol = min(b.minCol, c)
			b.maxRow = max(b.maxRow, r)
			b.maxCol = max(b.maxCol, c)
			b.cells++
			boxes[v] = b
		}
	}

	return boxes
}
