// SPDX-License-Identifier: MIT

package grid

// offsets4 lists orthogonal neighbors as (dRow, dCol): N, E, S, W.
var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Regions finds all 4-connected regions of floor cells.
// Regions are returned in the row-major order of their first cell; within a
// region, indices are in BFS discovery order.
//
// To convert an index back to (row, col), use Coordinate.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() []Region {
	seen := make([]bool, g.width*g.height)
	var regions []Region

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] != Floor {
				continue // wall
			}
			i0 := g.Index(r, c)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range offsets4 {
					vr, vc := ur+d[0], uc+d[1]
					if !g.IsFloor(vr, vc) {
						continue
					}
					vi := g.Index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, Region(queue))
		}
	}

	return regions
}
