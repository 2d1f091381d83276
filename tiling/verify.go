// SPDX-License-Identifier: MIT

package tiling

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sqtile/grid"
)

const methodVerify = "Verify"

// Verify checks res against g and reports every violation found, joined
// with errors.Join. Each violation wraps one of ErrShapeMismatch,
// ErrUncovered, ErrWallLabeled, ErrLabelOrder, ErrNotSquare or
// ErrTileMismatch. A nil return means:
//
//   - every floor cell carries a positive label;
//   - every wall cell carries Wall;
//   - labels first appear as 1, 2, 3, ... in row-major order;
//   - the cells of each label form one axis-aligned square;
//   - the tile list matches the labels.
//
// Each cell holds one value, so no cell can belong to two labels.
// Complexity: O(W×H).
func Verify(g *grid.Grid, res *Result) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodVerify, ErrNilGrid)
	}
	if res == nil {
		return fmt.Errorf("%s: %w", methodVerify, ErrNilResult)
	}
	if g.Width() != res.width || g.Height() != res.height {
		return fmt.Errorf("grid %dx%d, result %dx%d: %w",
			g.Height(), g.Width(), res.height, res.width, ErrShapeMismatch)
	}

	var errs []error
	highest := 0
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			v := res.labels[r][c]
			if !g.IsFloor(r, c) {
				if v != Wall {
					errs = append(errs, fmt.Errorf("(%d,%d) = %d: %w", r, c, v, ErrWallLabeled))
				}
				continue
			}
			if v <= 0 {
				errs = append(errs, fmt.Errorf("(%d,%d) = %d: %w", r, c, v, ErrUncovered))
				continue
			}
			switch {
			case v == highest+1:
				highest = v
			case v > highest+1:
				errs = append(errs, fmt.Errorf("(%d,%d) first label %d after %d: %w", r, c, v, highest, ErrLabelOrder))
				highest = v
			}
		}
	}

	boxes := labelBoxes(res.labels)
	for label := 1; label <= highest; label++ {
		b, ok := boxes[label]
		if ok && !b.square() {
			errs = append(errs, fmt.Errorf("label %d spans rows %d-%d cols %d-%d with %d cells: %w",
				label, b.minRow, b.maxRow, b.minCol, b.maxCol, b.cells, ErrNotSquare))
		}
	}

	if len(res.tiles) != len(boxes) {
		errs = append(errs, fmt.Errorf("%d tiles, %d labels: %w", len(res.tiles), len(boxes), ErrTileMismatch))
	}
	for i, tl := range res.tiles {
		b, ok := boxes[tl.Label]
		if tl.Label != i+1 || !ok || b.cells != tl.Cells || b.minRow != tl.Row || b.minCol != tl.Col {
			errs = append(errs, fmt.Errorf("tile %d (label %d at (%d,%d)): %w", i, tl.Label, tl.Row, tl.Col, ErrTileMismatch))
		}
	}

	return errors.Join(errs...)
}
