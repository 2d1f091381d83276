// SPDX-License-Identifier: MIT

// Package grid holds the immutable binary occupancy grid consumed by the
// tiler.
//
// What:
//
//   - Grid wraps a rectangular [][]int of 0 (wall) and 1 (floor) cells.
//   - Cells are addressed as (row, col), row 0 at the top.
//   - Row-major indexing helpers map cells to flat indices and back.
//   - Regions reports 4-connected floor components.
//
// Complexity:
//
//   - New:     O(W×H) time and memory (deep copy).
//   - Regions: O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a cell holds a value other than Wall or Floor.
//
// ErrEmptyGrid and ErrNonRectangular both match ErrInvalidShape via errors.Is.
package grid
