// SPDX-License-Identifier: MIT

package tiling

import "errors"

// Sentinel errors for tiling operations. Callers branch with errors.Is;
// implementations attach context with %w.
var (
	// ErrNilGrid indicates Tile or Verify was called without a grid.
	ErrNilGrid = errors.New("tiling: grid is nil")
	// ErrNilResult indicates Verify was called without a result.
	ErrNilResult = errors.New("tiling: result is nil")
	// ErrOutOfBounds indicates a candidate square extends past the grid edge
	// under the Strict bounds policy.
	ErrOutOfBounds = errors.New("tiling: square extends past grid boundary")
	// ErrUnknownStrategy indicates an unrecognised side strategy name.
	ErrUnknownStrategy = errors.New("tiling: unknown side strategy")
	// ErrInvalidMarker indicates a wall marker that is empty, numeric or
	// contains whitespace.
	ErrInvalidMarker = errors.New("tiling: wall marker must be non-empty, non-numeric and without spaces")
)

// Verification errors, joined by Verify.
var (
	// ErrShapeMismatch indicates the result and grid dimensions differ.
	ErrShapeMismatch = errors.New("tiling: result shape differs from grid")
	// ErrUncovered indicates a floor cell without a positive label.
	ErrUncovered = errors.New("tiling: floor cell not covered")
	// ErrWallLabeled indicates a wall cell that does not carry Wall.
	ErrWallLabeled = errors.New("tiling: wall cell carries a label")
	// ErrLabelOrder indicates labels are not consecutive in first-encounter order.
	ErrLabelOrder = errors.New("tiling: labels not consecutive in scan order")
	// ErrNotSquare indicates a label whose cells do not form a square.
	ErrNotSquare = errors.New("tiling: tile is not square")
	// ErrTileMismatch indicates the tile list disagrees with the label grid.
	ErrTileMismatch = errors.New("tiling: tile list disagrees with labels")
)
