// SPDX-License-Identifier: MIT

// Package tiling partitions a binary occupancy grid into labeled square
// tiles using a greedy top-left scan.
//
// What:
//
//   - Tile scans the grid row-major. Each floor cell that is still unlabeled
//     anchors a new tile; the tile's side is chosen by a SideStrategy and its
//     cells are filled with the next label, never overwriting earlier tiles.
//   - RunLengthSide (default) takes the minimum of the four raw occupancy runs
//     (left, right, up, down) from the anchor. Runs ignore earlier tiles, so
//     a tile may end up clipped by walls or neighbours and not be square.
//   - ForwardRunSide uses only the right and down runs, so a fully open
//     area starting at the anchor becomes a single tile.
//   - FreeSquareSide grows the largest square of unlabeled floor cells
//     instead, so every tile is a perfect square.
//   - Verify re-checks coverage, wall preservation, label order and
//     squareness on a Result.
//
// Labels start at 1 and increase in discovery order. Walls are reported as
// Wall and rendered with a non-numeric marker ("x" by default).
//
// Complexity:
//
//   - Tile: O(W×H×S) time where S is the largest tile side, O(W×H) memory.
//   - Verify: O(W×H) time and memory.
//
// The tiler is greedy: it does not minimise the number of tiles.
package tiling
