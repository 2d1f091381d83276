// SPDX-License-Identifier: MIT

// Command sqtile partitions a binary occupancy grid into labeled square
// tiles.
//
// What:
//
//	• grid/: immutable 0/1 occupancy grid, shape validation, floor regions
//	• tiling/: greedy square tiler, verification, text rendering
//	• gridio/: YAML and plain-text grid files
//	• cmd/: cobra commands
//
// Quick example (the built-in layout):
//
//	input      output
//	1 0 1 1    1 x 2 3
//	1 1 1 0    4 5 6 x
//	1 1 1 1    7 8 9 9
//	0 0 1 1    x x 9 9
//
// Usage:
//
//	sqtile                              # tile the built-in example
//	sqtile tile room.yaml --verify      # tile a file and check the result
//	sqtile tile room.txt --strategy free --wall '#'
//	sqtile example > room.txt
package main
