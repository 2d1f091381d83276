package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqtile/grid"
	"github.com/katalvlaran/sqtile/tiling"
)

// exampleGrid is the 4×4 reference layout:
//
//	1 0 1 1
//	1 1 1 0
//	1 1 1 1
//	0 0 1 1
func exampleGrid() *grid.Grid {
	return grid.MustNew([][]int{
		{1, 0, 1, 1},
		{1, 1, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})
}

// TestRunLength checks each direction from a handful of cells of the example.
func TestRunLength(t *testing.T) {
	g := exampleGrid()
	cases := []struct {
		row, col              int
		left, right, up, down int
	}{
		{0, 0, 1, 1, 1, 3},
		{0, 2, 1, 2, 1, 4},
		{1, 1, 2, 2, 1, 2},
		{2, 2, 3, 2, 3, 2},
		{3, 3, 2, 1, 2, 1},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.left, tiling.RunLength(g, tiling.Left, tc.row, tc.col), "left from (%d,%d)", tc.row, tc.col)
		require.Equalf(t, tc.right, tiling.RunLength(g, tiling.Right, tc.row, tc.col), "right from (%d,%d)", tc.row, tc.col)
		require.Equalf(t, tc.up, tiling.RunLength(g, tiling.Up, tc.row, tc.col), "up from (%d,%d)", tc.row, tc.col)
		require.Equalf(t, tc.down, tiling.RunLength(g, tiling.Down, tc.row, tc.col), "down from (%d,%d)", tc.row, tc.col)
	}
}

// TestRunLength_WallOrOutside verifies a wall or off-grid start counts zero.
func TestRunLength_WallOrOutside(t *testing.T) {
	g := exampleGrid()
	for _, d := range tiling.Directions {
		require.Zero(t, tiling.RunLength(g, d, 0, 1), d.String())
		require.Zero(t, tiling.RunLength(g, d, -1, 0), d.String())
		require.Zero(t, tiling.RunLength(g, d, 0, 4), d.String())
	}
}

// TestMaxSquareSide compares the four-way and forward-only side bounds.
func TestMaxSquareSide(t *testing.T) {
	g := exampleGrid()
	require.Equal(t, 1, tiling.MaxSquareSide(g, 0, 0))
	require.Equal(t, 1, tiling.MaxSquareSide(g, 0, 2))
	require.Equal(t, 2, tiling.MaxSquareSide(g, 2, 2))

	require.Equal(t, 1, tiling.ForwardSquareSide(g, 0, 0))
	require.Equal(t, 2, tiling.ForwardSquareSide(g, 0, 2))
	require.Equal(t, 2, tiling.ForwardSquareSide(g, 1, 0))

	open := grid.MustNew([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.Equal(t, 1, tiling.MaxSquareSide(open, 0, 0))
	require.Equal(t, 3, tiling.ForwardSquareSide(open, 0, 0))
	require.Equal(t, 2, tiling.MaxSquareSide(open, 1, 1))
}

// TestDirectionString covers Stringer output.
func TestDirectionString(t *testing.T) {
	require.Equal(t, "left", tiling.Left.String())
	require.Equal(t, "right", tiling.Right.String())
	require.Equal(t, "up", tiling.Up.String())
	require.Equal(t, "down", tiling.Down.String())
	require.Equal(t, "unknown", tiling.Direction(9).String())
}
