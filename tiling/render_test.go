package tiling_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqtile/grid"
	"github.com/katalvlaran/sqtile/tiling"
)

// TestRender_Default checks String and WriteTo use the "x" marker.
func TestRender_Default(t *testing.T) {
	res, err := tiling.Tile(exampleGrid())
	require.NoError(t, err)

	want := "1 x 2 3\n4 5 6 x\n7 8 9 9\nx x 9 9\n"
	require.Equal(t, want, res.String())

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, buf.String())
}

// TestRender_Marker checks a custom wall marker.
func TestRender_Marker(t *testing.T) {
	g := grid.MustNew([][]int{
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
	})
	res, err := tiling.Tile(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Render(&buf, "#"))
	require.Equal(t, "1 # 2 # 3 # 4 # 5 # 6\n", buf.String())
}

// TestValidateWallMarker rejects markers that could be confused with labels.
func TestValidateWallMarker(t *testing.T) {
	for _, ok := range []string{"x", "#", "--", "wall", "·"} {
		require.NoError(t, tiling.ValidateWallMarker(ok), ok)
	}
	for _, bad := range []string{"", "0", "-1", "12", "a b", "\t"} {
		require.ErrorIs(t, tiling.ValidateWallMarker(bad), tiling.ErrInvalidMarker, bad)
	}

	res, err := tiling.Tile(exampleGrid())
	require.NoError(t, err)
	require.ErrorIs(t, res.Render(&bytes.Buffer{}, "7"), tiling.ErrInvalidMarker)
}
