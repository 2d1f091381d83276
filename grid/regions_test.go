package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqtile/grid"
)

// TestRegions_Simple tests Regions on a 3×4 grid.
//
// Grid (1 = floor, 0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2, ordered by first cell.
func TestRegions_Simple(t *testing.T) {
	g := grid.MustNew([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})

	regions := g.Regions()
	require.Len(t, regions, 2)
	require.Len(t, regions[0], 4)
	require.Len(t, regions[1], 2)
	require.Equal(t, g.Index(0, 1), regions[0][0])
	require.Equal(t, g.Index(2, 2), regions[1][0])
}

// TestRegions_DiagonalSeparate verifies that diagonal contact does not join regions.
func TestRegions_DiagonalSeparate(t *testing.T) {
	g := grid.MustNew([][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	})
	regions := g.Regions()
	require.Len(t, regions, 5)
	for _, reg := range regions {
		require.Len(t, reg, 1)
	}
}

// TestRegions_EdgeCases covers all-wall and all-floor grids.
func TestRegions_EdgeCases(t *testing.T) {
	require.Empty(t, grid.MustNew([][]int{{0, 0}, {0, 0}}).Regions())

	full := grid.MustNew([][]int{{1, 1}, {1, 1}})
	regions := full.Regions()
	require.Len(t, regions, 1)
	got := append([]int(nil), regions[0]...)
	sort.Ints(got)
	require.Equal(t, []int{0, 1, 2, 3}, got)
}
