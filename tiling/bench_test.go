package tiling_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sqtile/grid"
	"github.com/katalvlaran/sqtile/tiling"
)

// BenchmarkTile_Random measures Tile on a 500×500 grid with 80% floor.
func BenchmarkTile_Random(b *testing.B) {
	g := randomGrid(rand.New(rand.NewSource(42)), 500, 500, 0.8)
	for _, strat := range []tiling.SideStrategy{tiling.RunLengthSide, tiling.ForwardRunSide, tiling.FreeSquareSide} {
		b.Run(strat.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tiling.Tile(g, tiling.WithSideStrategy(strat))
			}
		})
	}
}

// BenchmarkTile_OpenSquare measures the worst case: one tile over an open grid.
func BenchmarkTile_OpenSquare(b *testing.B) {
	const n = 500
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = grid.Floor
		}
	}
	g := grid.MustNew(values)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tiling.Tile(g, tiling.WithSideStrategy(tiling.ForwardRunSide))
	}
}
