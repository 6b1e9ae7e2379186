package mosaic_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/border"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// sampleImage is the borderless image assembled from testdata/sample.txt.
var sampleImage = []string{
	".####...#####..#...###..",
	"#####..#..#.#.####..#.#.",
	".#.#...#.###...#.##.##..",
	"#.#.##.###.#.##.##.#####",
	"..##.###.####..#.####.##",
	"...#.#..##.##...#..#..##",
	"#.##.#..#.#..#..##.#.#..",
	".###.##.....#...###.#...",
	"#.####.#.#....##.#..#.#.",
	"##...#..#....#..#...####",
	"..#.##...###..#.#####..#",
	"....#.##.#.#####....#...",
	"..##.##.###.....#.##..#.",
	"#...#...###..####....##.",
	".#.##...#.##.#.#.###...#",
	"#.###.#..####...##..#...",
	"#.###...#.##...#.######.",
	".###.###.#######..#####.",
	"..##.#..#..#.#######.###",
	"#.#..##.########..#..##.",
	"#.#####..#.#...##..#....",
	"#....##..#.#########..##",
	"#...#.....#..##...###.##",
	"#..###....##.#...##.##.#",
}

func loadSample(t testing.TB) []tile.Tile {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	tiles, err := tile.Read(f)
	require.NoError(t, err)

	return tiles
}

// sampleWithBlank returns the sample with interior tile 1427 replaced by an
// all-'.' tile whose edges match no other tile.
func sampleWithBlank(t testing.TB) []tile.Tile {
	t.Helper()
	tiles := loadSample(t)
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = strings.Repeat(".", 10)
	}
	for i, tl := range tiles {
		if tl.ID == 1427 {
			tiles[i] = mustTile(t, 1427, rows...)
		}
	}

	return tiles
}

func sampleSet(t testing.TB) (*tile.Set, *border.Index) {
	t.Helper()
	s, err := tile.NewSet(loadSample(t))
	require.NoError(t, err)
	idx, err := border.Build(s.Tiles())
	require.NoError(t, err)

	return s, idx
}

func mustTile(t testing.TB, id int, rows ...string) tile.Tile {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)

	return tile.Tile{ID: id, Grid: g}
}
