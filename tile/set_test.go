package tile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

func mustTile(t testing.TB, id int, rows ...string) tile.Tile {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)

	return tile.Tile{ID: id, Grid: g}
}

// TestNewSet_Errors verifies every malformed-input condition fails before any
// placement work.
func TestNewSet_Errors(t *testing.T) {
	a := mustTile(t, 1, "#.", ".#")
	b := mustTile(t, 2, "##", "..")
	c := mustTile(t, 3, "#.", "..")
	d := mustTile(t, 4, "..", "..")
	big := mustTile(t, 5, "###", "...", "###")

	cases := []struct {
		name  string
		tiles []tile.Tile
	}{
		{"Empty", nil},
		{"NotPerfectSquare", []tile.Tile{a, b, c}},
		{"NilContent", []tile.Tile{{ID: 9}}},
		{"MixedSizes", []tile.Tile{a, b, c, big}},
		{"DuplicateID", []tile.Tile{a, b, c, mustTile(t, 1, "..", "..")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tile.NewSet(tc.tiles)
			assert.ErrorIs(t, err, tile.ErrMalformedTileSet)
		})
	}

	s, err := tile.NewSet([]tile.Tile{d, c, b, a})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.Side())
	assert.Equal(t, 2, s.TileSize())
	assert.Equal(t, []int{1, 2, 3, 4}, s.IDs())
	assert.Equal(t, 4, s.Tiles()[0].ID, "input order is preserved")

	got, ok := s.Get(3)
	require.True(t, ok)
	assert.True(t, got.Grid.Equal(c.Grid))
	_, ok = s.Get(42)
	assert.False(t, ok)
}

// TestOrientations carries the source ID through every orientation.
func TestOrientations(t *testing.T) {
	tl := mustTile(t, 7, "ab", "cd")
	os := tl.Orientations()
	require.Len(t, os, grid.NumOrientations)
	for i, o := range os {
		assert.Equal(t, 7, o.ID)
		assert.Equal(t, i, o.Orientation)
	}
	assert.True(t, os[0].Grid.Equal(tl.Grid))
	assert.Equal(t, "ca", os[1].Grid.Row(0))
}
