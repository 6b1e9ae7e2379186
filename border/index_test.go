package border_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/border"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

func mustTile(t testing.TB, id int, rows ...string) tile.Tile {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)

	return tile.Tile{ID: id, Grid: g}
}

// TestBuild_BothDirections ensures each edge is reachable by its reverse.
func TestBuild_BothDirections(t *testing.T) {
	a := mustTile(t, 1,
		"#..",
		"...",
		"..#",
	)
	b := mustTile(t, 2,
		"..#",
		"#..",
		"##.",
	)
	idx, err := border.Build([]tile.Tile{a, b})
	require.NoError(t, err)

	// a.South "..#" equals b.North; its reverse "#.." is a.North.
	assert.Equal(t, []int{1, 2}, idx.Lookup("..#"))
	assert.Equal(t, []int{1, 2}, idx.Lookup("#.."))
	// b.South "##." and its reverse ".##" belong to b alone.
	assert.Equal(t, []int{2}, idx.Lookup("##."))
	assert.Equal(t, []int{2}, idx.Lookup(".##"))
	assert.True(t, idx.Unmatched("##.", 2))
	assert.False(t, idx.Unmatched("##.", 1))
	assert.False(t, idx.Unmatched("..#", 1))
	assert.Equal(t, []int{2}, idx.Partners("..#", 1))
	assert.Nil(t, idx.Lookup("###"))
}

// TestBuild_PalindromeIsHarmless checks duplicate insertions collapse.
func TestBuild_PalindromeIsHarmless(t *testing.T) {
	idx, err := border.Build([]tile.Tile{mustTile(t, 5, "#.#", "...", "#.#")})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, idx.Lookup("#.#"))
	assert.Equal(t, 1, idx.Len())
}

// TestBuild_Ambiguous rejects a signature shared by three tiles.
func TestBuild_Ambiguous(t *testing.T) {
	tiles := []tile.Tile{
		mustTile(t, 1, "##.", "...", "..."),
		mustTile(t, 2, "##.", "#..", "#.."),
		mustTile(t, 3, ".##", ".#.", "..."),
	}
	_, err := border.Build(tiles)
	assert.ErrorIs(t, err, border.ErrAmbiguousBorder)
}

// TestLookup_ReturnsCopy guards the read-only contract.
func TestLookup_ReturnsCopy(t *testing.T) {
	idx, err := border.Build([]tile.Tile{mustTile(t, 1, "ab", "cd")})
	require.NoError(t, err)
	got := idx.Lookup("ab")
	got[0] = 99
	assert.Equal(t, []int{1}, idx.Lookup("ab"))
}
