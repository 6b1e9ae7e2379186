package tile

import (
	"fmt"
	"sort"
)

// NewSet validates tiles and returns a Set preserving input order.
// Returns ErrMalformedTileSet if the set is empty, the count is not a perfect
// square, a tile has nil content, tile sizes differ, or an ID repeats.
// Complexity: O(T).
func NewSet(tiles []Tile) (*Set, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("no tiles: %w", ErrMalformedTileSet)
	}
	side := isqrt(len(tiles))
	if side*side != len(tiles) {
		return nil, fmt.Errorf("%d tiles is not a perfect square: %w", len(tiles), ErrMalformedTileSet)
	}

	s := &Set{
		tiles: make([]Tile, len(tiles)),
		byID:  make(map[int]int, len(tiles)),
		side:  side,
	}
	for i, t := range tiles {
		if t.Grid == nil {
			return nil, fmt.Errorf("tile %d has no content: %w", t.ID, ErrMalformedTileSet)
		}
		if i == 0 {
			s.tileSize = t.Grid.Size()
		}
		if t.Grid.Size() != s.tileSize {
			return nil, fmt.Errorf("tile %d has size %d, want %d: %w", t.ID, t.Grid.Size(), s.tileSize, ErrMalformedTileSet)
		}
		if _, dup := s.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tile id %d: %w", t.ID, ErrMalformedTileSet)
		}
		s.byID[t.ID] = i
		s.tiles[i] = t
	}

	return s, nil
}

// Len returns the number of tiles.
func (s *Set) Len() int { return len(s.tiles) }

// Side returns n, the side length of the n×n mosaic.
func (s *Set) Side() int { return s.side }

// TileSize returns the side length of every tile.
func (s *Set) TileSize() int { return s.tileSize }

// Tiles returns the tiles in input order. The slice is a copy.
func (s *Set) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)

	return out
}

// Get returns the tile with the given ID.
func (s *Set) Get(id int) (Tile, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Tile{}, false
	}

	return s.tiles[i], true
}

// IDs returns all tile IDs in ascending order.
func (s *Set) IDs() []int {
	ids := make([]int, 0, len(s.tiles))
	for _, t := range s.tiles {
		ids = append(ids, t.ID)
	}
	sort.Ints(ids)

	return ids
}

// isqrt returns the largest r with r*r <= n.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
