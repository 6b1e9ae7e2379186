package border

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// Index maps border signatures to the sorted, distinct IDs of the tiles
// exhibiting them.
type Index struct {
	sigs map[string][]int
}

// Build indexes every edge of every tile, in both reading directions.
// Palindromic signatures are inserted twice without effect.
// Returns ErrAmbiguousBorder if any signature resolves to more than two tiles.
func Build(tiles []tile.Tile) (*Index, error) {
	idx := &Index{sigs: make(map[string][]int, len(tiles)*8)}
	for _, t := range tiles {
		for _, sig := range t.Grid.Edges().All() {
			idx.add(sig, t.ID)
			idx.add(grid.Reverse(sig), t.ID)
		}
	}

	// Deterministic error reporting: check signatures in sorted order.
	keys := make([]string, 0, len(idx.sigs))
	for sig := range idx.sigs {
		keys = append(keys, sig)
	}
	sort.Strings(keys)
	for _, sig := range keys {
		if ids := idx.sigs[sig]; len(ids) > 2 {
			return nil, fmt.Errorf("signature %q shared by tiles %v: %w", sig, ids, ErrAmbiguousBorder)
		}
	}

	return idx, nil
}

func (idx *Index) add(sig string, id int) {
	ids := idx.sigs[sig]
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		return
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	idx.sigs[sig] = ids
}

// Lookup returns the IDs of tiles exhibiting sig in either direction, in
// ascending order. The result is a copy; nil if no tile has the signature.
func (idx *Index) Lookup(sig string) []int {
	ids := idx.sigs[sig]
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// Unmatched reports whether sig belongs to tile id alone, i.e. it lies on the
// outer border of the mosaic.
func (idx *Index) Unmatched(sig string, id int) bool {
	ids := idx.sigs[sig]

	return len(ids) == 1 && ids[0] == id
}

// Partners returns the IDs sharing sig, excluding id.
func (idx *Index) Partners(sig string, id int) []int {
	var out []int
	for _, other := range idx.sigs[sig] {
		if other != id {
			out = append(out, other)
		}
	}

	return out
}

// Len returns the number of distinct signatures indexed.
func (idx *Index) Len() int {
	return len(idx.sigs)
}
