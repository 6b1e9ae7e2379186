package mosaic

import (
	"fmt"

	"github.com/katalvlaran/mosaic/border"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// Solve places every tile of s into a row-major n×n arrangement.
//
// Steps:
//  1. Anchor: the first corner of sv, in the first orientation whose north
//     and west edges are unmatched, fills position 0.
//  2. Row continuation (p mod n ≠ 0): the east edge of position p-1 names the
//     only other tile sharing it; that tile's orientation whose west edge
//     equals the signature fills p.
//  3. Row start (p mod n = 0, p > 0): the same lookup on the south edge of
//     position p-n, matched against the candidate's north edge.
//
// Orientations that match and are cell-for-cell equal count as one.
// Returns ErrPlacementConflict when a step yields zero or several choices,
// ErrIncompletePlacement when the placed IDs do not cover s.
// Complexity: O(T·8·S²).
func Solve(s *tile.Set, idx *border.Index, sv Survey, opts Options) (*Placement, error) {
	if len(sv.Corners) == 0 {
		return nil, fmt.Errorf("no corner to anchor: %w", ErrNoUniqueCorner)
	}
	log := opts.Logger
	n := s.Side()
	p := &Placement{side: n, tiles: make([]tile.Oriented, 0, s.Len())}

	anchor, err := anchorTile(s, idx, sv.Corners[0])
	if err != nil {
		return nil, err
	}
	p.tiles = append(p.tiles, anchor)
	log.Debug().Int("pos", 0).Int("tile", anchor.ID).Int("orientation", anchor.Orientation).Msg("anchored corner")

	for pos := 1; pos < n*n; pos++ {
		var (
			ref  tile.Oriented
			from grid.Side
			to   grid.Side
		)
		if pos%n != 0 {
			ref, from, to = p.tiles[pos-1], grid.East, grid.West
		} else {
			ref, from, to = p.tiles[pos-n], grid.South, grid.North
		}
		sig := ref.Grid.Edge(from)

		cands := idx.Partners(sig, ref.ID)
		if len(cands) != 1 {
			return nil, fmt.Errorf("position %d: %s edge of tile %d matches tiles %v: %w",
				pos, from, ref.ID, cands, ErrPlacementConflict)
		}
		t, ok := s.Get(cands[0])
		if !ok {
			return nil, fmt.Errorf("position %d: tile %d is not in the set: %w", pos, cands[0], ErrIncompletePlacement)
		}
		o, err := orientTo(t, to, sig)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		p.tiles = append(p.tiles, o)
		log.Debug().Int("pos", pos).Int("tile", o.ID).Int("orientation", o.Orientation).
			Stringer("via", from).Msg("placed tile")
	}

	if err := p.checkCoverage(s); err != nil {
		return nil, err
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	log.Info().Int("side", n).Int("checksum", p.Checksum()).Msg("placement complete")

	return p, nil
}

// anchorTile orients corner id so that its north and west edges are unmatched.
func anchorTile(s *tile.Set, idx *border.Index, id int) (tile.Oriented, error) {
	t, ok := s.Get(id)
	if !ok {
		return tile.Oriented{}, fmt.Errorf("anchor tile %d is not in the set: %w", id, ErrNoUniqueCorner)
	}
	for _, o := range t.Orientations() {
		if idx.Unmatched(o.Grid.Edge(grid.North), id) && idx.Unmatched(o.Grid.Edge(grid.West), id) {
			return o, nil
		}
	}

	return tile.Oriented{}, fmt.Errorf("corner %d has no orientation with unmatched north and west edges: %w",
		id, ErrPlacementConflict)
}

// orientTo returns the single orientation of t whose side edge equals sig.
func orientTo(t tile.Tile, side grid.Side, sig string) (tile.Oriented, error) {
	var (
		found tile.Oriented
		hits  int
	)
	for _, o := range t.Orientations() {
		if o.Grid.Edge(side) != sig {
			continue
		}
		if hits > 0 && found.Grid.Equal(o.Grid) {
			continue
		}
		if hits == 0 {
			found = o
		}
		hits++
	}
	switch hits {
	case 0:
		return tile.Oriented{}, fmt.Errorf("tile %d has no orientation with %s edge %q: %w", t.ID, side, sig, ErrPlacementConflict)
	case 1:
		return found, nil
	}

	return tile.Oriented{}, fmt.Errorf("tile %d has several distinct orientations with %s edge %q: %w",
		t.ID, side, sig, ErrPlacementConflict)
}
