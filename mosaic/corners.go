package mosaic

import (
	"fmt"

	"github.com/katalvlaran/mosaic/border"
	"github.com/katalvlaran/mosaic/tile"
)

// Classify returns how many of t's unoriented edges are unmatched in idx.
// Complexity: O(S).
func Classify(t tile.Tile, idx *border.Index) int {
	n := 0
	for _, sig := range t.Grid.Edges().All() {
		if idx.Unmatched(sig, t.ID) {
			n++
		}
	}

	return n
}

// SurveySet classifies every tile in s.
// For n > 1 it returns ErrNoUniqueCorner if a tile has 3 or 4 unmatched
// edges or if the number of corners is not 4. A single-tile set is reported
// as one corner.
func SurveySet(s *tile.Set, idx *border.Index) (Survey, error) {
	var sv Survey
	if s.Side() == 1 {
		sv.Corners = []int{s.Tiles()[0].ID}
		return sv, nil
	}
	for _, t := range s.Tiles() {
		switch n := Classify(t, idx); n {
		case 0:
			sv.Interior = append(sv.Interior, t.ID)
		case 1:
			sv.Edges = append(sv.Edges, t.ID)
		case 2:
			sv.Corners = append(sv.Corners, t.ID)
		default:
			return Survey{}, fmt.Errorf("tile %d has %d unmatched edges: %w", t.ID, n, ErrNoUniqueCorner)
		}
	}
	if len(sv.Corners) != 4 {
		return Survey{}, fmt.Errorf("found %d corners %v: %w", len(sv.Corners), sv.Corners, ErrNoUniqueCorner)
	}

	return sv, nil
}

// KindOf reports the classification of id within sv.
func (sv Survey) KindOf(id int) (Kind, bool) {
	for _, l := range []struct {
		ids  []int
		kind Kind
	}{{sv.Corners, Corner}, {sv.Edges, Edge}, {sv.Interior, Interior}} {
		for _, v := range l.ids {
			if v == id {
				return l.kind, true
			}
		}
	}

	return 0, false
}
