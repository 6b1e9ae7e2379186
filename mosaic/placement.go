package mosaic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// Side returns n, the number of tiles per row and column.
func (p *Placement) Side() int { return p.side }

// Len returns the number of placed tiles.
func (p *Placement) Len() int { return len(p.tiles) }

// At returns the tile at layout row r, column c.
func (p *Placement) At(r, c int) tile.Oriented {
	return p.tiles[r*p.side+c]
}

// Tiles returns the placed tiles in row-major order. The slice is a copy.
func (p *Placement) Tiles() []tile.Oriented {
	out := make([]tile.Oriented, len(p.tiles))
	copy(out, p.tiles)

	return out
}

// IDs returns the placed tile IDs, one slice per layout row.
func (p *Placement) IDs() [][]int {
	out := make([][]int, p.side)
	for r := range out {
		out[r] = make([]int, p.side)
		for c := range out[r] {
			out[r][c] = p.At(r, c).ID
		}
	}

	return out
}

// Checksum multiplies the IDs at the four corners of the layout.
func (p *Placement) Checksum() int {
	n := p.side

	return p.tiles[0].ID * p.tiles[n-1].ID * p.tiles[n*n-n].ID * p.tiles[n*n-1].ID
}

// Verify checks every horizontal and vertical neighbour pair shares an
// identical border. Returns ErrPlacementConflict on the first mismatch.
// Complexity: O(T·S).
func (p *Placement) Verify() error {
	n := p.side
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cur := p.At(r, c)
			if c > 0 {
				left := p.At(r, c-1)
				if left.Grid.Edge(grid.East) != cur.Grid.Edge(grid.West) {
					return fmt.Errorf("tiles %d and %d at (%d,%d) do not share a vertical border: %w",
						left.ID, cur.ID, r, c, ErrPlacementConflict)
				}
			}
			if r > 0 {
				up := p.At(r-1, c)
				if up.Grid.Edge(grid.South) != cur.Grid.Edge(grid.North) {
					return fmt.Errorf("tiles %d and %d at (%d,%d) do not share a horizontal border: %w",
						up.ID, cur.ID, r, c, ErrPlacementConflict)
				}
			}
		}
	}

	return nil
}

// checkCoverage ensures the placed IDs are exactly the IDs of s.
func (p *Placement) checkCoverage(s *tile.Set) error {
	seen := make(map[int]struct{}, len(p.tiles))
	for _, o := range p.tiles {
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("tile %d placed twice: %w", o.ID, ErrIncompletePlacement)
		}
		seen[o.ID] = struct{}{}
	}
	if len(seen) != s.Len() {
		return fmt.Errorf("placed %d of %d tiles: %w", len(seen), s.Len(), ErrIncompletePlacement)
	}

	return nil
}

// String renders the layout as rows of space-separated IDs.
func (p *Placement) String() string {
	var sb strings.Builder
	for r, ids := range p.IDs() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, id := range ids {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(id))
		}
	}

	return sb.String()
}
