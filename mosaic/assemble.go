package mosaic

import (
	"fmt"

	"github.com/katalvlaran/mosaic/border"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// Assemble removes the outer ring of every placed tile and stitches the
// interiors into one image of side n·(S-2).
// Complexity: O(T·S²).
func Assemble(p *Placement) (*grid.Grid, error) {
	n := p.side
	blocks := make([][]*grid.Grid, n)
	for r := range blocks {
		blocks[r] = make([]*grid.Grid, n)
		for c := range blocks[r] {
			o := p.At(r, c)
			in, err := o.Grid.Interior()
			if err != nil {
				return nil, fmt.Errorf("tile %d: %w", o.ID, err)
			}
			blocks[r][c] = in
		}
	}

	return grid.Stitch(blocks)
}

// Reconstruct indexes, surveys, solves and assembles s.
func Reconstruct(s *tile.Set, opts Options) (*Result, error) {
	idx, err := border.Build(s.Tiles())
	if err != nil {
		return nil, err
	}
	sv, err := SurveySet(s, idx)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug().Ints("corners", sv.Corners).Int("edges", len(sv.Edges)).
		Int("interior", len(sv.Interior)).Msg("surveyed borders")

	p, err := Solve(s, idx, sv, opts)
	if err != nil {
		return nil, err
	}
	img, err := Assemble(p)
	if err != nil {
		return nil, err
	}

	return &Result{Placement: p, Image: img, Checksum: p.Checksum()}, nil
}
