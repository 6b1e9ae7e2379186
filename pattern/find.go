package pattern

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mosaic/grid"
)

// Find returns the matches in the first orientation of img, in generation
// order, that contains at least one instance of p.
// Returns ErrNoPatternMatch if no orientation does.
func Find(img *grid.Grid, p *Pattern, opts Options) (*Match, error) {
	orients := img.Orientations()

	var found [grid.NumOrientations][]grid.Point
	if opts.Parallel {
		var g errgroup.Group
		for i, o := range orients {
			i, o := i, o
			g.Go(func() error {
				found[i] = p.Anchors(o)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, o := range orients {
			if found[i] = p.Anchors(o); len(found[i]) > 0 {
				break
			}
		}
	}

	for i, anchors := range found {
		if len(anchors) > 0 {
			return &Match{Orientation: i, Image: orients[i], Anchors: anchors, pattern: p}, nil
		}
	}

	return nil, fmt.Errorf("%d×%d pattern in %d×%d image: %w", p.height, p.width, img.Size(), img.Size(), ErrNoPatternMatch)
}

// Roughness is Find followed by Match.Roughness.
func Roughness(img *grid.Grid, p *Pattern, opts Options) (int, error) {
	m, err := Find(img, p, opts)
	if err != nil {
		return 0, err
	}

	return m.Roughness(), nil
}

// Count returns the number of pattern instances.
func (m *Match) Count() int {
	return len(m.Anchors)
}

// Roughness returns the on cells of the image minus Count × OnCount.
func (m *Match) Roughness() int {
	return m.Image.Count(m.pattern.on) - m.Count()*m.pattern.OnCount()
}

// Points returns every image cell covered by a required pattern cell, in
// anchor order. Cells shared by overlapping instances appear once per instance.
func (m *Match) Points() []grid.Point {
	out := make([]grid.Point, 0, m.Count()*m.pattern.OnCount())
	for _, a := range m.Anchors {
		for _, d := range m.pattern.cells {
			out = append(out, grid.Point{Row: a.Row + d.Row, Col: a.Col + d.Col})
		}
	}

	return out
}

// Highlight returns the matched orientation of the image with every covered
// cell replaced by mark.
func (m *Match) Highlight(mark byte) (*grid.Grid, error) {
	return m.Image.Replace(m.Points(), mark)
}
