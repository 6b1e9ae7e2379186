package pattern

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

var seaMonster = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

// SeaMonster returns the 3×20 pattern with 15 on cells.
func SeaMonster() *Pattern {
	p, err := New(seaMonster, DefaultOn)
	if err != nil {
		panic(err)
	}

	return p
}

// New builds a Pattern from rows; cells equal to on are required, all
// others are wildcards. Returns ErrBadPattern for empty or ragged rows or
// when no cell is on.
func New(rows []string, on byte) (*Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrBadPattern)
	}
	p := &Pattern{
		rows:   make([]string, len(rows)),
		height: len(rows),
		width:  len(rows[0]),
		on:     on,
	}
	copy(p.rows, rows)
	for r, row := range rows {
		if len(row) != p.width {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", r, len(row), p.width, ErrBadPattern)
		}
		for c := 0; c < len(row); c++ {
			if row[c] == on {
				p.cells = append(p.cells, grid.Point{Row: r, Col: c})
			}
		}
	}
	if len(p.cells) == 0 {
		return nil, fmt.Errorf("no %q cells: %w", on, ErrBadPattern)
	}

	return p, nil
}

// Parse builds a Pattern from newline-separated text with DefaultOn cells.
// Trailing carriage returns are dropped and rows are right-padded with
// spaces to the longest row, so trailing wildcards may be omitted.
func Parse(text string) (*Pattern, error) {
	var rows []string
	width := 0
	for _, line := range strings.Split(strings.TrimRight(text, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		rows = append(rows, line)
		width = max(width, len(line))
	}
	for i, row := range rows {
		rows[i] = row + strings.Repeat(" ", width-len(row))
	}

	return New(rows, DefaultOn)
}

// Height returns the number of template rows.
func (p *Pattern) Height() int { return p.height }

// Width returns the template row length.
func (p *Pattern) Width() int { return p.width }

// OnCount returns the number of required cells in one instance.
func (p *Pattern) OnCount() int { return len(p.cells) }

// On returns the symbol marking required cells.
func (p *Pattern) On() byte { return p.on }

// Cells returns the offsets of required cells relative to the top-left anchor.
func (p *Pattern) Cells() []grid.Point {
	out := make([]grid.Point, len(p.cells))
	copy(out, p.cells)

	return out
}

// MatchAt reports whether the pattern anchored at (r,c) fits inside img and
// every required cell lies on an on cell of img.
func (p *Pattern) MatchAt(img *grid.Grid, r, c int) bool {
	if r < 0 || c < 0 || r+p.height > img.Size() || c+p.width > img.Size() {
		return false
	}
	for _, d := range p.cells {
		if img.At(r+d.Row, c+d.Col) != p.on {
			return false
		}
	}

	return true
}

// Anchors returns every top-left anchor in img, row-major, where the pattern matches.
// Complexity: O(W²·P).
func (p *Pattern) Anchors(img *grid.Grid) []grid.Point {
	var out []grid.Point
	for r := 0; r+p.height <= img.Size(); r++ {
		for c := 0; c+p.width <= img.Size(); c++ {
			if p.MatchAt(img, r, c) {
				out = append(out, grid.Point{Row: r, Col: c})
			}
		}
	}

	return out
}

// String renders the templates as newline-separated rows.
func (p *Pattern) String() string {
	return strings.Join(p.rows, "\n")
}
