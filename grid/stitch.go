package grid

import (
	"fmt"
	"strings"
)

// Stitch concatenates a k×k layout of equally sized blocks into one grid:
// blocks in a layout row are joined side by side, layout rows are stacked.
// Returns ErrShapeMismatch if the layout is not square or block sizes differ.
// Complexity: O((k·S)²).
func Stitch(blocks [][]*Grid) (*Grid, error) {
	k := len(blocks)
	if k == 0 {
		return nil, ErrEmptyGrid
	}
	size := -1
	for r, line := range blocks {
		if len(line) != k {
			return nil, fmt.Errorf("layout row %d has %d blocks, want %d: %w", r, len(line), k, ErrShapeMismatch)
		}
		for c, b := range line {
			if b == nil {
				return nil, fmt.Errorf("block (%d,%d) is nil: %w", r, c, ErrShapeMismatch)
			}
			if size == -1 {
				size = b.size
			}
			if b.size != size {
				return nil, fmt.Errorf("block (%d,%d) has size %d, want %d: %w", r, c, b.size, size, ErrShapeMismatch)
			}
		}
	}

	rows := make([]string, 0, k*size)
	var sb strings.Builder
	for _, line := range blocks {
		for y := 0; y < size; y++ {
			sb.Reset()
			sb.Grow(k * size)
			for _, b := range line {
				sb.WriteString(b.rows[y])
			}
			rows = append(rows, sb.String())
		}
	}

	return fromTrusted(rows), nil
}

// Replace returns a copy of g with every listed cell set to sym.
// Returns ErrOutOfRange if any point lies outside the grid.
// Complexity: O(S² + P).
func (g *Grid) Replace(points []Point, sym byte) (*Grid, error) {
	buf := make([][]byte, g.size)
	for i, row := range g.rows {
		buf[i] = []byte(row)
	}
	for _, p := range points {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("point (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
		}
		buf[p.Row][p.Col] = sym
	}
	rows := make([]string, g.size)
	for i, b := range buf {
		rows[i] = string(b)
	}

	return fromTrusted(rows), nil
}
