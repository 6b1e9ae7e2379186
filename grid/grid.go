package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from rows. The slice is copied, so later changes to
// the caller's slice do not affect the grid.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonSquare if any row length differs from the row count.
// Complexity: O(S) time and memory (strings are shared, not copied).
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	size := len(rows)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), size, ErrNonSquare)
		}
	}
	cp := make([]string, size)
	copy(cp, rows)

	return &Grid{size: size, rows: cp}, nil
}

// Parse builds a Grid from newline-separated text. Blank lines and trailing
// carriage returns are ignored.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}

	return New(rows)
}

// fromTrusted wraps rows already known to be square without copying.
func fromTrusted(rows []string) *Grid {
	return &Grid{size: len(rows), rows: rows}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

// At returns the symbol at row r, column c. It panics if (r,c) is out of
// range, like indexing a slice.
func (g *Grid) At(r, c int) byte {
	return g.rows[r][c]
}

// Row returns row r.
func (g *Grid) Row(r int) string {
	return g.rows[r]
}

// Rows returns a copy of the rows.
func (g *Grid) Rows() []string {
	cp := make([]string, g.size)
	copy(cp, g.rows)

	return cp
}

// Equal reports whether g and o hold the same symbols.
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil || g.size != o.size {
		return false
	}
	for i := range g.rows {
		if g.rows[i] != o.rows[i] {
			return false
		}
	}

	return true
}

// Count returns how many cells hold sym.
// Complexity: O(S²).
func (g *Grid) Count(sym byte) int {
	n := 0
	for _, row := range g.rows {
		for i := 0; i < len(row); i++ {
			if row[i] == sym {
				n++
			}
		}
	}

	return n
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.size, Col: idx % g.size}
}

// String renders the grid as newline-separated rows without a trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.rows, "\n")
}
