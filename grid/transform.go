package grid

import "strings"

// RotateClockwise returns a new grid turned a quarter turn clockwise:
// the cell at (r,c) holds the value previously at (S-1-c, r).
// Complexity: O(S²).
func (g *Grid) RotateClockwise() *Grid {
	n := g.size
	rows := make([]string, n)
	buf := make([]byte, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			buf[c] = g.rows[n-1-c][r]
		}
		rows[r] = string(buf)
	}

	return fromTrusted(rows)
}

// ReflectHorizontal returns a new grid with every row reversed.
// Complexity: O(S²).
func (g *Grid) ReflectHorizontal() *Grid {
	rows := make([]string, g.size)
	for i, row := range g.rows {
		rows[i] = reverse(row)
	}

	return fromTrusted(rows)
}

// Orientations returns the 8 orientations of g in generation order: the
// identity and three successive clockwise rotations, then the reflection of
// the last rotation followed by three more clockwise rotations.
// Duplicates are kept.
// Complexity: O(8·S²).
func (g *Grid) Orientations() [NumOrientations]*Grid {
	var out [NumOrientations]*Grid
	cur := g
	for i := 0; i < NumOrientations; i++ {
		switch {
		case i == 0:
		case i == NumOrientations/2:
			cur = cur.ReflectHorizontal()
		default:
			cur = cur.RotateClockwise()
		}
		out[i] = cur
	}

	return out
}

// Orient returns orientation i (0..7) of g, as produced by Orientations.
func (g *Grid) Orient(i int) (*Grid, error) {
	if i < 0 || i >= NumOrientations {
		return nil, ErrOutOfRange
	}

	return g.Orientations()[i], nil
}

// Edge returns the border signature of one side.
// Complexity: O(S).
func (g *Grid) Edge(s Side) string {
	switch s {
	case North:
		return g.rows[0]
	case South:
		return g.rows[g.size-1]
	case East:
		return g.column(g.size - 1)
	default:
		return g.column(0)
	}
}

// Edges returns all four border signatures.
func (g *Grid) Edges() Edges {
	return Edges{
		North: g.Edge(North),
		South: g.Edge(South),
		East:  g.Edge(East),
		West:  g.Edge(West),
	}
}

// Interior returns the grid with its outer ring of cells removed.
// Returns ErrEmptyGrid for grids of size 2 or less.
// Complexity: O(S²).
func (g *Grid) Interior() (*Grid, error) {
	if g.size <= 2 {
		return nil, ErrEmptyGrid
	}
	rows := make([]string, g.size-2)
	for i := range rows {
		rows[i] = g.rows[i+1][1 : g.size-1]
	}

	return fromTrusted(rows), nil
}

func (g *Grid) column(c int) string {
	var sb strings.Builder
	sb.Grow(g.size)
	for _, row := range g.rows {
		sb.WriteByte(row[c])
	}

	return sb.String()
}

// Reverse returns s with its symbols in reverse order.
func Reverse(s string) string {
	return reverse(s)
}

func reverse(s string) string {
	b := []byte(s)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return string(b)
}
