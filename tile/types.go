package tile

import "github.com/katalvlaran/mosaic/grid"

// Tile is an identified block of symbols. Content is never mutated.
type Tile struct {
	ID   int
	Grid *grid.Grid
}

// Oriented is a tile's content after one of the 8 symmetry transforms,
// together with the source tile's ID and the orientation index (0..7).
type Oriented struct {
	ID          int
	Orientation int
	Grid        *grid.Grid
}

// Orientations returns the 8 oriented views of t in generation order.
func (t Tile) Orientations() [grid.NumOrientations]Oriented {
	var out [grid.NumOrientations]Oriented
	for i, g := range t.Grid.Orientations() {
		out[i] = Oriented{ID: t.ID, Orientation: i, Grid: g}
	}

	return out
}

// Set is a validated, read-only collection of tiles.
type Set struct {
	tiles    []Tile
	byID     map[int]int
	side     int
	tileSize int
}
