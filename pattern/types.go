package pattern

import "github.com/katalvlaran/mosaic/grid"

// DefaultOn is the symbol marking required cells.
const DefaultOn byte = '#'

// DefaultMark is the symbol Highlight writes over matched cells.
const DefaultMark byte = 'O'

// Pattern is an immutable set of row templates.
type Pattern struct {
	rows   []string
	cells  []grid.Point
	height int
	width  int
	on     byte
}

// Options configures Find.
type Options struct {
	// Parallel scans the 8 orientations concurrently.
	Parallel bool
}

// DefaultOptions returns sequential scanning.
func DefaultOptions() Options {
	return Options{}
}

// Match is the outcome of Find: the first orientation of the image with at
// least one pattern instance, and the top-left anchors of all instances in it.
type Match struct {
	Orientation int
	Image       *grid.Grid
	Anchors     []grid.Point
	pattern     *Pattern
}
