package grid

// NumOrientations is the number of symmetries of the square.
const NumOrientations = 8

// Side names one of the four borders of a grid.
type Side int

const (
	// North is the first row, read left-to-right.
	North Side = iota
	// South is the last row, read left-to-right.
	South
	// East is the last column, read top-to-bottom.
	East
	// West is the first column, read top-to-bottom.
	West
)

// Sides lists every Side in declaration order.
var Sides = [4]Side{North, South, East, West}

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Edges holds the four border signatures of a grid.
type Edges struct {
	North, South, East, West string
}

// All returns the signatures in Sides order.
func (e Edges) All() [4]string {
	return [4]string{e.North, e.South, e.East, e.West}
}

// Point addresses a single cell by row and column.
type Point struct {
	Row, Col int
}

// Grid is an immutable square block of symbols. The zero value is not usable;
// construct with New.
type Grid struct {
	size int
	rows []string
}
