package mosaic

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// Kind classifies a tile by its number of unmatched edges.
type Kind int

const (
	// Interior tiles have no unmatched edges.
	Interior Kind = iota
	// Edge tiles have exactly one unmatched edge.
	Edge
	// Corner tiles have exactly two unmatched edges.
	Corner
)

func (k Kind) String() string {
	switch k {
	case Interior:
		return "interior"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	}
	return "unknown"
}

// Survey is the result of classifying every tile of a set.
// Each list preserves input order.
type Survey struct {
	Corners  []int
	Edges    []int
	Interior []int
}

// Options configures reconstruction.
type Options struct {
	// Logger receives a Debug event per placement step and an Info summary.
	// DefaultOptions sets it to zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with a disabled logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// Placement is a complete row-major arrangement of oriented tiles.
// It is immutable once returned by Solve.
type Placement struct {
	side  int
	tiles []tile.Oriented
}

// Result bundles the outputs of Reconstruct.
type Result struct {
	Placement *Placement
	Image     *grid.Grid
	Checksum  int
}
