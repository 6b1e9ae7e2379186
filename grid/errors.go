package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or an empty row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonSquare indicates the row count and row length differ, or rows are ragged.
	ErrNonSquare = errors.New("grid: rows must form a square")
	// ErrOutOfRange indicates a cell reference outside the grid.
	ErrOutOfRange = errors.New("grid: cell out of range")
	// ErrShapeMismatch indicates blocks that cannot be stitched into a square.
	ErrShapeMismatch = errors.New("grid: blocks do not form a square layout")
)
