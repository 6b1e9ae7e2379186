// Package grid provides an immutable square block of symbols together with
// the eight symmetries of the square.
//
// What:
//
//   - Grid wraps a non-empty, square set of equal-length rows.
//   - RotateClockwise and ReflectHorizontal return new grids; the receiver is
//     never modified.
//   - Edge/Edges read the four border signatures in a fixed scan direction:
//     North and South left-to-right, West and East top-to-bottom.
//   - Orientations enumerates the 8 orientations in a fixed generation order.
//   - Interior, Stitch and Replace support building larger images from tiles.
//
// Orientation order:
//
//	0: identity            4: reflect(3)
//	1: cw(0)               5: cw(4)
//	2: cw(1)               6: cw(5)
//	3: cw(2)               7: cw(6)
//
// Symmetric content yields repeated grids in this sequence; no deduplication
// is performed.
//
// Complexity:
//
//   - RotateClockwise, ReflectHorizontal, Interior: O(S²) time and memory.
//   - Orientations: O(8·S²).
//   - Edge: O(S).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or an empty row.
//   - ErrNonSquare: row count differs from a row length.
//   - ErrOutOfRange: a referenced cell lies outside the grid.
//   - ErrShapeMismatch: blocks passed to Stitch differ in size or layout.
package grid
