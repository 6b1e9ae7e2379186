// Package mosaic reconstructs an n×n arrangement of tiles from border
// matches alone and assembles the borderless image.
//
// Pipeline:
//
//  1. Survey classifies each tile by its count of unmatched edges:
//     2 = corner, 1 = edge, 0 = interior. Exactly 4 corners are required.
//  2. Solve anchors the first corner at position 0 in the orientation whose
//     north and west edges are unmatched, then fills positions row-major:
//     a position inside a row continues from the east edge of its left
//     neighbour, a row start continues from the south edge of the tile above.
//     Every step must resolve to exactly one tile and one orientation; there
//     is no backtracking.
//  3. Assemble drops the outer ring of every placed tile and stitches the
//     interiors into one image of side n·(S-2).
//
// Reconstruct runs all three steps over a validated tile.Set.
//
// Complexity:
//
//   - Survey:   O(T·S).
//   - Solve:    O(T·8·S²), each step orients a single candidate tile.
//   - Assemble: O(T·S²).
//
// Errors:
//
//   - ErrNoUniqueCorner:      corner count ≠ 4, or a tile with 3+ unmatched edges.
//   - ErrPlacementConflict:   zero or several candidates or orientations at a step,
//     or an adjacency that fails verification.
//   - ErrIncompletePlacement: the placed IDs do not cover the tile set.
//
// Inputs that violate the single-solution guarantee are reported, never
// guessed around.
//
// Related packages, leaves first:
//
//	grid/       immutable square symbol grid and its 8 orientations
//	tile/       identified tiles, validated tile sets, text ingestion
//	border/     border-signature index
//	pattern/    pattern search over the assembled image, roughness
//	view/       terminal preview
//	cmd/mosaic  command-line front end
package mosaic
