// Package border indexes tile border signatures.
//
// Build walks the four unoriented edges of every tile and records both the
// signature and its reverse against the tile's ID, so a single lookup finds
// every tile that can present that border in any orientation. The index is
// built once and is read-only afterwards; it is safe for concurrent readers.
//
// In a solvable puzzle every signature maps to exactly one tile (an outer
// border of the mosaic) or exactly two (a shared interior border). Build
// reports any other count as ErrAmbiguousBorder.
//
// Complexity:
//
//   - Build:  O(T·S) time and memory.
//   - Lookup: O(S) for hashing the signature.
package border
