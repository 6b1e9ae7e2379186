// Package tile defines identified square tiles, their oriented views, and
// validated tile sets ready for reconstruction.
//
// A Tile pairs an integer identifier with immutable grid content. Identity
// belongs to the source tile, so every Oriented value carries the ID of the
// tile it was derived from alongside the transformed content.
//
// A Set checks the shape of the whole input once: at least one tile, a
// perfect-square tile count, square tiles of a single size, and unique IDs.
// Any violation is reported as ErrMalformedTileSet before placement starts.
//
// Read and Parse accept the text format
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
// with blocks separated by blank lines.
package tile
