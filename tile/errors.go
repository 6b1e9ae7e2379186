package tile

import "errors"

// Sentinel errors for tile sets.
var (
	// ErrMalformedTileSet indicates a non-square tile count, a non-square or
	// mismatched tile, an empty set, or duplicate identifiers.
	ErrMalformedTileSet = errors.New("tile: malformed tile set")
	// ErrSyntax indicates text input that does not follow the tile format.
	ErrSyntax = errors.New("tile: syntax error")
)
