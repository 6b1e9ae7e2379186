package pattern

import "errors"

// Sentinel errors for pattern search.
var (
	// ErrBadPattern indicates templates that are empty, ragged, or have no on cells.
	ErrBadPattern = errors.New("pattern: invalid pattern templates")
	// ErrNoPatternMatch indicates no orientation of the image contains the pattern.
	ErrNoPatternMatch = errors.New("pattern: no orientation contains the pattern")
)
