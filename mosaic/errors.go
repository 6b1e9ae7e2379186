package mosaic

import "errors"

// Sentinel errors for reconstruction.
var (
	// ErrNoUniqueCorner indicates the border survey did not find exactly 4 corners.
	ErrNoUniqueCorner = errors.New("mosaic: corner count is not 4")
	// ErrPlacementConflict indicates a placement step without exactly one choice.
	ErrPlacementConflict = errors.New("mosaic: placement conflict")
	// ErrIncompletePlacement indicates placed tiles do not cover the tile set.
	ErrIncompletePlacement = errors.New("mosaic: incomplete placement")
)
