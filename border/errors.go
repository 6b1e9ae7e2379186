package border

import "errors"

// ErrAmbiguousBorder indicates a signature shared by more than two tiles.
var ErrAmbiguousBorder = errors.New("border: signature maps to more than two tiles")
