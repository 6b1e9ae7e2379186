// Package pattern searches an image for a fixed multi-row pattern under the
// 8 symmetries of the image and derives a roughness score.
//
// A Pattern is a set of equal-length row templates. Cells holding the "on"
// symbol ('#' by default) must align with "on" cells of the image; every
// other template cell is a wildcard.
//
// Find scans the image orientations in generation order (see grid package)
// and reports every anchor of the first orientation with at least one match.
// Later orientations are not consulted. With Options.Parallel the eight scans
// run concurrently but the reported orientation is still the first in
// generation order.
//
// Roughness = (on cells in the image) − (matches × on cells per instance).
//
// Complexity: O(8·W²·P) for a W×W image and P on cells per instance.
//
// Errors:
//
//   - ErrBadPattern:     empty, ragged, or all-wildcard templates.
//   - ErrNoPatternMatch: no orientation contains the pattern.
package pattern
