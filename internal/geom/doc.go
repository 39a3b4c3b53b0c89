// Package geom provides the coordinate type and periodic boundary
// primitives for a cubic simulation cell.
//
// The cell is centered on the origin: a folded component lies in
// [-L/2, L/2). Both Wrap and MinImageSq go through the same fold so
// the wrapping and minimum-image conventions can never drift apart.
package geom
