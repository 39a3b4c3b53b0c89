// Package box holds the mutable state of a cubic periodic simulation
// cell: the side length and the particle coordinates.
package box

import (
	"errors"
	"fmt"

	"github.com/arpitban/ljmc/internal/geom"
)

// ErrInvalidLength indicates a non-positive box side length.
var ErrInvalidLength = errors.New("box: side length must be positive")

// Box owns the coordinate slice exclusively. Energy and move code
// borrow it, never retain it.
type Box struct {
	Length float64
	Coords []geom.Vec3
}

// New stores the coordinates as given. Wrapping is an explicit
// operation; construction never folds.
func New(length float64, coords []geom.Vec3) (*Box, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLength, length)
	}
	return &Box{Length: length, Coords: coords}, nil
}

// Volume is recomputed on demand, never cached.
func (b *Box) Volume() float64 {
	return b.Length * b.Length * b.Length
}

func (b *Box) NumParticles() int { return len(b.Coords) }

// Wrap folds the coordinate of particle i into the primary cell.
func (b *Box) Wrap(i int) {
	geom.WrapInPlace(&b.Coords[i], b.Length)
}

// WrapAll folds every stored coordinate.
func (b *Box) WrapAll() {
	for i := range b.Coords {
		geom.WrapInPlace(&b.Coords[i], b.Length)
	}
}

// Clone deep-copies the box for independent replicas.
func (b *Box) Clone() *Box {
	coords := make([]geom.Vec3, len(b.Coords))
	copy(coords, b.Coords)
	return &Box{Length: b.Length, Coords: coords}
}
