// Package initial builds starting configurations for a cubic box:
// uniform random placement, a centered simple-cubic lattice, or a
// coordinate file.
package initial

import (
	"errors"
	"fmt"
	"math"

	"github.com/arpitban/ljmc/internal/geom"
	"github.com/arpitban/ljmc/internal/mc"
	"github.com/arpitban/ljmc/internal/xyz"
)

// ErrUnknownMethod indicates a generation method Generate does not
// recognize.
var ErrUnknownMethod = errors.New("initial: unknown generation method")

// ErrBadCount indicates a non-positive particle count.
var ErrBadCount = errors.New("initial: particle count must be positive")

// Random places n particles uniformly in the centered cell, components
// in [-side/2, side/2). Draws come from rng in x, y, z order per
// particle, so a seed fixes the configuration.
func Random(rng mc.Source, n int, side float64) ([]geom.Vec3, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCount, n)
	}
	coords := make([]geom.Vec3, n)
	half := side / 2
	for i := range coords {
		coords[i] = geom.Vec3{
			rng.Range(-half, half),
			rng.Range(-half, half),
			rng.Range(-half, half),
		}
	}
	return coords, nil
}

// Lattice fills the smallest simple-cubic lattice with at least n
// sites and returns the first n, z-fastest, centered in the box.
// Deterministic.
func Lattice(n int, side float64) ([]geom.Vec3, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCount, n)
	}

	cells := int(math.Ceil(math.Cbrt(float64(n))))
	spacing := side / float64(cells)
	offset := -side/2 + spacing/2

	coords := make([]geom.Vec3, 0, n)
	for ix := 0; ix < cells && len(coords) < n; ix++ {
		for iy := 0; iy < cells && len(coords) < n; iy++ {
			for iz := 0; iz < cells && len(coords) < n; iz++ {
				coords = append(coords, geom.Vec3{
					offset + float64(ix)*spacing,
					offset + float64(iy)*spacing,
					offset + float64(iz)*spacing,
				})
			}
		}
	}
	return coords, nil
}

// FromFile reads a configuration from an xyz-style file.
func FromFile(path string) ([]geom.Vec3, error) {
	return xyz.ReadFile(path)
}

// Generate dispatches on the method name: "random", "lattice" or
// "file". For "file" the path is taken from file; the other methods
// use n and side.
func Generate(method string, rng mc.Source, n int, side float64, file string) ([]geom.Vec3, error) {
	switch method {
	case "random":
		return Random(rng, n, side)
	case "lattice":
		return Lattice(n, side)
	case "file":
		return FromFile(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}
