package geom

import "math"

// Vec3 is a position in reduced units. Particle identity is the index
// in the owning slice; a Vec3 carries no identity of its own.
type Vec3 [3]float64

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

func (v Vec3) NormSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// fold maps x into [-side/2, side/2) by subtracting the nearest integer
// multiple of side. +side/2 folds to -side/2 (half-open interval).
func fold(x, side float64) float64 {
	return x - side*math.Floor(x/side+0.5)
}

// Wrap folds every component of v into the primary cell. Idempotent.
func Wrap(v Vec3, side float64) Vec3 {
	return Vec3{fold(v[0], side), fold(v[1], side), fold(v[2], side)}
}

// WrapInPlace folds a stored coordinate without copying.
func WrapInPlace(v *Vec3, side float64) {
	v[0] = fold(v[0], side)
	v[1] = fold(v[1], side)
	v[2] = fold(v[2], side)
}

// MinImageSq returns the squared distance between a and b under the
// minimum-image convention: the displacement is folded with the same
// primitive as Wrap, then squared. Symmetric in its arguments; the
// result never exceeds 3*side*side/4.
func MinImageSq(a, b Vec3, side float64) float64 {
	dx := fold(a[0]-b[0], side)
	dy := fold(a[1]-b[1], side)
	dz := fold(a[2]-b[2], side)
	return dx*dx + dy*dy + dz*dz
}
