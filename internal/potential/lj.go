// Package potential implements the truncated Lennard-Jones energy
// model: pair potential, per-particle and total pair energies, and the
// analytic long-range tail correction. All quantities are in reduced
// units.
package potential

import (
	"errors"
	"fmt"
	"math"

	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/geom"
)

var (
	// ErrInvalidParameter indicates a non-physical epsilon, sigma or cutoff.
	ErrInvalidParameter = errors.New("potential: parameter must be positive")

	// ErrCutoffTooLarge indicates a cutoff at or beyond half the box side,
	// where the minimum-image convention double-counts neighbors.
	ErrCutoffTooLarge = errors.New("potential: cutoff must be below half the box length")
)

// LennardJones holds the immutable parameters of a single-species
// truncated LJ potential. The energy functions borrow box coordinates
// and never mutate them.
type LennardJones struct {
	Epsilon float64
	Sigma   float64
	Cutoff  float64

	sigma2  float64
	cutoff2 float64
}

func New(epsilon, sigma, cutoff float64) (*LennardJones, error) {
	if epsilon <= 0 {
		return nil, fmt.Errorf("%w: epsilon %v", ErrInvalidParameter, epsilon)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma %v", ErrInvalidParameter, sigma)
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: cutoff %v", ErrInvalidParameter, cutoff)
	}
	return &LennardJones{
		Epsilon: epsilon,
		Sigma:   sigma,
		Cutoff:  cutoff,
		sigma2:  sigma * sigma,
		cutoff2: cutoff * cutoff,
	}, nil
}

// ValidateForBox checks the cutoff against the box the potential will
// be evaluated in. Called once at simulator assembly.
func (lj *LennardJones) ValidateForBox(length float64) error {
	if lj.Cutoff >= length/2 {
		return fmt.Errorf("%w: cutoff %v, box length %v", ErrCutoffTooLarge, lj.Cutoff, length)
	}
	return nil
}

// PairEnergy evaluates 4e[(s^2/r^2)^6 - (s^2/r^2)^3] from the squared
// separation. Taking r^2 keeps the square root off the hot path.
func (lj *LennardJones) PairEnergy(r2 float64) float64 {
	s2 := lj.sigma2 / r2
	s6 := s2 * s2 * s2
	return 4 * lj.Epsilon * (s6*s6 - s6)
}

// ParticleEnergy sums the pair potential between particle i and every
// other particle within the cutoff, using minimum-image separations.
// Pairs beyond the cutoff contribute exactly zero.
func (lj *LennardJones) ParticleEnergy(b *box.Box, i int) float64 {
	ri := b.Coords[i]
	e := 0.0
	for j := range b.Coords {
		if j == i {
			continue
		}
		r2 := geom.MinImageSq(ri, b.Coords[j], b.Length)
		if r2 <= lj.cutoff2 {
			e += lj.PairEnergy(r2)
		}
	}
	return e
}

// energyAt is ParticleEnergy for a trial position of particle i that
// has not been committed to the box.
func (lj *LennardJones) energyAt(b *box.Box, i int, pos geom.Vec3) float64 {
	e := 0.0
	for j := range b.Coords {
		if j == i {
			continue
		}
		r2 := geom.MinImageSq(pos, b.Coords[j], b.Length)
		if r2 <= lj.cutoff2 {
			e += lj.PairEnergy(r2)
		}
	}
	return e
}

// MoveDelta returns the change in total pair energy from moving
// particle i to pos: new contribution minus old contribution. The
// remaining pairs are untouched by a single-particle move, so they
// cancel from the difference.
func (lj *LennardJones) MoveDelta(b *box.Box, i int, pos geom.Vec3) float64 {
	return lj.energyAt(b, i, pos) - lj.ParticleEnergy(b, i)
}

// TotalPairEnergy enumerates unordered pairs in row-major i<j order.
// The order is fixed because float addition is order-sensitive;
// regression values are compared with tolerances.
func (lj *LennardJones) TotalPairEnergy(b *box.Box) float64 {
	n := len(b.Coords)
	e := 0.0
	for i := 0; i < n; i++ {
		ri := b.Coords[i]
		for j := i + 1; j < n; j++ {
			r2 := geom.MinImageSq(ri, b.Coords[j], b.Length)
			if r2 <= lj.cutoff2 {
				e += lj.PairEnergy(r2)
			}
		}
	}
	return e
}

// TailCorrection is the analytic long-range correction for the
// truncated potential, assuming uniform density beyond the cutoff:
//
//	(8/3) pi N^2/V e s^3 [ (1/3)(s/rc)^9 - (s/rc)^3 ]
//
// It depends only on (N, V, cutoff, epsilon, sigma), never on the
// instantaneous positions, so callers compute it once per run.
func (lj *LennardJones) TailCorrection(n int, volume float64) float64 {
	sr3 := lj.Sigma / lj.Cutoff
	sr3 = sr3 * sr3 * sr3
	sr9 := sr3 * sr3 * sr3
	pref := (8.0 / 3.0) * math.Pi * float64(n) * float64(n) / volume *
		lj.Epsilon * lj.Sigma * lj.Sigma * lj.Sigma
	return pref * (sr9/3 - sr3)
}

// UnitEnergy is the per-particle reduced energy, pair sum plus tail,
// used as the convergence diagnostic.
func (lj *LennardJones) UnitEnergy(b *box.Box) float64 {
	n := b.NumParticles()
	if n == 0 {
		return 0
	}
	return (lj.TotalPairEnergy(b) + lj.TailCorrection(n, b.Volume())) / float64(n)
}
