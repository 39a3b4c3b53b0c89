// Package mc drives the Metropolis Monte Carlo loop: it composes a
// simulation box, a Lennard-Jones energy model and an injected random
// source into single-particle trial moves with adaptive displacement
// tuning.
package mc

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an unusable run configuration.
var ErrInvalidConfig = errors.New("mc: invalid configuration")

// Config holds the parameters of one Monte Carlo run.
type Config struct {
	// Steps is the number of trial moves.
	Steps int
	// Beta is the inverse reduced temperature 1/T.
	Beta float64
	// MaxDisplacement is the initial per-axis half-width of a trial move.
	MaxDisplacement float64
	// AdjustEvery is the displacement tuning window, in trials.
	AdjustEvery int
	// SampleEvery is the energy sampling interval, in trials.
	SampleEvery int
	// Seed resets the source at the start of the run.
	Seed int64
}

func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, c.Steps)
	}
	if c.Beta <= 0 {
		return fmt.Errorf("%w: beta must be positive, got %v", ErrInvalidConfig, c.Beta)
	}
	if c.MaxDisplacement <= 0 {
		return fmt.Errorf("%w: max displacement must be positive, got %v", ErrInvalidConfig, c.MaxDisplacement)
	}
	if c.AdjustEvery <= 0 {
		return fmt.Errorf("%w: adjust interval must be positive, got %d", ErrInvalidConfig, c.AdjustEvery)
	}
	if c.SampleEvery <= 0 {
		return fmt.Errorf("%w: sample interval must be positive, got %d", ErrInvalidConfig, c.SampleEvery)
	}
	return nil
}

// Result collects the sampled series and the closing bookkeeping of a
// run.
type Result struct {
	// SampleSteps[k] is the trial count at which Energies[k] was taken.
	SampleSteps []int
	// Energies is the unit (per-particle) energy series, tail included.
	Energies []float64

	Trials          int
	Accepts         int
	AcceptanceRate  float64
	MaxDisplacement float64
	// PairEnergy is the running total pair energy at the end of the run.
	PairEnergy float64

	Metrics map[string]float64
}

// Accumulator consumes the sampled unit-energy series. Implementations
// live in internal/metrics.
type Accumulator interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// Observer is notified at every sampling point.
type Observer interface {
	OnSample(step int, unitEnergy float64)
}
