// Package metropolis implements the acceptance criterion and the
// adaptive step-size rule for a single-particle Monte Carlo move.
package metropolis

import (
	"errors"
	"math"
)

// ErrNoTrials indicates a displacement adjustment requested over an
// empty measurement window; the acceptance ratio is undefined.
var ErrNoTrials = errors.New("metropolis: cannot adjust displacement with zero trials")

// Displacement tuning policy: the target acceptance window and the
// multiplicative step applied outside it. Ratios of exactly 0.2 and
// 0.4 fall inside the unchanged band.
const (
	lowAcceptance  = 0.2
	highAcceptance = 0.4
	growFactor     = 1.2
	shrinkFactor   = 0.8
)

// Uniform is a source of uniform draws in [0, 1).
type Uniform interface {
	Float64() float64
}

// Accept applies the Metropolis criterion to a proposed energy change
// at inverse temperature beta. Downhill and neutral moves accept
// without drawing; uphill moves accept with probability
// exp(-beta*delta), consuming exactly one draw from u.
func Accept(delta, beta float64, u Uniform) bool {
	if delta <= 0 {
		return true
	}
	return u.Float64() < math.Exp(-beta*delta)
}

// AdjustDisplacement closes out a measurement window: it retunes the
// maximum trial displacement from the window's acceptance ratio and
// returns reset counters. Above the window the displacement grows by
// 20%, below it shrinks by 20%, inside it is unchanged.
func AdjustDisplacement(trials, accepts int, maxDisp float64) (newMaxDisp float64, resetTrials, resetAccepts int, err error) {
	if trials == 0 {
		return 0, 0, 0, ErrNoTrials
	}

	ratio := float64(accepts) / float64(trials)
	switch {
	case ratio > highAcceptance:
		maxDisp *= growFactor
	case ratio < lowAcceptance:
		maxDisp *= shrinkFactor
	}
	return maxDisp, 0, 0, nil
}
