package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/geom"
)

// ErrBadHistogram indicates unusable RDF parameters.
var ErrBadHistogram = errors.New("analysis: bins and rMax must be positive")

// RadialDistribution computes g(r) of a configuration over minimum-
// image pair distances, normalized against the ideal-gas shell count
// at the box density. rMax is capped at half the box length, beyond
// which minimum-image distances are not meaningful. Returns bin
// centers and g values.
func RadialDistribution(b *box.Box, bins int, rMax float64) (rs, g []float64, err error) {
	if bins <= 0 || rMax <= 0 {
		return nil, nil, fmt.Errorf("%w: bins %d, rMax %v", ErrBadHistogram, bins, rMax)
	}
	if half := b.Length / 2; rMax > half {
		rMax = half
	}

	n := b.NumParticles()
	dr := rMax / float64(bins)
	hist := make([]float64, bins)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r2 := geom.MinImageSq(b.Coords[i], b.Coords[j], b.Length)
			r := math.Sqrt(r2)
			if r >= rMax {
				continue
			}
			hist[int(r/dr)]++
		}
	}

	rs = make([]float64, bins)
	g = make([]float64, bins)
	density := float64(n) / b.Volume()

	for k := 0; k < bins; k++ {
		rIn := float64(k) * dr
		rOut := rIn + dr
		rs[k] = rIn + dr/2

		shell := (4.0 / 3.0) * math.Pi * (rOut*rOut*rOut - rIn*rIn*rIn)
		// ideal pair count in the shell: N/2 particles each seeing rho*shell neighbors
		ideal := 0.5 * float64(n) * density * shell
		if ideal > 0 {
			g[k] = hist[k] / ideal
		}
	}
	return rs, g, nil
}
