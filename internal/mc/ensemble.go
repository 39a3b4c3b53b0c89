package mc

import (
	"context"
	"sync"

	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/potential"
)

// Ensemble runs independent replicas of the same chain from the same
// starting configuration, each on a cloned box with its own seeded
// source. Replica idx uses seed cfg.Seed + idx.
type Ensemble struct {
	box     *box.Box
	lj      *potential.LennardJones
	numRuns int
}

func NewEnsemble(b *box.Box, lj *potential.LennardJones, numRuns int) *Ensemble {
	return &Ensemble{box: b, lj: lj, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = cfg.Seed + int64(idx)

			s, err := New(e.box.Clone(), e.lj, NewSource(cfgCopy.Seed))
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = s.Run(ctx, cfgCopy)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
