package potential

import (
	"sync"

	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/geom"
)

const minChunkRows = 64

// ChunkedTotalPairEnergy computes the same sum as TotalPairEnergy with
// the i rows split into contiguous chunks evaluated concurrently. Each
// chunk is summed in the usual i<j order and the chunk partials are
// reduced in chunk index order, so the result is independent of
// goroutine scheduling. Intended for one-shot energy reports on large
// configurations, not the move loop.
func (lj *LennardJones) ChunkedTotalPairEnergy(b *box.Box, workers int) float64 {
	n := len(b.Coords)
	if workers <= 1 || n < minChunkRows {
		return lj.TotalPairEnergy(b)
	}
	if n/minChunkRows < workers {
		workers = n / minChunkRows
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers
	partials := make([]float64, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(idx, start, end int) {
			defer wg.Done()
			e := 0.0
			for i := start; i < end; i++ {
				ri := b.Coords[i]
				for j := i + 1; j < n; j++ {
					r2 := geom.MinImageSq(ri, b.Coords[j], b.Length)
					if r2 <= lj.cutoff2 {
						e += lj.PairEnergy(r2)
					}
				}
			}
			partials[idx] = e
		}(w, start, end)
	}
	wg.Wait()

	e := 0.0
	for _, p := range partials {
		e += p
	}
	return e
}
