package metrics

import "math"

// BlockAverage estimates the standard error of the mean of a
// correlated series by averaging over fixed-size blocks: block means
// decorrelate once the block length exceeds the correlation time.
// Value reports the standard error over completed blocks; a trailing
// partial block is discarded.
type BlockAverage struct {
	name      string
	blockSize int

	current    float64
	inBlock    int
	blockMeans []float64
}

func NewBlockAverage(name string, blockSize int) *BlockAverage {
	if blockSize < 1 {
		blockSize = 1
	}
	return &BlockAverage{name: name, blockSize: blockSize}
}

func (b *BlockAverage) Name() string { return b.name }

func (b *BlockAverage) Observe(v float64) {
	b.current += v
	b.inBlock++
	if b.inBlock == b.blockSize {
		b.blockMeans = append(b.blockMeans, b.current/float64(b.blockSize))
		b.current = 0
		b.inBlock = 0
	}
}

func (b *BlockAverage) Value() float64 {
	n := len(b.blockMeans)
	if n < 2 {
		return 0
	}

	mean := 0.0
	for _, m := range b.blockMeans {
		mean += m
	}
	mean /= float64(n)

	varSum := 0.0
	for _, m := range b.blockMeans {
		d := m - mean
		varSum += d * d
	}
	return math.Sqrt(varSum / float64(n-1) / float64(n))
}

// Blocks returns the number of completed blocks.
func (b *BlockAverage) Blocks() int { return len(b.blockMeans) }

func (b *BlockAverage) Reset() {
	b.current = 0
	b.inBlock = 0
	b.blockMeans = b.blockMeans[:0]
}
