// Package metrics provides sampling accumulators for the unit-energy
// series of a Monte Carlo run. All implementations satisfy
// mc.Accumulator.
package metrics

// Mean is the running arithmetic mean of the observed samples.
type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean(name string) *Mean {
	return &Mean{name: name}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(v float64) {
	m.sum += v
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}
