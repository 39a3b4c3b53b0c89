package metrics

// Variance is the sample variance via Welford's online algorithm,
// stable against catastrophic cancellation on long series.
type Variance struct {
	name    string
	mean    float64
	m2      float64
	samples int
}

func NewVariance(name string) *Variance {
	return &Variance{name: name}
}

func (v *Variance) Name() string { return v.name }

func (v *Variance) Observe(x float64) {
	v.samples++
	delta := x - v.mean
	v.mean += delta / float64(v.samples)
	v.m2 += delta * (x - v.mean)
}

func (v *Variance) Value() float64 {
	if v.samples < 2 {
		return 0
	}
	return v.m2 / float64(v.samples-1)
}

func (v *Variance) Mean() float64 { return v.mean }

func (v *Variance) Reset() {
	v.mean = 0
	v.m2 = 0
	v.samples = 0
}
