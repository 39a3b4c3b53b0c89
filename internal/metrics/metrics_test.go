package metrics

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	m := NewMean("energy_mean")

	if m.Value() != 0 {
		t.Errorf("empty mean %v, want 0", m.Value())
	}

	for _, v := range []float64{1, 2, 3, 4} {
		m.Observe(v)
	}
	if math.Abs(m.Value()-2.5) > 1e-12 {
		t.Errorf("mean %v, want 2.5", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("mean after reset %v, want 0", m.Value())
	}
}

func TestVariance(t *testing.T) {
	v := NewVariance("energy_var")

	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		v.Observe(x)
	}
	// sample variance of the series is 32/7
	if math.Abs(v.Value()-32.0/7.0) > 1e-12 {
		t.Errorf("variance %v, want %v", v.Value(), 32.0/7.0)
	}
	if math.Abs(v.Mean()-5) > 1e-12 {
		t.Errorf("mean %v, want 5", v.Mean())
	}

	v.Reset()
	if v.Value() != 0 {
		t.Errorf("variance after reset %v, want 0", v.Value())
	}
}

func TestVarianceConstantSeries(t *testing.T) {
	v := NewVariance("energy_var")
	for i := 0; i < 100; i++ {
		v.Observe(-3.5)
	}
	if math.Abs(v.Value()) > 1e-12 {
		t.Errorf("variance of constant series %v, want 0", v.Value())
	}
}

func TestBlockAverage(t *testing.T) {
	b := NewBlockAverage("energy_err", 2)

	// blocks: (1+3)/2=2, (5+7)/2=6, (2+4)/2=3; trailing 9 discarded
	for _, x := range []float64{1, 3, 5, 7, 2, 4, 9} {
		b.Observe(x)
	}
	if b.Blocks() != 3 {
		t.Fatalf("blocks %d, want 3", b.Blocks())
	}

	// block means 2, 6, 3: mean 11/3, sample variance 13/3, stderr sqrt(13/9)
	want := math.Sqrt(13.0 / 9.0)
	if math.Abs(b.Value()-want) > 1e-12 {
		t.Errorf("standard error %v, want %v", b.Value(), want)
	}

	b.Reset()
	if b.Blocks() != 0 || b.Value() != 0 {
		t.Errorf("block average not cleared by reset")
	}
}

func TestBlockAverageTooFewBlocks(t *testing.T) {
	b := NewBlockAverage("energy_err", 10)
	for i := 0; i < 10; i++ {
		b.Observe(float64(i))
	}
	if b.Value() != 0 {
		t.Errorf("single block should report 0, got %v", b.Value())
	}
}
