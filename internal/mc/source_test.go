package mc

import "testing"

func TestSourceSameSeedSameSequence(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestSourceDifferentSeedsDiverge(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestSourceSeedResets(t *testing.T) {
	s := NewSource(7)
	first := make([]float64, 10)
	for i := range first {
		first[i] = s.Float64()
	}

	s.Seed(7)
	for i := range first {
		if got := s.Float64(); got != first[i] {
			t.Fatalf("draw %d after reseed: got %v, want %v", i, got, first[i])
		}
	}
}

func TestSourceFloat64Bounds(t *testing.T) {
	s := NewSource(99)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %v outside [0, 1)", v)
		}
	}
}

func TestSourceRangeBounds(t *testing.T) {
	s := NewSource(5)
	lo, hi := -0.25, 0.25
	for i := 0; i < 1000; i++ {
		v := s.Range(lo, hi)
		if v < lo || v >= hi {
			t.Fatalf("draw %v outside [%v, %v)", v, lo, hi)
		}
	}
}

func TestSourceIntnBounds(t *testing.T) {
	s := NewSource(11)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.Intn(8)
		if v < 0 || v >= 8 {
			t.Fatalf("draw %d outside [0, 8)", v)
		}
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("1000 draws hit only %d of 8 values", len(seen))
	}
}
