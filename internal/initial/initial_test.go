package initial

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/arpitban/ljmc/internal/mc"
	"github.com/arpitban/ljmc/internal/xyz"
)

func TestRandomCountAndBounds(t *testing.T) {
	coords, err := Random(mc.NewSource(123), 100, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 100 {
		t.Fatalf("got %d particles, want 100", len(coords))
	}
	for i, c := range coords {
		for k := 0; k < 3; k++ {
			if c[k] < -5 || c[k] >= 5 {
				t.Errorf("particle %d component %d outside cell: %v", i, k, c[k])
			}
		}
	}
}

func TestRandomReproducible(t *testing.T) {
	a, _ := Random(mc.NewSource(123), 50, 8.0)
	b, _ := Random(mc.NewSource(123), 50, 8.0)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs between equal seeds: %v vs %v", i, a[i], b[i])
		}
	}

	c, _ := Random(mc.NewSource(124), 50, 8.0)
	if a[0] == c[0] {
		t.Error("different seeds produced the same first particle")
	}
}

func TestRandomRejectsBadCount(t *testing.T) {
	if _, err := Random(mc.NewSource(1), 0, 10); !errors.Is(err, ErrBadCount) {
		t.Errorf("expected ErrBadCount, got %v", err)
	}
}

func TestLattice(t *testing.T) {
	coords, err := Lattice(8, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 8 {
		t.Fatalf("got %d sites, want 8", len(coords))
	}
	// 2x2x2 lattice in a box of 4: sites at +-1 per component
	for i, c := range coords {
		for k := 0; k < 3; k++ {
			if c[k] != -1 && c[k] != 1 {
				t.Errorf("site %d component %d is %v, want +-1", i, k, c[k])
			}
		}
	}
}

func TestLatticePartialFill(t *testing.T) {
	coords, err := Lattice(800, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != 800 {
		t.Fatalf("got %d sites, want 800", len(coords))
	}
	seen := make(map[[3]float64]bool, len(coords))
	for _, c := range coords {
		if seen[c] {
			t.Fatalf("duplicate lattice site %v", c)
		}
		seen[c] = true
		for k := 0; k < 3; k++ {
			if c[k] < -5 || c[k] >= 5 {
				t.Errorf("site outside cell: %v", c)
			}
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "init.xyz")
	want, _ := Lattice(27, 6.0)
	if err := xyz.WriteFile(path, "lattice", want); err != nil {
		t.Fatal(err)
	}

	got, err := Generate("file", nil, 0, 0, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 27 {
		t.Fatalf("file method: got %d particles, want 27", len(got))
	}

	if _, err := Generate("random", mc.NewSource(1), 10, 5, ""); err != nil {
		t.Errorf("random method failed: %v", err)
	}
	if _, err := Generate("lattice", nil, 10, 5, ""); err != nil {
		t.Errorf("lattice method failed: %v", err)
	}
}

func TestGenerateUnknownMethod(t *testing.T) {
	if _, err := Generate("fcc", nil, 10, 5, ""); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}
