package geom

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		side float64
		want Vec3
	}{
		{"inside", Vec3{1, -1, 0.5}, 3, Vec3{1, -1, 0.5}},
		{"one image out", Vec3{1, 2, 10}, 3, Vec3{1, -1, 1}},
		{"mixed signs", Vec3{-5, 12, 1.5}, 6, Vec3{1, 0, 1.5}},
		{"upper boundary folds down", Vec3{1.5, 0, 0}, 3, Vec3{-1.5, 0, 0}},
		{"lower boundary stays", Vec3{-1.5, 0, 0}, 3, Vec3{-1.5, 0, 0}},
	}

	for _, tt := range tests {
		got := Wrap(tt.in, tt.side)
		for k := 0; k < 3; k++ {
			if math.Abs(got[k]-tt.want[k]) > 1e-12 {
				t.Errorf("%s: component %d: got %v, want %v", tt.name, k, got[k], tt.want[k])
			}
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	side := 7.3
	inputs := []Vec3{
		{0, 0, 0},
		{100.25, -93.1, 3.65},
		{-3.65, 3.649999, 7.3},
	}
	for _, v := range inputs {
		once := Wrap(v, side)
		twice := Wrap(once, side)
		if once != twice {
			t.Errorf("wrap not idempotent for %v: %v != %v", v, once, twice)
		}
		for k := 0; k < 3; k++ {
			if once[k] < -side/2 || once[k] >= side/2 {
				t.Errorf("wrapped component out of cell: %v from %v", once[k], v)
			}
		}
	}
}

func TestWrapInPlace(t *testing.T) {
	v := Vec3{1, 2, 10}
	WrapInPlace(&v, 3)
	want := Vec3{1, -1, 1}
	for k := 0; k < 3; k++ {
		if math.Abs(v[k]-want[k]) > 1e-12 {
			t.Errorf("component %d: got %v, want %v", k, v[k], want[k])
		}
	}
}

func TestMinImageSq(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		side float64
		want float64
	}{
		{"adjacent images", Vec3{1, 2, 0}, Vec3{3, 5, 0}, 3, 1},
		{"far images", Vec3{0, 0, 0}, Vec3{5, 12, 2}, 5, 8},
		{"same point", Vec3{1, 1, 1}, Vec3{1, 1, 1}, 10, 0},
	}

	for _, tt := range tests {
		got := MinImageSq(tt.a, tt.b, tt.side)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMinImageSqSymmetric(t *testing.T) {
	a := Vec3{0.3, -4.1, 2.2}
	b := Vec3{-1.7, 3.3, -0.9}
	side := 9.4

	ab := MinImageSq(a, b, side)
	ba := MinImageSq(b, a, side)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("asymmetric: %v vs %v", ab, ba)
	}
}

func TestMinImageSqBounded(t *testing.T) {
	side := 4.0
	bound := 3 * side * side / 4

	pts := []Vec3{
		{0, 0, 0}, {1.99, 1.99, 1.99}, {-2, -2, -2}, {17.1, -23.4, 8.8},
	}
	for _, a := range pts {
		for _, b := range pts {
			if d2 := MinImageSq(a, b, side); d2 > bound+1e-12 {
				t.Errorf("d2=%v exceeds bound %v for %v, %v", d2, bound, a, b)
			}
		}
	}
}
