package gwt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// The order of the frequency bank is part of the contract:
// wavelet j = s*Directions + d.
func TestFrequencies_order(t *testing.T) {
	p := Params{Scales: 2, Directions: 4, Sigma: 2 * math.Pi, KMax: 2, KFac: 0.5}
	want := []r2.Vec{
		// Scale 0, |k| = 2.
		{X: 2, Y: 0},
		{X: math.Sqrt2, Y: math.Sqrt2},
		{X: 0, Y: 2},
		{X: -math.Sqrt2, Y: math.Sqrt2},
		// Scale 1, |k| = 1.
		{X: 1, Y: 0},
		{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
		{X: 0, Y: 1},
		{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	}
	got := Frequencies(p)
	if len(got) != len(want) {
		t.Fatalf("number of frequencies: want %d, got %d", len(want), len(got))
	}
	for j := range want {
		if !epsEq(want[j].X, got[j].X, eps) || !epsEq(want[j].Y, got[j].Y, eps) {
			t.Errorf("frequency %d: want (%g, %g), got (%g, %g)", j, want[j].X, want[j].Y, got[j].X, got[j].Y)
		}
	}
}

func TestFrequencies_magnitude(t *testing.T) {
	p := DefaultParams()
	freqs := Frequencies(p)
	for s := 0; s < p.Scales; s++ {
		want := p.KMax * math.Pow(p.KFac, float64(s))
		for d := 0; d < p.Directions; d++ {
			k := freqs[s*p.Directions+d]
			got := math.Hypot(k.X, k.Y)
			if !epsEq(want, got, eps) {
				t.Errorf("scale %d direction %d: want |k| %g, got %g", s, d, want, got)
			}
		}
	}
}

func TestNew_invalidParams(t *testing.T) {
	bad := []Params{
		{Scales: 0, Directions: 8, Sigma: 1, KMax: 1, KFac: 0.5},
		{Scales: 5, Directions: 0, Sigma: 1, KMax: 1, KFac: 0.5},
		{Scales: 5, Directions: 8, Sigma: 1, KMax: 0, KFac: 0.5},
		{Scales: 5, Directions: 8, Sigma: 1, KMax: 1, KFac: 0},
	}
	for i, p := range bad {
		if _, err := New(p); err == nil {
			t.Errorf("params %d: expect error", i)
		}
	}
}
