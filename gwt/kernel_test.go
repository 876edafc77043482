package gwt

import (
	"testing"
)

// DC-free kernels must have no response at zero frequency.
func TestNewKernel_dcFree(t *testing.T) {
	p := DefaultParams()
	for j, k := range Frequencies(p) {
		kern := NewKernel(16, 16, k, p.Sigma, p.PowOfK, true, KernelEpsilon)
		for _, pt := range kern.Points() {
			if pt.X == 0 && pt.Y == 0 {
				t.Errorf("kernel %d: zero-frequency coefficient %g", j, pt.Weight)
			}
		}
	}
}

func TestKernel_equal(t *testing.T) {
	p := DefaultParams()
	k := Frequencies(p)[0]
	a := NewKernel(24, 16, k, p.Sigma, p.PowOfK, p.DCFree, KernelEpsilon)
	b := NewKernel(24, 16, k, p.Sigma, p.PowOfK, p.DCFree, KernelEpsilon)
	if !a.Equal(b) {
		t.Error("identical construction: kernels differ")
	}
	c := NewKernel(24, 16, k, p.Sigma/2, p.PowOfK, p.DCFree, KernelEpsilon)
	if a.Equal(c) {
		t.Error("different sigma: kernels equal")
	}
	d := NewKernel(16, 24, k, p.Sigma, p.PowOfK, p.DCFree, KernelEpsilon)
	if a.Equal(d) {
		t.Error("different resolution: kernels equal")
	}
}

// Directions d and D-d mirror each other across the x axis of the
// frequency plane. This test only works with 8 directions.
func TestKernel_mirrorSymmetry(t *testing.T) {
	const size = 32
	p := DefaultParams()
	if p.Directions != 8 {
		t.Fatalf("test assumes 8 directions, got %d", p.Directions)
	}
	freqs := Frequencies(p)
	pairs := [][2]int{{1, 7}, {2, 6}, {3, 5}}
	for s := 0; s < p.Scales; s++ {
		for _, pair := range pairs {
			a := NewKernel(size, size, freqs[s*p.Directions+pair[0]], p.Sigma, p.PowOfK, p.DCFree, KernelEpsilon)
			b := NewKernel(size, size, freqs[s*p.Directions+pair[1]], p.Sigma, p.PowOfK, p.DCFree, KernelEpsilon)
			imA, imB := a.Image(), b.Image()
			// Skip x = 0, the unmirrored column.
			for x := 1; x < size; x++ {
				for y := 0; y < size; y++ {
					u := imA.At(x, y)
					v := imB.At(size-x, y)
					if !epsEq(u, v, eps) {
						t.Errorf("scale %d pair %v at (%d, %d): %g, %g", s, pair, x, y, u, v)
					}
				}
			}
		}
	}
}
