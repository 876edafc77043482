package gwt

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/jvlmdr/go-fftw/fftw"
)

// Transforms at an unchanged resolution must reuse the cached kernels;
// a change of resolution must rebuild them.
func TestTransform_rebuilds(t *testing.T) {
	trans, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if trans.Rebuilds() != 0 {
		t.Fatalf("before first use: %d rebuilds", trans.Rebuilds())
	}
	rng := rand.New(rand.NewSource(1))
	if _, err := trans.JetImage(randImage(32, 24, rng), false); err != nil {
		t.Fatal(err)
	}
	if trans.Rebuilds() != 1 {
		t.Errorf("after first use: want 1 rebuild, got %d", trans.Rebuilds())
	}
	if _, err := trans.JetImage(randImage(32, 24, rng), false); err != nil {
		t.Fatal(err)
	}
	if trans.Rebuilds() != 1 {
		t.Errorf("same resolution: want 1 rebuild, got %d", trans.Rebuilds())
	}
	if _, err := trans.JetImage(randImage(24, 32, rng), false); err != nil {
		t.Fatal(err)
	}
	if trans.Rebuilds() != 2 {
		t.Errorf("new resolution: want 2 rebuilds, got %d", trans.Rebuilds())
	}
}

// Every jet has one entry per wavelet of the family.
func TestTransform_jetLength(t *testing.T) {
	p := Params{Scales: 3, Directions: 6, Sigma: 2 * math.Pi, KMax: math.Pi / 2, KFac: 0.5}
	trans, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	if trans.NumKernels() != p.Scales*p.Directions {
		t.Fatalf("number of kernels: want %d, got %d", p.Scales*p.Directions, trans.NumKernels())
	}
	rng := rand.New(rand.NewSource(1))
	jets, err := trans.JetImage(randImage(20, 16, rng), false)
	if err != nil {
		t.Fatal(err)
	}
	if jets.Length != trans.NumKernels() {
		t.Fatalf("jet length: want %d, got %d", trans.NumKernels(), jets.Length)
	}
	for y := 0; y < jets.Height; y++ {
		for x := 0; x < jets.Width; x++ {
			if jets.At(x, y).Len() != trans.NumKernels() {
				t.Fatalf("jet at (%d, %d): length %d", x, y, jets.At(x, y).Len())
			}
		}
	}
}

func TestTransform_normalizedJets(t *testing.T) {
	trans, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	jets, err := trans.JetImage(randImage(24, 24, rng), true)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < jets.Height; y++ {
		for x := 0; x < jets.Width; x++ {
			jet := jets.At(x, y)
			var sqrSum float64
			for _, a := range jet.Abs {
				sqrSum += a * a
			}
			if !epsEq(1, sqrSum, 1e-8) {
				t.Errorf("jet at (%d, %d): squared norm %g", x, y, sqrSum)
			}
		}
	}
}

// The response to a pure complex wave is the wave scaled by the kernel
// coefficient at its frequency.
func TestTransform_waveResponse(t *testing.T) {
	const (
		width  = 32
		height = 32
		// Frequency bin of the input wave.
		bin = 4
	)
	trans, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	im := fftw.NewArray2(width, height)
	for x := 0; x < width; x++ {
		phase := 2 * math.Pi * bin * float64(x) / width
		v := cmplx.Rect(1, phase)
		for y := 0; y < height; y++ {
			im.Set(x, y, v)
		}
	}
	jets, err := trans.JetImage(im, false)
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < trans.NumKernels(); j++ {
		weight := trans.Kernel(j).Image().At(bin, 0)
		for x := 0; x < width; x++ {
			jet := jets.At(x, 7)
			if !epsEq(math.Abs(weight), jet.Abs[j], 1e-8) {
				t.Errorf("kernel %d at x=%d: want magnitude %g, got %g", j, x, math.Abs(weight), jet.Abs[j])
			}
			if math.Abs(weight) < 1e-6 {
				// Phase is meaningless for a vanishing response.
				continue
			}
			want := 2 * math.Pi * bin * float64(x) / width
			if weight < 0 {
				want += math.Pi
			}
			// Compare phases on the circle.
			diff := math.Mod(want-jet.Phase[j], 2*math.Pi)
			if diff > math.Pi {
				diff -= 2 * math.Pi
			} else if diff < -math.Pi {
				diff += 2 * math.Pi
			}
			if math.Abs(diff) > 1e-8 {
				t.Errorf("kernel %d at x=%d: want phase %g, got %g", j, x, want, jet.Phase[j])
			}
		}
	}
}

// Apply and JetImage must agree on the same input.
func TestTransform_applyMatchesJetImage(t *testing.T) {
	if testing.Short() {
		t.Skip("skip in short mode")
	}
	trans, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	im := randImage(30, 20, rng)
	planes := trans.Apply(im)
	jets, err := trans.JetImage(im, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(planes) != jets.Length {
		t.Fatalf("plane count: want %d, got %d", jets.Length, len(planes))
	}
	for j, plane := range planes {
		for y := 0; y < jets.Height; y++ {
			for x := 0; x < jets.Width; x++ {
				v := plane.At(x, y)
				jet := jets.At(x, y)
				if !epsEq(cmplx.Abs(v), jet.Abs[j], eps) {
					t.Fatalf("kernel %d at (%d, %d): magnitude %g, %g", j, x, y, cmplx.Abs(v), jet.Abs[j])
				}
				if !epsEq(cmplx.Phase(v), jet.Phase[j], eps) {
					t.Fatalf("kernel %d at (%d, %d): phase %g, %g", j, x, y, cmplx.Phase(v), jet.Phase[j])
				}
			}
		}
	}
}
