package gwt

import (
	"fmt"
	"math/cmplx"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-fftw/fftw"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Transform computes Gabor wavelet transforms of images.
//
// Kernel construction is O(width*height) per wavelet and there are
// Scales*Directions wavelets, so the kernels and the FFT plans are
// cached and rebuilt only when the image resolution changes. Repeated
// transforms at one resolution amortize the construction cost.
type Transform struct {
	params Params
	freqs  []r2.Vec

	// Per-resolution state. Valid while width and height are non-zero.
	width, height int
	kernels       []*Kernel
	freqIm        *fftw.Array2
	temp          *fftw.Array2
	fwd, inv      *fftw.Plan
	rebuilds      int
}

// New creates a transform for the given wavelet family.
func New(p Params) (*Transform, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Transform{params: p, freqs: Frequencies(p)}, nil
}

// Params returns the family parameters.
func (t *Transform) Params() Params {
	return t.params
}

// NumKernels returns the number of wavelets in the family.
func (t *Transform) NumKernels() int {
	return len(t.freqs)
}

// Frequencies returns the center frequencies of the family in
// frequency-bank order. The slice must not be modified.
func (t *Transform) Frequencies() []r2.Vec {
	return t.freqs
}

// Kernel returns wavelet j. Valid after EnsureKernels or any transform.
func (t *Transform) Kernel(j int) *Kernel {
	if t.kernels == nil {
		panic("kernels not generated: no resolution seen yet")
	}
	return t.kernels[j]
}

// Rebuilds returns how often the kernels have been regenerated.
func (t *Transform) Rebuilds() int {
	return t.rebuilds
}

// EnsureKernels generates the kernels, FFT plans and scratch buffers
// for the given resolution. It is a no-op when the resolution matches
// the cached one; transforms call it implicitly.
func (t *Transform) EnsureKernels(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("bad resolution: %dx%d", width, height))
	}
	if width == t.width && height == t.height {
		return
	}
	if t.fwd != nil {
		t.fwd.Destroy()
		t.inv.Destroy()
	}
	t.width, t.height = width, height
	t.kernels = make([]*Kernel, len(t.freqs))
	for j, k := range t.freqs {
		t.kernels[j] = NewKernel(width, height, k, t.params.Sigma, t.params.PowOfK, t.params.DCFree, KernelEpsilon)
	}
	t.freqIm = fftw.NewArray2(width, height)
	t.temp = fftw.NewArray2(width, height)
	t.fwd = fftw.NewPlan2(t.freqIm, t.freqIm, fftw.Forward, fftw.Estimate)
	t.inv = fftw.NewPlan2(t.temp, t.temp, fftw.Backward, fftw.Estimate)
	t.rebuilds++
}

// forward moves the image into the cached frequency-domain buffer.
func (t *Transform) forward(im *fftw.Array2) {
	w, h := im.Dims()
	t.EnsureKernels(w, h)
	copyArray(t.freqIm, im)
	t.fwd.Execute()
}

// Apply transforms the image with every wavelet of the family and
// returns one complex plane per wavelet, each with the extent of the
// input. The inverse transform normalization 1/(width*height) is
// folded into the frequency-domain product.
func (t *Transform) Apply(im *fftw.Array2) []*fftw.Array2 {
	t.forward(im)
	scale := 1 / float64(t.width*t.height)
	out := make([]*fftw.Array2, len(t.kernels))
	for j, kern := range t.kernels {
		kern.Apply(t.temp, t.freqIm, scale)
		t.inv.Execute()
		plane := fftw.NewArray2(t.width, t.height)
		copyArray(plane, t.temp)
		out[j] = plane
	}
	return out
}

// JetImage transforms the image and converts the responses to polar
// form, one jet per pixel. If normalize is set, every jet is rescaled
// to unit norm; a pixel whose responses are all zero is an error.
func (t *Transform) JetImage(im *fftw.Array2, normalize bool) (*JetImage, error) {
	t.forward(im)
	scale := 1 / float64(t.width*t.height)
	jets := NewJetImage(t.width, t.height, len(t.kernels))
	for j, kern := range t.kernels {
		kern.Apply(t.temp, t.freqIm, scale)
		t.inv.Execute()
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				v := t.temp.At(x, y)
				off := (y*t.width+x)*jets.Length + j
				jets.Abs[off] = cmplx.Abs(v)
				jets.Phase[off] = cmplx.Phase(v)
			}
		}
	}
	if normalize {
		if err := jets.Normalize(); err != nil {
			return nil, err
		}
	}
	return jets, nil
}

// AbsImage transforms the image and keeps only the response
// magnitudes, one channel per wavelet.
func (t *Transform) AbsImage(im *fftw.Array2, normalize bool) (*rimg64.Multi, error) {
	t.forward(im)
	scale := 1 / float64(t.width*t.height)
	out := rimg64.NewMulti(t.width, t.height, len(t.kernels))
	for j, kern := range t.kernels {
		kern.Apply(t.temp, t.freqIm, scale)
		t.inv.Execute()
		for x := 0; x < t.width; x++ {
			for y := 0; y < t.height; y++ {
				out.Set(x, y, j, cmplx.Abs(t.temp.At(x, y)))
			}
		}
	}
	if normalize {
		jet := make([]float64, out.Channels)
		for x := 0; x < t.width; x++ {
			for y := 0; y < t.height; y++ {
				for j := range jet {
					jet[j] = out.At(x, y, j)
				}
				norm := floats.Norm(jet, 2)
				if norm == 0 {
					return nil, fmt.Errorf("jet at (%d, %d): %w", x, y, ErrDegenerateJet)
				}
				for j := range jet {
					out.Set(x, y, j, jet[j]/norm)
				}
			}
		}
	}
	return out, nil
}

// KernelImages renders the wavelet family as a multi-channel
// frequency-domain image, one channel per wavelet.
// Valid after EnsureKernels or any transform.
func (t *Transform) KernelImages() *rimg64.Multi {
	if t.kernels == nil {
		panic("kernels not generated: no resolution seen yet")
	}
	out := rimg64.NewMulti(t.width, t.height, len(t.kernels))
	for j, kern := range t.kernels {
		out.SetChannel(j, kern.Image())
	}
	return out
}
