package gwt

import (
	"fmt"
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-fftw/fftw"
	"gonum.org/v1/gonum/spatial/r2"
)

// Coefficients whose magnitude does not exceed this value are dropped
// from the sparse kernel.
const KernelEpsilon = 1e-10

// KernelPoint is one non-negligible coefficient of a kernel.
// The coordinate indexes the unshifted FFT layout, wrapped into
// [0, extent) per axis.
type KernelPoint struct {
	X, Y   int
	Weight float64
}

// Kernel is a single Gabor wavelet in the frequency domain, stored as
// a flat list of coefficients. Gabor wavelets decay quickly away from
// their center frequency, so the list is short relative to the image.
type Kernel struct {
	width, height int
	points        []KernelPoint
}

// NewKernel builds the wavelet for center frequency k at the given
// image resolution. The coefficient at frequency omega is
//
//	exp(-sigma^2 |omega-k|^2 / (2 |k|^2)) * |k|^powOfK
//
// minus, if dcFree, a Gaussian term that cancels the response at
// omega = 0. Coefficients with magnitude <= epsilon are dropped.
func NewKernel(width, height int, k r2.Vec, sigma, powOfK float64, dcFree bool, epsilon float64) *Kernel {
	kern := &Kernel{width: width, height: height}
	var (
		startX, endX = -width / 2, width/2 + width%2
		startY, endY = -height / 2, height/2 + height%2
		freqX        = 2 * math.Pi / float64(width)
		freqY        = 2 * math.Pi / float64(height)
		sigmaSqr     = sigma * sigma
		kSqr         = k.X*k.X + k.Y*k.Y
		prefactor    = math.Pow(kSqr, powOfK/2)
	)
	for y := startY; y < endY; y++ {
		omegaY := float64(y) * freqY
		for x := startX; x < endX; x++ {
			omegaX := float64(x) * freqX
			diffSqr := sqr(omegaX-k.X) + sqr(omegaY-k.Y)
			w := math.Exp(-sigmaSqr*diffSqr/(2*kSqr)) * prefactor
			if dcFree {
				omegaSqr := omegaX*omegaX + omegaY*omegaY
				w -= math.Exp(-sigmaSqr * (omegaSqr + kSqr) / (2 * kSqr))
			}
			if math.Abs(w) > epsilon {
				kern.points = append(kern.points, KernelPoint{
					X:      mod(x, width),
					Y:      mod(y, height),
					Weight: w,
				})
			}
		}
	}
	return kern
}

// Resolution returns the image resolution the kernel was built for.
func (k *Kernel) Resolution() (width, height int) {
	return k.width, k.height
}

// NumPoints returns the number of stored coefficients.
func (k *Kernel) NumPoints() int {
	return len(k.points)
}

// Points returns the stored coefficients. The slice must not be modified.
func (k *Kernel) Points() []KernelPoint {
	return k.points
}

// Apply convolves a frequency-domain image with the wavelet, scaling
// every product by scale. All frequencies outside the sparse support
// are zero in the result. Both arrays must match the kernel resolution.
func (k *Kernel) Apply(dst, src *fftw.Array2, scale float64) {
	if w, h := src.Dims(); w != k.width || h != k.height {
		panic(fmt.Sprintf("bad input dimensions: kernel %dx%d, image %dx%d", k.width, k.height, w, h))
	}
	if w, h := dst.Dims(); w != k.width || h != k.height {
		panic(fmt.Sprintf("bad output dimensions: kernel %dx%d, image %dx%d", k.width, k.height, w, h))
	}
	for x := 0; x < k.width; x++ {
		for y := 0; y < k.height; y++ {
			dst.Set(x, y, 0)
		}
	}
	for _, p := range k.points {
		dst.Set(p.X, p.Y, src.At(p.X, p.Y)*complex(p.Weight*scale, 0))
	}
}

// Image renders the wavelet as a dense frequency-domain image.
func (k *Kernel) Image() *rimg64.Image {
	im := rimg64.New(k.width, k.height)
	for _, p := range k.points {
		im.Set(p.X, p.Y, p.Weight)
	}
	return im
}

// Equal reports whether two kernels were built for the same resolution
// and store the same coefficients, with values compared to within 1e-8.
func (k *Kernel) Equal(other *Kernel) bool {
	if k.width != other.width || k.height != other.height {
		return false
	}
	if len(k.points) != len(other.points) {
		return false
	}
	for i, p := range k.points {
		q := other.points[i]
		if p.X != q.X || p.Y != q.Y {
			return false
		}
		if math.Abs(p.Weight-q.Weight) > 1e-8 {
			return false
		}
	}
	return true
}
