package gwt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Params describes a family of Gabor wavelets.
// The JSON field names are the keys of the persisted record;
// kernels are never stored, they regenerate from these scalars.
type Params struct {
	// Number of scales (frequency levels) of the family.
	Scales int `json:"NumberOfScales"`
	// Number of directions (orientations) per scale.
	Directions int `json:"NumberOfDirections"`
	// Width (standard deviation) of the wavelets.
	Sigma float64 `json:"Sigma"`
	// Magnitude of the highest frequency. At most pi.
	KMax float64 `json:"KMax"`
	// Factor between the frequencies of two adjacent scales.
	// Typically below one.
	KFac float64 `json:"KFac"`
	// Power of |k| used as a prefactor of the wavelet envelope.
	PowOfK float64 `json:"PowOfK"`
	// Suppress the response to the average image brightness?
	DCFree bool `json:"DCfree"`
}

// DefaultParams returns the parameters of the canonical 40-wavelet
// family: 5 scales, 8 directions, sigma 2*pi, frequencies from pi/2
// down by factors of 1/sqrt(2), DC-free.
func DefaultParams() Params {
	return Params{
		Scales:     5,
		Directions: 8,
		Sigma:      2 * math.Pi,
		KMax:       math.Pi / 2,
		KFac:       1 / math.Sqrt2,
		PowOfK:     0,
		DCFree:     true,
	}
}

func (p Params) validate() error {
	if p.Scales <= 0 {
		return fmt.Errorf("non-positive number of scales: %d", p.Scales)
	}
	if p.Directions <= 0 {
		return fmt.Errorf("non-positive number of directions: %d", p.Directions)
	}
	if p.KMax <= 0 {
		return fmt.Errorf("non-positive k_max: %g", p.KMax)
	}
	if p.KFac <= 0 {
		return fmt.Errorf("non-positive k_fac: %g", p.KFac)
	}
	return nil
}

// NumKernels returns the number of wavelets in the family.
func (p Params) NumKernels() int {
	return p.Scales * p.Directions
}

// Frequencies returns the center frequencies of the family in a fixed
// order: wavelet j = s*Directions + d has magnitude KMax*KFac^s and
// angle pi*d/Directions. Downstream jet indices rely on this order.
func Frequencies(p Params) []r2.Vec {
	freqs := make([]r2.Vec, 0, p.Scales*p.Directions)
	kAbs := p.KMax
	for s := 0; s < p.Scales; s++ {
		for d := 0; d < p.Directions; d++ {
			angle := math.Pi * float64(d) / float64(p.Directions)
			freqs = append(freqs, r2.Vec{
				X: kAbs * math.Cos(angle),
				Y: kAbs * math.Sin(angle),
			})
		}
		kAbs *= p.KFac
	}
	return freqs
}
