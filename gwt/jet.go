package gwt

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateJet is returned when a jet with zero magnitude in every
// component is normalized. Such jets arise from constant images under
// DC-free wavelets; they carry no texture information.
var ErrDegenerateJet = errors.New("degenerate jet: zero norm")

// Jet is the response of one pixel to every wavelet of a family.
// Abs and Phase have one entry per wavelet, in frequency-bank order.
// Phase may be nil for magnitude-only jets.
type Jet struct {
	Abs   []float64
	Phase []float64
}

// NewJet allocates a zero jet of the given length, with phases.
func NewJet(length int) Jet {
	return Jet{Abs: make([]float64, length), Phase: make([]float64, length)}
}

// Len returns the number of wavelet responses in the jet.
func (j Jet) Len() int {
	return len(j.Abs)
}

// Clone returns a deep copy.
func (j Jet) Clone() Jet {
	out := Jet{Abs: append([]float64(nil), j.Abs...)}
	if j.Phase != nil {
		out.Phase = append([]float64(nil), j.Phase...)
	}
	return out
}

// Normalize rescales the magnitude vector to unit Euclidean norm.
// Phases are untouched. Returns ErrDegenerateJet for an all-zero jet
// rather than dividing by zero.
func (j Jet) Normalize() error {
	norm := math.Sqrt(floats.Dot(j.Abs, j.Abs))
	if norm == 0 {
		return ErrDegenerateJet
	}
	floats.Scale(1/norm, j.Abs)
	return nil
}

// JetImage holds one Gabor jet per pixel.
// The jets of a pixel are contiguous, so At returns slices aliasing
// the image storage rather than copies.
type JetImage struct {
	Width, Height int
	// Length of the jet at every pixel (the number of wavelets).
	Length int
	// Packed magnitudes and phases, indexed by (y*Width+x)*Length+j.
	Abs, Phase []float64
}

// NewJetImage allocates a zero jet image.
func NewJetImage(width, height, length int) *JetImage {
	return &JetImage{
		Width:  width,
		Height: height,
		Length: length,
		Abs:    make([]float64, width*height*length),
		Phase:  make([]float64, width*height*length),
	}
}

// At returns the jet at pixel (x, y). The jet shares storage with the
// image; clone it before modifying if the image must stay intact.
func (im *JetImage) At(x, y int) Jet {
	off := (y*im.Width + x) * im.Length
	return Jet{
		Abs:   im.Abs[off : off+im.Length : off+im.Length],
		Phase: im.Phase[off : off+im.Length : off+im.Length],
	}
}

// Normalize rescales every pixel's jet to unit norm.
func (im *JetImage) Normalize() error {
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			if err := im.At(x, y).Normalize(); err != nil {
				return fmt.Errorf("jet at (%d, %d): %w", x, y, err)
			}
		}
	}
	return nil
}
