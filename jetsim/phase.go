package jetsim

import (
	"math"

	"github.com/jvlmdr/go-gabor/gwt"
)

// PhaseDiff scores the cosine of the disparity-corrected phase
// differences, averaged over the family. Unlike Disparity it weights
// every wavelet equally.
type PhaseDiff struct {
	*Disparity
}

// NewPhaseDiff creates the similarity for the given wavelet family.
func NewPhaseDiff(p gwt.Params) PhaseDiff {
	return PhaseDiff{NewDisparity(p)}
}

func (f PhaseDiff) Similarity(a, b gwt.Jet) float64 {
	conf, diff := f.confidences(a, b)
	disp, _, _ := f.solve(conf, diff)
	var sum float64
	for j, k := range f.Freqs {
		sum += math.Cos(diff[j] - disp.X*k.X - disp.Y*k.Y)
	}
	return sum / float64(len(f.Freqs))
}

// PhaseDiffPlusCanberra averages the disparity-corrected phase term
// with the Canberra magnitude term, weighting both halves equally.
type PhaseDiffPlusCanberra struct {
	*Disparity
}

// NewPhaseDiffPlusCanberra creates the similarity for the given
// wavelet family.
func NewPhaseDiffPlusCanberra(p gwt.Params) PhaseDiffPlusCanberra {
	return PhaseDiffPlusCanberra{NewDisparity(p)}
}

func (f PhaseDiffPlusCanberra) Similarity(a, b gwt.Jet) float64 {
	conf, diff := f.confidences(a, b)
	disp, _, _ := f.solve(conf, diff)
	var sum float64
	for j, k := range f.Freqs {
		sum += math.Cos(diff[j] - disp.X*k.X - disp.Y*k.Y)
		den := a.Abs[j] + b.Abs[j]
		if den == 0 {
			sum++
			continue
		}
		sum += 1 - math.Abs(a.Abs[j]-b.Abs[j])/den
	}
	return sum / float64(2*len(f.Freqs))
}
