package jetsim

import (
	"fmt"
	"math"

	"github.com/jvlmdr/go-gabor/gwt"
	"gonum.org/v1/gonum/spatial/r2"
)

// Result is the outcome of one disparity estimation.
type Result struct {
	// Confidence-weighted phase agreement after disparity correction.
	Similarity float64
	// Estimated displacement of jet a relative to jet b, in pixels.
	Disparity r2.Vec
	// Whether the refinement moved less than Tol before MaxIter ran out.
	Converged bool
	// Refinement passes used, not counting the coarse-to-fine sweep.
	Iterations int
}

// Disparity estimates the displacement between the image locations of
// two jets from their phase differences and scores phase agreement at
// the estimated offset.
//
// The estimate starts with a coarse-to-fine sweep over scales, solving
// a confidence-weighted 2x2 system after each scale, and is then
// refined over the full family until it moves less than Tol or MaxIter
// passes have run. Estimation is stateless across calls; everything it
// computes is in the returned Result.
type Disparity struct {
	// Center frequencies of the wavelet family, in bank order.
	Freqs []r2.Vec
	// Family layout: Freqs[s*Directions+d] belongs to scale s.
	Scales, Directions int
	// Refinement budget.
	MaxIter int
	Tol     float64
}

// Defaults for the refinement loop. One pass confirms the sweep result
// on clean phase data; noisy jets use more.
const (
	DefaultMaxIter = 10
	DefaultTol     = 1e-12
)

// NewDisparity creates an estimator for the given wavelet family.
func NewDisparity(p gwt.Params) *Disparity {
	return &Disparity{
		Freqs:      gwt.Frequencies(p),
		Scales:     p.Scales,
		Directions: p.Directions,
		MaxIter:    DefaultMaxIter,
		Tol:        DefaultTol,
	}
}

// wrapPhase maps a phase to [-pi, pi).
func wrapPhase(phase float64) float64 {
	return phase - 2*math.Pi*math.Round(phase/(2*math.Pi))
}

// Estimate computes the disparity of jet a relative to jet b and the
// disparity-corrected similarity. Both jets must include phases and
// have one entry per wavelet of the family.
func (d *Disparity) Estimate(a, b gwt.Jet) Result {
	conf, diff := d.confidences(a, b)
	disp, converged, iters := d.solve(conf, diff)
	var sum float64
	for j, k := range d.Freqs {
		sum += conf[j] * math.Cos(diff[j]-disp.X*k.X-disp.Y*k.Y)
	}
	return Result{Similarity: sum, Disparity: disp, Converged: converged, Iterations: iters}
}

// Similarity returns the disparity-corrected phase agreement,
// confidence-weighted. Identical unit jets score 1.
func (d *Disparity) Similarity(a, b gwt.Jet) float64 {
	return d.Estimate(a, b).Similarity
}

// ShiftPhase re-predicts the phases of jet at its estimated offset
// from ref, so that the result is directly comparable to ref.
// Magnitudes are copied unchanged. The disparity used is returned
// alongside the shifted jet.
func (d *Disparity) ShiftPhase(jet, ref gwt.Jet) (gwt.Jet, r2.Vec) {
	conf, diff := d.confidences(jet, ref)
	disp, _, _ := d.solve(conf, diff)
	out := jet.Clone()
	for j, k := range d.Freqs {
		out.Phase[j] = wrapPhase(jet.Phase[j] - disp.X*k.X - disp.Y*k.Y)
	}
	return out, disp
}

// confidences computes the per-wavelet confidence (product of
// magnitudes) and wrapped phase difference of two jets.
func (d *Disparity) confidences(a, b gwt.Jet) (conf, diff []float64) {
	mustSameLen(a, b)
	if a.Len() != len(d.Freqs) {
		panic(fmt.Sprintf("jet length differs from family size: %d, %d", a.Len(), len(d.Freqs)))
	}
	if a.Phase == nil || b.Phase == nil {
		panic("disparity estimation needs jets with phases")
	}
	conf = make([]float64, a.Len())
	diff = make([]float64, a.Len())
	for j := range conf {
		conf[j] = a.Abs[j] * b.Abs[j]
		diff[j] = wrapPhase(a.Phase[j] - b.Phase[j])
	}
	return conf, diff
}

// solve estimates the disparity from confidences and phase differences.
//
// The phase difference of wavelet j at displacement v is approximately
// dot(v, k_j), so v solves the weighted least-squares system
// Gamma v = Phi.
// Low frequencies are unambiguous over the largest displacements, so
// the sweep accumulates the system scale by scale from the lowest
// frequency up, re-solving after each scale and unwrapping phases
// against the running estimate.
func (d *Disparity) solve(conf, diff []float64) (disp r2.Vec, converged bool, iters int) {
	var gxx, gxy, gyy, px, py float64
	for s := d.Scales - 1; s >= 0; s-- {
		for dir := 0; dir < d.Directions; dir++ {
			j := s*d.Directions + dir
			k := d.Freqs[j]
			gxx += k.X * k.X * conf[j]
			gxy += k.X * k.Y * conf[j]
			gyy += k.Y * k.Y * conf[j]
			// Number of whole cycles the measured difference is off.
			n := math.Round((diff[j] - disp.X*k.X - disp.Y*k.Y) / (2 * math.Pi))
			px += (diff[j] - n*2*math.Pi) * conf[j] * k.X
			py += (diff[j] - n*2*math.Pi) * conf[j] * k.Y
		}
		disp = solve2x2(gxx, gxy, gyy, px, py, disp)
	}

	for iters < d.MaxIter {
		iters++
		gxx, gxy, gyy, px, py = 0, 0, 0, 0, 0
		for j, k := range d.Freqs {
			gxx += k.X * k.X * conf[j]
			gxy += k.X * k.Y * conf[j]
			gyy += k.Y * k.Y * conf[j]
			n := math.Round((diff[j] - disp.X*k.X - disp.Y*k.Y) / (2 * math.Pi))
			px += (diff[j] - n*2*math.Pi) * conf[j] * k.X
			py += (diff[j] - n*2*math.Pi) * conf[j] * k.Y
		}
		next := solve2x2(gxx, gxy, gyy, px, py, disp)
		delta := math.Hypot(next.X-disp.X, next.Y-disp.Y)
		disp = next
		if delta <= d.Tol {
			converged = true
			break
		}
	}
	return disp, converged, iters
}

// solve2x2 solves the symmetric system [gxx gxy; gxy gyy] v = [px; py]
// in closed form. A singular system (all confidences zero) leaves the
// previous estimate unchanged.
func solve2x2(gxx, gxy, gyy, px, py float64, prev r2.Vec) r2.Vec {
	det := gxx*gyy - gxy*gxy
	if det == 0 {
		return prev
	}
	return r2.Vec{
		X: (gyy*px - gxy*py) / det,
		Y: (gxx*py - gxy*px) / det,
	}
}
