package jetsim

import (
	"fmt"
	"math"

	"github.com/jvlmdr/go-gabor/gwt"
	"gonum.org/v1/gonum/floats"
)

// Similarity scores the resemblance of two jets of equal length.
// Implementations panic if the jets have different lengths; sizing is
// the caller's contract.
type Similarity interface {
	Similarity(a, b gwt.Jet) float64
}

func mustSameLen(a, b gwt.Jet) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("jet lengths differ: %d, %d", a.Len(), b.Len()))
	}
}

// ScalarProduct is the inner product of the magnitude vectors.
// For unit-normalized jets this is their cosine similarity.
type ScalarProduct struct{}

func (ScalarProduct) Similarity(a, b gwt.Jet) float64 {
	mustSameLen(a, b)
	return floats.Dot(a.Abs, b.Abs)
}

// Canberra turns the Canberra distance of the magnitude vectors into a
// similarity: the mean over wavelets of 1 - |a-b|/(a+b).
type Canberra struct{}

func (Canberra) Similarity(a, b gwt.Jet) float64 {
	mustSameLen(a, b)
	var sim float64
	for j := range a.Abs {
		den := a.Abs[j] + b.Abs[j]
		if den == 0 {
			// Two zero responses are identical.
			sim++
			continue
		}
		sim += 1 - math.Abs(a.Abs[j]-b.Abs[j])/den
	}
	return sim / float64(a.Len())
}
