package graph

import (
	"fmt"
	"math/cmplx"

	"github.com/jvlmdr/go-gabor/gwt"
)

// Average combines several graphs of identical topology into one by
// averaging the jets per node. Jet entries are summed as complex
// numbers (magnitude and phase together) and converted back to polar
// form, so phases average on the circle rather than arithmetically.
// The averaged jets are unit-normalized.
func Average(sets [][]gwt.Jet) ([]gwt.Jet, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("no graphs to average")
	}
	nodes := len(sets[0])
	for p, set := range sets {
		if len(set) != nodes {
			return nil, fmt.Errorf("graph %d has %d nodes, want %d", p, len(set), nodes)
		}
	}
	length := sets[0][0].Len()
	out := make([]gwt.Jet, nodes)
	acc := make([]complex128, length)
	for i := 0; i < nodes; i++ {
		for j := range acc {
			acc[j] = 0
		}
		for p, set := range sets {
			jet := set[i]
			if jet.Len() != length || jet.Phase == nil {
				return nil, fmt.Errorf("graph %d, node %d: jet not comparable", p, i)
			}
			for j := 0; j < length; j++ {
				acc[j] += cmplx.Rect(jet.Abs[j], jet.Phase[j])
			}
		}
		jet := gwt.NewJet(length)
		for j, v := range acc {
			jet.Abs[j] = cmplx.Abs(v)
			jet.Phase[j] = cmplx.Phase(v)
		}
		if err := jet.Normalize(); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out[i] = jet
	}
	return out, nil
}
