package graph

import (
	"fmt"

	"github.com/jvlmdr/go-gabor/gwt"
	"github.com/jvlmdr/go-gabor/jetsim"
)

// Similarity compares two graphs of identical topology node by node
// and returns the mean jet similarity.
func Similarity(model, probe []gwt.Jet, fn jetsim.Similarity) float64 {
	if len(model) != len(probe) {
		panic(fmt.Sprintf("node counts differ: %d, %d", len(model), len(probe)))
	}
	if len(model) == 0 {
		panic("empty graph")
	}
	var sum float64
	for i := range model {
		sum += fn.Similarity(model[i], probe[i])
	}
	return sum / float64(len(model))
}

// BestSimilarity compares a probe graph against a set of model graphs
// of identical topology. Per node, the best similarity over all models
// is kept (floored at zero); the mean over nodes is returned.
func BestSimilarity(models [][]gwt.Jet, probe []gwt.Jet, fn jetsim.Similarity) float64 {
	if len(models) == 0 {
		panic("no model graphs")
	}
	if len(probe) == 0 {
		panic("empty graph")
	}
	var sum float64
	for i := range probe {
		var best float64
		for _, model := range models {
			if len(model) != len(probe) {
				panic(fmt.Sprintf("node counts differ: %d, %d", len(model), len(probe)))
			}
			if s := fn.Similarity(model[i], probe[i]); s > best {
				best = s
			}
		}
		sum += best
	}
	return sum / float64(len(probe))
}
