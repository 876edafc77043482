/*
Package graph represents images as sparse graphs of Gabor jets.

A Graph is an ordered set of node positions. Binding it to a jet image
yields one jet per node:

	g, err := graph.NewGrid(image.Pt(10, 10), image.Pt(90, 90), image.Pt(10, 10))
	if err != nil {
		return err
	}
	model, err := g.Extract(jets)
	probe, err := g.Extract(otherJets)
	score := graph.Similarity(model, probe, jetsim.ScalarProduct{})

Graphs extracted with the same node layout share topology and can be
compared node by node, averaged into a class model, or enrolled in a
Gallery for ranked matching.
*/
package graph
