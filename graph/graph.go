package graph

import (
	"fmt"
	"image"
	"math"

	"github.com/jvlmdr/go-gabor/gwt"
)

// Graph is an ordered set of node positions. Positions are fixed at
// construction; jets are extracted on demand and never cached inside
// the graph.
type Graph struct {
	nodes []image.Point
}

// NewGrid creates a regular grid with nodes at every
// (first.X + i*step.X, first.Y + j*step.Y) within [first, last]
// inclusive, in row-major order.
func NewGrid(first, last, step image.Point) (*Graph, error) {
	if step.X <= 0 || step.Y <= 0 {
		return nil, fmt.Errorf("non-positive step: %dx%d", step.X, step.Y)
	}
	if last.X < first.X || last.Y < first.Y {
		return nil, fmt.Errorf("last node (%d, %d) before first (%d, %d)", last.X, last.Y, first.X, first.Y)
	}
	xcount := (last.X-first.X)/step.X + 1
	ycount := (last.Y-first.Y)/step.Y + 1
	nodes := make([]image.Point, 0, xcount*ycount)
	for y := 0; y < ycount; y++ {
		for x := 0; x < xcount; x++ {
			nodes = append(nodes, image.Pt(first.X+x*step.X, first.Y+y*step.Y))
		}
	}
	return &Graph{nodes}, nil
}

// NewFaceGrid creates a grid anchored on the two eye positions of a
// face image. The grid axes follow the eye-to-eye direction: between
// nodes between the eyes (excluding the eye nodes), along nodes
// outside either eye, above and below rows of nodes on each side of
// the eye line. Node positions are rounded to whole pixels.
func NewFaceGrid(righteye, lefteye image.Point, between, along, above, below int) (*Graph, error) {
	if between < 0 || along < 0 || above < 0 || below < 0 {
		return nil, fmt.Errorf("negative node count: between %d, along %d, above %d, below %d", between, along, above, below)
	}
	if righteye == lefteye {
		return nil, fmt.Errorf("eye positions coincide: (%d, %d)", righteye.X, righteye.Y)
	}
	var (
		stepX  = float64(lefteye.X-righteye.X) / float64(between+1)
		stepY  = float64(lefteye.Y-righteye.Y) / float64(between+1)
		startX = float64(righteye.X) - float64(along)*stepX + float64(above)*stepY
		startY = float64(righteye.Y) - float64(along)*stepY - float64(above)*stepX
		xcount = between + 2*(along+1)
		ycount = above + below + 1
	)
	nodes := make([]image.Point, 0, xcount*ycount)
	for y := 0; y < ycount; y++ {
		for x := 0; x < xcount; x++ {
			nodes = append(nodes, image.Pt(
				int(math.Round(startX+float64(x)*stepX-float64(y)*stepY)),
				int(math.Round(startY+float64(y)*stepX+float64(x)*stepY)),
			))
		}
	}
	return &Graph{nodes}, nil
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// Nodes returns the node positions in creation order.
// The slice must not be modified.
func (g *Graph) Nodes() []image.Point {
	return g.nodes
}

// checkPositions verifies that every node lies inside an image of the
// given extent.
func (g *Graph) checkPositions(width, height int) error {
	for _, p := range g.nodes {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return fmt.Errorf("node (%d, %d) outside image %dx%d", p.X, p.Y, width, height)
		}
	}
	return nil
}

// Extract gathers the jets at the node positions, in node order.
// The jets are copies; the jet image is not retained.
func (g *Graph) Extract(im *gwt.JetImage) ([]gwt.Jet, error) {
	if err := g.checkPositions(im.Width, im.Height); err != nil {
		return nil, err
	}
	jets := make([]gwt.Jet, len(g.nodes))
	for i, p := range g.nodes {
		jets[i] = im.At(p.X, p.Y).Clone()
	}
	return jets, nil
}
