package graph

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
	"sync"

	"github.com/jvlmdr/go-gabor/gwt"
	"github.com/jvlmdr/go-gabor/jetsim"
)

// Match is one ranked result of a gallery query.
type Match struct {
	ID    string
	Score float64
}

// Gallery holds enrolled model graphs for ranked matching.
// One identity may enroll several graphs; a probe is scored against
// each of them per node (see BestSimilarity).
//
// Gallery's methods are concurrency safe. Gallery implements the
// GobEncoder and GobDecoder interfaces.
type Gallery struct {
	mu      sync.RWMutex
	ids     []string
	models  map[string][][]gwt.Jet
	nodes   int
	changed bool
}

// NewGallery returns a new, empty gallery.
func NewGallery() *Gallery {
	return &Gallery{models: make(map[string][][]gwt.Jet)}
}

// Add enrolls a model graph under the given identity. All graphs in a
// gallery must share topology.
func (g *Gallery) Add(id string, model []gwt.Jet) error {
	if len(model) == 0 {
		return fmt.Errorf("empty graph")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.nodes == 0 {
		g.nodes = len(model)
	} else if len(model) != g.nodes {
		return fmt.Errorf("graph has %d nodes, gallery has %d", len(model), g.nodes)
	}
	if _, ok := g.models[id]; !ok {
		g.ids = append(g.ids, id)
	}
	g.models[id] = append(g.models[id], model)
	g.changed = true
	return nil
}

// Size returns the number of enrolled identities.
func (g *Gallery) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.ids)
}

// Modified reports whether the gallery changed since it was loaded.
func (g *Gallery) Modified() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.changed
}

// Match scores the probe graph against every enrolled identity and
// returns all identities sorted by score, best first.
func (g *Gallery) Match(probe []gwt.Jet, fn jetsim.Similarity) ([]Match, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.ids) == 0 {
		return nil, nil
	}
	if len(probe) != g.nodes {
		return nil, fmt.Errorf("probe has %d nodes, gallery has %d", len(probe), g.nodes)
	}
	matches := make([]Match, 0, len(g.ids))
	for _, id := range g.ids {
		score := BestSimilarity(g.models[id], probe, fn)
		matches = append(matches, Match{ID: id, Score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

type galleryRecord struct {
	IDs    []string
	Models map[string][][]gwt.Jet
	Nodes  int
}

// GobEncode places a binary representation of the gallery in a byte slice.
func (g *Gallery) GobEncode() ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(galleryRecord{IDs: g.ids, Models: g.models, Nodes: g.nodes}); err != nil {
		return nil, fmt.Errorf("encode gallery: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode reconstructs the gallery from a binary representation.
func (g *Gallery) GobDecode(from []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	var rec galleryRecord
	if err := gob.NewDecoder(bytes.NewReader(from)).Decode(&rec); err != nil {
		return fmt.Errorf("decode gallery: %w", err)
	}
	g.ids = rec.IDs
	g.models = rec.Models
	if g.models == nil {
		g.models = make(map[string][][]gwt.Jet)
	}
	g.nodes = rec.Nodes
	g.changed = false
	return nil
}
