// Package candidate enumerates recordable instructions and the
// concretization closure each one would produce.
package candidate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderritik/hase/internal/graph"
)

// Inst describes what recording a single kinst would yield on a graph,
// relative to a baseline already-concretized set.
type Inst struct {
	Kinst            string
	Width            int
	Freq             int
	RecNodes         map[string]bool
	HiddenNodes      map[string]bool
	ConcretizedNodes map[string]bool
}

// NewInst constructs an Inst, enforcing the invariants from the data model:
// rec_nodes and hidden_nodes are subsets of concretized_nodes, rec_nodes and
// hidden_nodes are disjoint, and width is positive.
func NewInst(kinst string, width, freq int, rec, hidden, concretized map[string]bool) (*Inst, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: kinst %q", ErrZeroWidth, kinst)
	}
	for id := range rec {
		if !concretized[id] {
			return nil, fmt.Errorf("%w: rec_nodes has %q not in concretized_nodes (kinst %q)", ErrInvariant, id, kinst)
		}
		if hidden[id] {
			return nil, fmt.Errorf("%w: node %q is both rec and hidden (kinst %q)", ErrInvariant, id, kinst)
		}
	}
	for id := range hidden {
		if !concretized[id] {
			return nil, fmt.Errorf("%w: hidden_nodes has %q not in concretized_nodes (kinst %q)", ErrInvariant, id, kinst)
		}
	}
	return &Inst{
		Kinst:            kinst,
		Width:            width,
		Freq:             freq,
		RecNodes:         rec,
		HiddenNodes:      hidden,
		ConcretizedNodes: concretized,
	}, nil
}

// String renders a one-line summary, in the spirit of the original
// RecordableInst.__str__.
func (r *Inst) String() string {
	return fmt.Sprintf("kinst: %s, width: %d, freq: %d, %d nodes recorded, %d nodes hidden, %d nodes concretized",
		r.Kinst, r.Width, r.Freq, len(r.RecNodes), len(r.HiddenNodes), len(r.ConcretizedNodes))
}

// RecLabels returns the labels of rec_nodes, comma-joined in sorted-ID
// order for determinism.
func (r *Inst) RecLabels(g *graph.Graph) string {
	ids := make([]string, 0, len(r.RecNodes))
	for id := range r.RecNodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.Nodes[id]; ok {
			labels = append(labels, n.Label)
		}
	}
	return strings.Join(labels, ", ")
}

// Sequence is an accumulated list of Inst values chosen together: the union
// of their rec_nodes has been pre-applied as a baseline for anything
// downstream.
type Sequence []*Inst

// ConcretizedUnion returns the union of concretized_nodes across every Inst
// in the sequence.
func (s Sequence) ConcretizedUnion() map[string]bool {
	out := make(map[string]bool)
	for _, r := range s {
		for id := range r.ConcretizedNodes {
			out[id] = true
		}
	}
	return out
}
