package candidate

import (
	"fmt"
	"os"

	"github.com/alexanderritik/hase/internal/closure"
	"github.com/alexanderritik/hase/internal/graph"
)

// AnalyzeRecordable enumerates, for every kinst not already pinned or
// subsumed by baseline, the RecordableInst that recording it would produce.
// The result has one entry per eligible kinst, each entry being baseline
// plus exactly one new candidate; candidates are alternatives, not a chain,
// so baseline's own concretized set is never mutated between entries.
func AnalyzeRecordable(g *graph.Graph, baseline Sequence) ([]Sequence, error) {
	concretized := make(map[string]bool)
	checkedKinst := make(map[string]bool)
	wantConcretized := make(map[string]bool)
	for _, r := range baseline {
		for id := range r.RecNodes {
			concretized[id] = true
			checkedKinst[id] = true
		}
		for id := range r.HiddenNodes {
			checkedKinst[id] = true
		}
		for id := range r.ConcretizedNodes {
			wantConcretized[id] = true
		}
	}

	closed, _, err := closure.Extend(g, concretized)
	if err != nil {
		return nil, fmt.Errorf("baseline closure: %w", err)
	}
	if !setsEqual(closed, wantConcretized) {
		fmt.Fprintln(os.Stderr, "Warning: input graph is not simplified, dangling constant nodes detected")
	}
	concretized = closed

	var out []Sequence
	for _, n := range g.TopoOrder() {
		node := g.Nodes[n]
		if !node.HasValidKInst() || checkedKinst[n] {
			continue
		}

		members := g.KInstNodes(node.KInst)
		rec := make(map[string]bool, len(members))
		for id := range members {
			rec[id] = true
			checkedKinst[id] = true
		}

		local := make(map[string]bool, len(concretized)+len(rec))
		for id := range concretized {
			local[id] = true
		}
		for id := range rec {
			local[id] = true
		}

		idx, _ := g.TopoIndex(n)
		closedLocal, added, err := closure.ExtendAfter(g, local, idx+1)
		if err != nil {
			return nil, fmt.Errorf("%w: local closure for kinst %q: %v", ErrCorruptGraph, node.KInst, err)
		}

		hidden := make(map[string]bool)
		for _, id := range added {
			if !isHidden(g, closedLocal, id) {
				continue
			}
			hidden[id] = true
			checkedKinst[id] = true
		}

		// concretized_nodes is taken relative to the baseline entries' own
		// concretized sets, so nodes that the baseline closure reached only
		// through dangling constants are still credited to this candidate.
		candidateConcretized := make(map[string]bool)
		for id := range closedLocal {
			if !wantConcretized[id] {
				candidateConcretized[id] = true
			}
		}

		inst, err := NewInst(node.KInst, node.Width, node.Freq, rec, hidden, candidateConcretized)
		if err != nil {
			return nil, err
		}

		seq := make(Sequence, 0, len(baseline)+1)
		seq = append(seq, baseline...)
		seq = append(seq, inst)
		out = append(out, seq)
	}
	return out, nil
}

// isHidden reports whether a node newly added during local closure counts
// as hidden: non-constant (guaranteed by the closure engine already), with
// a valid kinst of its own and at least one non-constant dependency that
// was already in the closed set.
func isHidden(g *graph.Graph, closed map[string]bool, id string) bool {
	n := g.Nodes[id]
	if !n.HasValidKInst() {
		return false
	}
	for _, e := range g.Out(id) {
		target := g.Nodes[e.TargetID]
		if !target.IsConstant() && closed[e.TargetID] {
			return true
		}
	}
	return false
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
