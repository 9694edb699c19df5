package candidate

import (
	"testing"

	"github.com/alexanderritik/hase/internal/graph"
)

func mustGraph(t *testing.T, rec *graph.Record) *graph.Graph {
	t.Helper()
	g, err := graph.FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	return g
}

func findByKinst(t *testing.T, seqs []Sequence, kinst string) *Inst {
	t.Helper()
	for _, seq := range seqs {
		last := seq[len(seq)-1]
		if last.Kinst == kinst {
			return last
		}
	}
	t.Fatalf("no candidate found for kinst %q among %d sequences", kinst, len(seqs))
	return nil
}

// TestAnalyzeRecordable_SinglePin exercises the simplest useful shape: a
// recordable node whose dependency is a genuine external input (no outgoing
// edges of its own, so the closure engine can never reach it on its own).
// Recording the node's kinst is the only way to concretize it.
func TestAnalyzeRecordable_SinglePin(t *testing.T) {
	rec := &graph.Record{
		Nodes: map[string]graph.NodeRecord{
			"leaf": {Kind: 1, Width: 4},
			"a":    {Kind: 1, KInst: "K1", Width: 8, Freq: 1},
		},
		Edges: []graph.EdgeRecord{
			{Source: "a", Target: "leaf", Weight: graph.WeightSameLevel},
		},
	}
	g := mustGraph(t, rec)

	out, err := AnalyzeRecordable(g, nil)
	if err != nil {
		t.Fatalf("AnalyzeRecordable: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d candidates, want 1", len(out))
	}

	c := findByKinst(t, out, "K1")
	if !(len(c.RecNodes) == 1 && c.RecNodes["a"]) {
		t.Errorf("rec_nodes = %v, want {a}", c.RecNodes)
	}
	if len(c.HiddenNodes) != 0 {
		t.Errorf("hidden_nodes = %v, want empty", c.HiddenNodes)
	}
	if !(len(c.ConcretizedNodes) == 1 && c.ConcretizedNodes["a"]) {
		t.Errorf("concretized_nodes = %v, want {a}", c.ConcretizedNodes)
	}
}

// TestAnalyzeRecordable_HiddenNodeSubsumption mirrors an index-crossing
// dependency chain (x depends on y, which depends on a genuine leaf input):
// recording y's kinst also concretizes x as a side effect, so x is reported
// as hidden rather than as its own candidate — recording x separately would
// be redundant, per the subsumption rule.
func TestAnalyzeRecordable_HiddenNodeSubsumption(t *testing.T) {
	rec := &graph.Record{
		Nodes: map[string]graph.NodeRecord{
			"leaf": {Kind: 1, Width: 4},
			"y":    {Kind: 1, KInst: "Ky", Width: 32, Freq: 2},
			"x":    {Kind: 1, KInst: "Kx", Width: 32, Freq: 2},
		},
		Edges: []graph.EdgeRecord{
			{Source: "y", Target: "leaf", Weight: graph.WeightSameLevel},
			{Source: "x", Target: "y", Weight: graph.WeightIndexCrossing},
		},
	}
	g := mustGraph(t, rec)

	out, err := AnalyzeRecordable(g, nil)
	if err != nil {
		t.Fatalf("AnalyzeRecordable: %v", err)
	}
	// Kx is subsumed by Ky and must not appear as its own candidate.
	if len(out) != 1 {
		t.Fatalf("got %d candidates, want 1 (Kx should be subsumed)", len(out))
	}

	c := findByKinst(t, out, "Ky")
	if !(len(c.RecNodes) == 1 && c.RecNodes["y"]) {
		t.Errorf("rec_nodes = %v, want {y}", c.RecNodes)
	}
	if !(len(c.HiddenNodes) == 1 && c.HiddenNodes["x"]) {
		t.Errorf("hidden_nodes = %v, want {x}", c.HiddenNodes)
	}
	if !(len(c.ConcretizedNodes) == 2 && c.ConcretizedNodes["x"] && c.ConcretizedNodes["y"]) {
		t.Errorf("concretized_nodes = %v, want {x,y}", c.ConcretizedNodes)
	}
}

// TestAnalyzeRecordable_PreconcretizedChainWarns exercises the "dangling
// constant nodes" diagnostic: a kinst whose entire dependency chain bottoms
// out in a constant is concretized by the baseline closure alone, before
// any candidate is even considered. The (empty) baseline entries never
// concretized it, so the K1 candidate still reports it: concretized_nodes
// is {a}.
func TestAnalyzeRecordable_PreconcretizedChainWarns(t *testing.T) {
	rec := &graph.Record{
		Nodes: map[string]graph.NodeRecord{
			"c": {Kind: 0, Width: 8},
			"a": {Kind: 1, KInst: "K1", Width: 8, Freq: 1},
		},
		Edges: []graph.EdgeRecord{
			{Source: "a", Target: "c", Weight: graph.WeightSameLevel},
		},
	}
	g := mustGraph(t, rec)

	out, err := AnalyzeRecordable(g, nil)
	if err != nil {
		t.Fatalf("AnalyzeRecordable: %v", err)
	}
	c := findByKinst(t, out, "K1")
	if !(len(c.ConcretizedNodes) == 1 && c.ConcretizedNodes["a"]) {
		t.Errorf("concretized_nodes = %v, want {a}: no baseline entry concretized a", c.ConcretizedNodes)
	}
}

func TestAnalyzeRecordable_EmptyGraph(t *testing.T) {
	g := mustGraph(t, &graph.Record{Nodes: map[string]graph.NodeRecord{}})
	out, err := AnalyzeRecordable(g, nil)
	if err != nil {
		t.Fatalf("AnalyzeRecordable: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d candidates, want 0", len(out))
	}
}

func TestAnalyzeRecordable_NoValidKinst(t *testing.T) {
	rec := &graph.Record{
		Nodes: map[string]graph.NodeRecord{
			"a": {Kind: 1, Width: 8},
			"c": {Kind: 0, Width: 8},
		},
		Edges: []graph.EdgeRecord{{Source: "a", Target: "c", Weight: graph.WeightSameLevel}},
	}
	g := mustGraph(t, rec)
	out, err := AnalyzeRecordable(g, nil)
	if err != nil {
		t.Fatalf("AnalyzeRecordable: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d candidates, want 0", len(out))
	}
}
