package engine

import (
	"strings"
	"testing"
)

const sampleGraph = `{
  "nodes": {
    "leaf": {"Kind": 1, "Width": 4},
    "y": {"Kind": 1, "KInst": "Ky", "Width": 32, "Freq": 2, "label": "y"},
    "x": {"Kind": 1, "KInst": "Kx", "Width": 32, "Freq": 2, "label": "x"},
    "q": {"Kind": 1, "KInst": "Kq", "Width": 8, "Freq": 1, "Category": "Q", "label": "q"}
  },
  "edges": [
    {"source": "y", "target": "leaf", "weight": 1.0},
    {"source": "x", "target": "y", "weight": 1.5},
    {"source": "q", "target": "x", "weight": 1.0}
  ]
}`

func mustLoad(t *testing.T) *Engine {
	t.Helper()
	e, err := Load(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return e
}

func TestGraphStats(t *testing.T) {
	e := mustLoad(t)
	stats := e.GraphStats()
	if !strings.Contains(stats, "4 nodes") || !strings.Contains(stats, "3 edges") {
		t.Errorf("GraphStats() = %q, want mentions of 4 nodes and 3 edges", stats)
	}
}

func TestQueryNodes(t *testing.T) {
	e := mustLoad(t)
	ids := e.QueryNodes()
	if len(ids) != 1 || ids[0] != "q" {
		t.Errorf("QueryNodes() = %v, want [q]", ids)
	}
}

func TestAnalyzeAndCovering(t *testing.T) {
	e := mustLoad(t)
	seqs, err := e.Analyze(nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(seqs) == 0 {
		t.Fatal("expected at least one candidate")
	}

	covering := e.Covering(seqs, "q")
	if len(covering) == 0 {
		t.Error("expected at least one sequence covering q (requires both x and y concretized)")
	}
}

func TestRankByCoverage_Ascending(t *testing.T) {
	e := mustLoad(t)
	seqs, err := e.Analyze(nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	ranked := e.RankByCoverage(seqs)
	if len(ranked) != len(seqs) {
		t.Fatalf("RankByCoverage dropped entries: got %d, want %d", len(ranked), len(seqs))
	}
}
