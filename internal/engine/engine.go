// Package engine orchestrates graph loading, candidate enumeration, and
// scoring behind the small set of operations the CLI layer drives.
package engine

import (
	"fmt"
	"io"

	"github.com/alexanderritik/hase/internal/candidate"
	"github.com/alexanderritik/hase/internal/graph"
	"github.com/alexanderritik/hase/internal/scoring"
)

// Engine holds a loaded graph and exposes the analysis pipeline over it.
type Engine struct {
	Graph *graph.Graph
}

// Load reads and validates a graph record from r and returns an Engine
// ready for analysis.
func Load(r io.Reader) (*Engine, error) {
	g, err := graph.Load(r)
	if err != nil {
		return nil, err
	}
	return &Engine{Graph: g}, nil
}

// GraphStats renders the base CLI contract's topology line.
func (e *Engine) GraphStats() string {
	maxIDep, ok := e.Graph.MaxIDep()
	if !ok {
		return fmt.Sprintf("%d nodes, %d edges, max idep undefined", len(e.Graph.Nodes), len(e.Graph.Edges))
	}
	return fmt.Sprintf("%d nodes, %d edges, max idep %d", len(e.Graph.Nodes), len(e.Graph.Edges), maxIDep)
}

// Analyze enumerates every recordable candidate sequence relative to
// baseline.
func (e *Engine) Analyze(baseline candidate.Sequence) ([]candidate.Sequence, error) {
	return candidate.AnalyzeRecordable(e.Graph, baseline)
}

// RankByCoverage sorts seqs ascending by coverage score.
func (e *Engine) RankByCoverage(seqs []candidate.Sequence) []candidate.Sequence {
	return scoring.SortByCoverage(e.Graph, seqs)
}

// RankByCoverageFreq sorts seqs ascending by coverage/frequency score,
// degenerate entries last.
func (e *Engine) RankByCoverageFreq(seqs []candidate.Sequence) []candidate.Sequence {
	return scoring.SortByCoverageFreq(e.Graph, seqs)
}

// QueryNodes returns the IDs of every Category == "Q" node (none if the
// graph has no query nodes); these mark the constraint system's points of
// interest for the query-mode CLI path.
func (e *Engine) QueryNodes() []string {
	var ids []string
	for id, n := range e.Graph.Nodes {
		if n.Category == graph.CategoryQuery {
			ids = append(ids, id)
		}
	}
	return ids
}

// Covering filters seqs down to the ones that concretize nodeID.
func (e *Engine) Covering(seqs []candidate.Sequence, nodeID string) []candidate.Sequence {
	return scoring.FilterCover(seqs, nodeID)
}
