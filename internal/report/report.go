// Package report renders a scored candidate sequence into the structured
// summary a CLI or external tool consumes, and exposes the per-node
// colour classification an external visualizer uses to highlight a
// sequence on the graph.
package report

import (
	"errors"
	"fmt"

	"github.com/alexanderritik/hase/internal/candidate"
	"github.com/alexanderritik/hase/internal/graph"
	"github.com/alexanderritik/hase/internal/scoring"
)

// ErrOverlappingConcretizedNodes is returned when two entries of the same
// sequence claim the same concretized node; this indicates the sequence
// was not built by a single, consistent analyze_recordable run.
var ErrOverlappingConcretizedNodes = errors.New("concretized_nodes overlap across sequence entries")

// Entry is the rendered form of one RecordableInst within a scored
// sequence. Its CoverageScore/CoverageFreqScore are this single entry's own
// contribution, not CS(R)/CSF(R) for the sequence as a whole — see
// Report.CoverageScore/Report.CoverageFreqScore for the latter.
type Entry struct {
	Kinst               string
	Width               int
	Freq                int
	RecCount            int
	HiddenCount         int
	ConcretizedCount    int
	RecLabels           string
	CoverageScore       float64
	CoverageFreqScore   float64
	CoverageFreqDefined bool
}

// Report is the full rendering of a scored sequence. CoverageScore and
// CoverageFreqScore are CS(R)/CSF(R) per spec.md §4.5/§4.6, computed once
// over the whole sequence — CSF is not additive across entries (unlike CS),
// so it cannot be recovered by summing Entry.CoverageFreqScore values.
type Report struct {
	Entries              []Entry
	TotalConcretized     int
	TotalNodes           int
	CoveragePercent      float64
	CoverageScore        float64
	CoverageFreqScore    float64
	CoverageFreqDefined  bool
	ResidualMaxIDep      int
	ResidualMaxIDepKnown bool
}

// Build renders seq against g, after checking that the sequence's
// concretized_nodes are pairwise disjoint across entries.
func Build(g *graph.Graph, seq candidate.Sequence) (*Report, error) {
	if err := checkDisjoint(seq); err != nil {
		return nil, err
	}

	rep := &Report{
		Entries:    make([]Entry, 0, len(seq)),
		TotalNodes: len(g.Nodes),
	}

	union := seq.ConcretizedUnion()
	rep.TotalConcretized = len(union)
	if rep.TotalNodes > 0 {
		rep.CoveragePercent = 100 * float64(rep.TotalConcretized) / float64(rep.TotalNodes)
	}
	rep.CoverageScore = scoring.CoverageScore(g, seq)
	rep.CoverageFreqScore, rep.CoverageFreqDefined = scoring.CoverageFreqScore(g, seq)

	for _, r := range seq {
		csf, ok := scoring.CoverageFreqScore(g, candidate.Sequence{r})
		rep.Entries = append(rep.Entries, Entry{
			Kinst:               r.Kinst,
			Width:               r.Width,
			Freq:                r.Freq,
			RecCount:            len(r.RecNodes),
			HiddenCount:         len(r.HiddenNodes),
			ConcretizedCount:    len(r.ConcretizedNodes),
			RecLabels:           r.RecLabels(g),
			CoverageScore:       scoring.CoverageScore(g, candidate.Sequence{r}),
			CoverageFreqScore:   csf,
			CoverageFreqDefined: ok,
		})
	}

	residual, err := Residual(g, union)
	if err != nil {
		return nil, fmt.Errorf("build residual subgraph: %w", err)
	}
	rep.ResidualMaxIDep, rep.ResidualMaxIDepKnown = residual.MaxIDep()

	return rep, nil
}

// Residual constructs the subgraph of g obtained by deleting every node in
// removed and every edge incident to one, then rebuilds its derived
// structures (including a fresh idep_map local to the residual).
func Residual(g *graph.Graph, removed map[string]bool) (*graph.Graph, error) {
	out := graph.NewGraph()
	for id, n := range g.Nodes {
		if removed[id] {
			continue
		}
		cp := *n
		out.AddNode(&cp)
	}
	for _, e := range g.Edges {
		if removed[e.SourceID] || removed[e.TargetID] {
			continue
		}
		cp := *e
		out.AddEdge(&cp)
	}
	if err := out.Build(); err != nil {
		return nil, err
	}
	return out, nil
}

func checkDisjoint(seq candidate.Sequence) error {
	seen := make(map[string]bool)
	for _, r := range seq {
		for id := range r.ConcretizedNodes {
			if seen[id] {
				return fmt.Errorf("%w: node %q", ErrOverlappingConcretizedNodes, id)
			}
			seen[id] = true
		}
	}
	return nil
}

// String renders a one-entry-per-line, tab-separated summary that callers
// (cmd/analyze.go, cmd/root.go) write to stdout.
func (e Entry) String() string {
	var csf string
	if e.CoverageFreqDefined {
		csf = fmt.Sprintf("%.4f", e.CoverageFreqScore)
	} else {
		csf = "undefined"
	}
	return fmt.Sprintf("%s\twidth=%d\tfreq=%d\trec=%d\thidden=%d\tconcretized=%d\tCS=%.1f\tCSF=%s\trec_nodes=[%s]",
		e.Kinst, e.Width, e.Freq, e.RecCount, e.HiddenCount, e.ConcretizedCount, e.CoverageScore, csf, e.RecLabels)
}
