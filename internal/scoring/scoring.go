// Package scoring ranks candidate recording sequences by how much
// concretization coverage they buy, in absolute terms and per byte of
// trace overhead.
package scoring

import (
	"sort"

	"github.com/alexanderritik/hase/internal/candidate"
	"github.com/alexanderritik/hase/internal/graph"
)

// BytesPerInstruction is the fixed trace payload cost assumed for any
// recorded instruction, regardless of the logical width being pinned.
const BytesPerInstruction = 64

// CoverageScore sums width*idep over every node concretized by any
// RecordableInst in seq. Dimensionless; higher is better.
func CoverageScore(g *graph.Graph, seq candidate.Sequence) float64 {
	var cs float64
	for _, r := range seq {
		for id := range r.ConcretizedNodes {
			n := g.Nodes[id]
			cs += float64(n.Width) * float64(n.IDep)
		}
	}
	return cs
}

// CoverageFreqScore divides CoverageScore by the fixed per-instruction
// trace cost across every RecordableInst in seq. The second return value
// is false when every freq in seq is zero, in which case the score is
// undefined rather than a division by zero.
func CoverageFreqScore(g *graph.Graph, seq candidate.Sequence) (float64, bool) {
	var totalFreq int
	for _, r := range seq {
		totalFreq += r.Freq
	}
	if totalFreq == 0 {
		return 0, false
	}
	return CoverageScore(g, seq) / float64(totalFreq*BytesPerInstruction), true
}

// SortByCoverage returns seqs sorted stable-ascending by CoverageScore.
func SortByCoverage(g *graph.Graph, seqs []candidate.Sequence) []candidate.Sequence {
	out := append([]candidate.Sequence(nil), seqs...)
	sort.SliceStable(out, func(i, j int) bool {
		return CoverageScore(g, out[i]) < CoverageScore(g, out[j])
	})
	return out
}

// SortByCoverageFreq returns seqs sorted stable-ascending by
// CoverageFreqScore, with entries whose score is undefined sorted last
// (in their relative input order).
func SortByCoverageFreq(g *graph.Graph, seqs []candidate.Sequence) []candidate.Sequence {
	out := append([]candidate.Sequence(nil), seqs...)
	scores := make([]float64, len(out))
	defined := make([]bool, len(out))
	for i, seq := range out {
		scores[i], defined[i] = CoverageFreqScore(g, seq)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if defined[a] != defined[b] {
			return defined[a] // defined entries sort before undefined ones
		}
		if !defined[a] {
			return false // both undefined: preserve relative input order
		}
		return scores[a] < scores[b]
	})
	sorted := make([]candidate.Sequence, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// FilterCover retains every sequence in seqs with at least one
// RecordableInst whose concretized_nodes contains nodeID.
func FilterCover(seqs []candidate.Sequence, nodeID string) []candidate.Sequence {
	var out []candidate.Sequence
	for _, seq := range seqs {
		for _, r := range seq {
			if r.ConcretizedNodes[nodeID] {
				out = append(out, seq)
				break
			}
		}
	}
	return out
}
