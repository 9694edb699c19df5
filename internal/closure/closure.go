// Package closure implements the concretization closure: extending a
// baseline set of already-concretized nodes by fixed point propagation
// through the graph.
package closure

import (
	"fmt"

	"github.com/alexanderritik/hase/internal/graph"
)

// Extend returns a new set containing baseline plus every node that becomes
// concretized by propagation: a node v joins the set iff it is non-constant,
// has at least one outgoing edge, and every outgoing edge leads to a
// constant or a node already in the (growing) set. The second return value
// lists the newly added node IDs, in the order they were added.
//
// A single sweep over g's topological order (dependencies first, dependants
// last) suffices because v cannot be added until all its dependencies have
// already been considered.
func Extend(g *graph.Graph, baseline map[string]bool) (map[string]bool, []string, error) {
	return extendRange(g, baseline, 0)
}

// ExtendAfter is the range-restricted variant used by the candidate
// enumerator's local closure: only nodes at or after fromIndex in g's
// topological order participate in the sweep (nodes before fromIndex are
// left exactly as given in baseline, whether or not they would otherwise
// qualify).
func ExtendAfter(g *graph.Graph, baseline map[string]bool, fromIndex int) (map[string]bool, []string, error) {
	return extendRange(g, baseline, fromIndex)
}

// ErrCorrupt is returned when a node's dependency accounting (constant
// dependencies plus dependencies already in the growing set) exceeds its
// own out-degree, which can only happen if the input graph's edge data is
// inconsistent with itself.
var ErrCorrupt = fmt.Errorf("corrupt graph: dependency count exceeds out-degree")

func extendRange(g *graph.Graph, baseline map[string]bool, fromIndex int) (map[string]bool, []string, error) {
	out := make(map[string]bool, len(baseline))
	for id := range baseline {
		out[id] = true
	}

	var added []string
	order := g.TopoOrder()
	for i := fromIndex; i < len(order); i++ {
		id := order[i]
		if out[id] {
			continue
		}
		n := g.Nodes[id]
		if n.IsConstant() {
			continue
		}
		edges := g.Out(id)
		if len(edges) == 0 {
			continue
		}

		constCount, inSetCount := 0, 0
		concretizable := true
		for _, e := range edges {
			target := g.Nodes[e.TargetID]
			switch {
			case target.IsConstant():
				constCount++
			case out[e.TargetID]:
				inSetCount++
			default:
				concretizable = false
			}
		}
		if constCount+inSetCount > len(edges) {
			return nil, nil, fmt.Errorf("%w: node %q", ErrCorrupt, id)
		}
		if concretizable {
			out[id] = true
			added = append(added, id)
		}
	}
	return out, added, nil
}
