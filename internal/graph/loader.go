package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load parses a Record from r, validates it, and returns a built Graph
// ready for analysis. Validation failures are hard errors naming the
// offending identifier; duplicate edges are accepted (the graph treats its
// edge collection as a set once built).
func Load(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read graph record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse graph record: %w", err)
	}

	return FromRecord(&rec)
}

// FromRecord builds a validated, derived-structure-complete Graph from a
// parsed Record.
func FromRecord(rec *Record) (*Graph, error) {
	g := NewGraph()

	for id, nr := range rec.Nodes {
		if nr.Kind != ConstantKind && nr.Width == 0 {
			return nil, fmt.Errorf("%w: node %q", ErrZeroWidth, id)
		}
		g.AddNode(&Node{
			ID:       id,
			Kind:     nr.Kind,
			KInst:    nr.KInst,
			Width:    nr.Width,
			Freq:     nr.Freq,
			Category: nr.Category,
			IDep:     nr.IDep,
			Label:    nr.Label,
		})
	}

	for _, er := range rec.Edges {
		if _, ok := g.Nodes[er.Source]; !ok {
			return nil, fmt.Errorf("%w: edge source %q", ErrUnknownNode, er.Source)
		}
		if _, ok := g.Nodes[er.Target]; !ok {
			return nil, fmt.Errorf("%w: edge target %q", ErrUnknownNode, er.Target)
		}
		if _, ok := er.Weight.IDepDelta(); !ok {
			return nil, fmt.Errorf("%w: edge %s->%s has weight %v", ErrInvalidWeight, er.Source, er.Target, er.Weight)
		}
		g.AddEdge(&Edge{SourceID: er.Source, TargetID: er.Target, Weight: er.Weight})
	}

	if err := g.Build(); err != nil {
		return nil, err
	}
	if g.HasCycle() {
		fmt.Fprintln(os.Stderr, "Warning: input graph contains a cycle; topo_order/idep are not meaningful on a non-DAG input")
	}
	return g, nil
}
