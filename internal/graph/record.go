package graph

// Record is the portable, loader-facing shape of a graph: a plain node map
// and edge list, matching the JSON schema in the external interfaces
// section verbatim (field names are case-sensitive on the wire; this type
// is the in-memory form produced after JSON unmarshalling).
type Record struct {
	Nodes map[string]NodeRecord `json:"nodes"`
	Edges []EdgeRecord          `json:"edges"`
}

// NodeRecord is one entry of Record.Nodes.
type NodeRecord struct {
	Kind     int      `json:"Kind"`
	KInst    string   `json:"KInst"`
	Width    int      `json:"Width"`
	Freq     int      `json:"Freq"`
	Category Category `json:"Category"`
	IDep     int      `json:"IDep"`
	DbgInfo  string   `json:"DbgInfo"`
	Label    string   `json:"label"`
}

// EdgeRecord is one entry of Record.Edges.
type EdgeRecord struct {
	Source string     `json:"source"`
	Target string     `json:"target"`
	Weight EdgeWeight `json:"weight"`
}

// ToRecord serializes the graph back into its portable record form. Used
// for round-trip testing and as the backing type for any on-disk export.
// Nodes and edges come back set-equal to the loaded record in Kind, KInst,
// Width, Freq, Category and label, and in edge endpoints and weights. The
// loaded DbgInfo is not kept: DbgInfo is filled from the label. IDep holds
// the computed indirect depth, not the loaded value.
func (g *Graph) ToRecord() *Record {
	rec := &Record{
		Nodes: make(map[string]NodeRecord, len(g.Nodes)),
		Edges: make([]EdgeRecord, 0, len(g.Edges)),
	}
	for id, n := range g.Nodes {
		rec.Nodes[id] = NodeRecord{
			Kind:     n.Kind,
			KInst:    n.KInst,
			Width:    n.Width,
			Freq:     n.Freq,
			Category: n.Category,
			IDep:     n.IDep,
			DbgInfo:  n.Label,
			Label:    n.Label,
		}
	}
	for _, e := range g.Edges {
		rec.Edges = append(rec.Edges, EdgeRecord{
			Source: e.SourceID,
			Target: e.TargetID,
			Weight: e.Weight,
		})
	}
	return rec
}
