package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderritik/hase/internal/candidate"
)

// Sink is the annotation output a caller pushes a scored sequence's
// colour classification to. An implementation either drives a Visualizer
// live or serializes the classification for an external tool to consume
// later.
type Sink interface {
	Annotate(seq candidate.Sequence) error
}

// NewSink dispatches on kind, the way the teacher's NewAdapter dispatches
// on a connection string's scheme.
func NewSink(kind string, w io.Writer, viz Visualizer) (Sink, error) {
	switch {
	case kind == "json":
		return &jsonSink{w: w}, nil
	case kind == "visualizer":
		if viz == nil {
			return nil, fmt.Errorf("annotation sink %q requires a Visualizer", kind)
		}
		return &visualizerSink{viz: viz}, nil
	case strings.TrimSpace(kind) == "":
		return &jsonSink{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported annotation sink kind: %q", kind)
	}
}

// jsonSink writes the §4.7 colour-class contract as JSON, the on-disk
// format an external visualizer loads asynchronously.
type jsonSink struct {
	w io.Writer
}

type colorDoc struct {
	Red   []string `json:"red"`
	Green []string `json:"green"`
	White []string `json:"white"`
}

func (s *jsonSink) Annotate(seq candidate.Sequence) error {
	colors, err := Colors(seq)
	if err != nil {
		return err
	}
	doc := colorDoc{}
	for id, c := range colors {
		switch c {
		case ColorRed:
			doc.Red = append(doc.Red, id)
		case ColorGreen:
			doc.Green = append(doc.Green, id)
		case ColorWhite:
			doc.White = append(doc.White, id)
		}
	}
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// visualizerSink drives a live Visualizer directly, one SetNodeColor call
// per classified node.
type visualizerSink struct {
	viz Visualizer
}

func (s *visualizerSink) Annotate(seq candidate.Sequence) error {
	colors, err := Colors(seq)
	if err != nil {
		return err
	}
	for id, c := range colors {
		if err := s.viz.SetNodeColor(id, c); err != nil {
			return fmt.Errorf("set node color for %q: %w", id, err)
		}
	}
	return nil
}
