package report

import (
	"errors"
	"fmt"

	"github.com/alexanderritik/hase/internal/candidate"
)

// Color is a node's annotation class for one recording sequence.
type Color string

const (
	ColorRed   Color = "red"   // rec_nodes: directly pinned
	ColorGreen Color = "green" // hidden_nodes: concretized as a side effect
	ColorWhite Color = "white" // concretized_nodes minus the above two
)

// ErrMultipleColors is returned when a node would be assigned more than
// one color within a single sequence.
var ErrMultipleColors = errors.New("node assigned more than one annotation color")

// Colors computes the red/green/white colour classification for every
// node touched by seq. A node appearing in more than one class (which
// would only happen for a malformed RecordableInst, since NewInst already
// enforces rec/hidden disjointness within one entry) is a hard error.
func Colors(seq candidate.Sequence) (map[string]Color, error) {
	out := make(map[string]Color)
	assign := func(id string, c Color) error {
		if existing, ok := out[id]; ok && existing != c {
			return fmt.Errorf("%w: node %q is both %s and %s", ErrMultipleColors, id, existing, c)
		}
		out[id] = c
		return nil
	}

	for _, r := range seq {
		for id := range r.RecNodes {
			if err := assign(id, ColorRed); err != nil {
				return nil, err
			}
		}
		for id := range r.HiddenNodes {
			if err := assign(id, ColorGreen); err != nil {
				return nil, err
			}
		}
		for id := range r.ConcretizedNodes {
			if _, already := out[id]; already {
				continue
			}
			if err := assign(id, ColorWhite); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
