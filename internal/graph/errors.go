package graph

import "errors"

var (
	// ErrUnknownNode is returned when an edge references a node ID that
	// was never declared in the node set.
	ErrUnknownNode = errors.New("unknown node reference")
	// ErrInvalidWeight is returned when an edge's weight is neither 1.0
	// nor 1.5.
	ErrInvalidWeight = errors.New("invalid edge weight")
	// ErrZeroWidth is returned when a non-constant node has width 0.
	ErrZeroWidth = errors.New("zero width on symbolic node")
)
