package candidate

import "errors"

var (
	// ErrZeroWidth mirrors graph.ErrZeroWidth at the candidate layer: a
	// RecordableInst can never be built around a zero-width node.
	ErrZeroWidth = errors.New("zero width on recordable instruction")

	// ErrInvariant signals a broken RecordableInst invariant (rec/hidden
	// not a subset of concretized, or rec/hidden overlapping).
	ErrInvariant = errors.New("recordable instruction invariant violated")

	// ErrCorruptGraph is returned by AnalyzeRecordable when a node's
	// dependency accounting during local closure cannot be reconciled
	// with its declared out-degree.
	ErrCorruptGraph = errors.New("corrupt graph: dependency count exceeds out-degree")
)
