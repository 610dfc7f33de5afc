// Package anim defines the event vocabulary and sentinel errors for the
// MST trace generator.
package anim

import (
	"errors"

	"github.com/katalvlaran/mstlab/graph"
)

// ErrNilEngine indicates a nil *mst.Engine was passed to a trace constructor.
var ErrNilEngine = errors.New("anim: engine is nil")

// Kind tags the role of a single trace event.
type Kind int

const (
	// KindVertex marks the first discovery of a node; Event.Node holds its label.
	KindVertex Kind = iota
	// KindEdge marks the selection of an edge; Event.U and Event.V hold its endpoints.
	KindEdge
	// KindFinal closes the trace; Event.Edges, Event.Total and Event.Err
	// carry the authoritative result of the underlying computation.
	KindFinal
)

// String returns the lowercase tag of the event kind.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	case KindFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Event is one discrete, replayable record of an algorithmic decision.
// Only the fields relevant to Kind are populated; all labels are the
// caller's external node labels.
type Event struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind

	// Node is the discovered node's label (KindVertex).
	Node int64

	// U and V are the selected edge's endpoints (KindEdge). For a Prim
	// trace U is the parent and V the child, mirroring the result triples.
	U, V int64

	// Edges is the complete result sequence exactly as the algorithm
	// returned it (KindFinal); empty when Err is non-nil.
	Edges []graph.Edge

	// Total is the summed weight of Edges (KindFinal).
	Total int64

	// Err is the computation's condition, if any (KindFinal):
	// mst.ErrEmptyGraph, mst.ErrUnconnected, or nil.
	Err error
}
