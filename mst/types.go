// Package mst defines the engine type, metrics record and sentinel errors
// for MST computation. Both algorithms share one Engine and one Metrics
// shape so their runs can be compared 1:1.
package mst

import (
	"errors"
)

// Sentinel errors returned by the MST engine.
//
// All of them are conditions, not failures: the edge list returned next to
// a non-nil error is still meaningful (empty for ErrEmptyGraph, the
// partial forest actually discovered for ErrUnconnected). Callers are
// expected to branch with errors.Is and present a message, not abort.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to NewEngine.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyGraph indicates the snapshotted graph has zero nodes; both
	// algorithms return it immediately with an empty edge list.
	ErrEmptyGraph = errors.New("mst: graph is empty")

	// ErrUnconnected indicates Prim's start node cannot reach every node;
	// the edge list returned alongside is the partial forest it did reach.
	// Kruskal never returns this: a disconnected input silently yields the
	// minimum spanning forest of each component.
	ErrUnconnected = errors.New("mst: graph is unconnected, partial tree returned")
)

// Metrics is the performance record of a single algorithm invocation.
//
// It is owned by exactly one Engine and overwritten (never merged) at the
// start of every Kruskal or Prim call, so two consecutive runs always
// report independent numbers. Read it through Engine.Metrics, which
// returns a copy.
type Metrics struct {
	// RuntimeMS is the monotonic wall-clock time of the whole computation,
	// in milliseconds.
	RuntimeMS float64

	// EdgeComparisons counts edge-weight comparisons. For Kruskal the sort
	// contributes an E·⌊log2 E⌋ approximation (reported, not measured) plus
	// one per processed edge; for Prim it is one per heap pop plus one per
	// successful relaxation push.
	EdgeComparisons int64

	// Iterations counts main-loop passes: sorted edges processed for
	// Kruskal, heap pops (stale entries included) for Prim.
	Iterations int64

	// PeakAuxNodes is the peak cell count of the algorithm's dominant
	// auxiliary structure: the union-find arrays for Kruskal (always the
	// node count), the best-candidate map for Prim (NOT the raw queue
	// length, which may hold arbitrarily many stale duplicates). Space
	// benchmarks should derive their estimates from this value.
	PeakAuxNodes int
}
