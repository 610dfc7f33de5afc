// Package mst implements the MST computation engine: a fixed graph
// snapshot exposing Kruskal's and Prim's algorithms, each instrumented
// with comparable performance counters.
package mst

import (
	"github.com/katalvlaran/mstlab/graph"
)

// denseEdge is an edge remapped onto dense 0-based node indices.
type denseEdge struct {
	u, v   int   // dense endpoint indices
	weight int64 // positive edge weight
}

// arc is one dense adjacency entry: neighbor index plus connecting weight.
type arc struct {
	to     int
	weight int64
}

// Engine holds an immutable snapshot of one graph and computes Minimum
// Spanning Trees over it.
//
// At construction it snapshots the node count, builds a 0-based remap
// from the graph's external labels to dense indices (keeping the labels
// for result translation), and materializes its own edge list and
// bidirectional adjacency list once. The only mutable state is the
// Metrics record, overwritten at the start of every algorithm call;
// concurrent calls on one Engine are therefore unsafe by design and must
// be serialized by the caller. Cancellation mid-algorithm is not
// supported: to abort, discard the Engine.
type Engine struct {
	order   int         // number of nodes in the snapshot
	labels  []int64     // dense index → external label
	edges   []denseEdge // declared edges remapped to dense indices
	adj     [][]arc     // dense bidirectional adjacency
	metrics Metrics     // per-call counters, reset on every invocation
}

// NewEngine snapshots g and prepares all index structures for repeated
// MST computations. Returns ErrNilGraph if g is nil. The graph is assumed
// already validated (endpoints declared, weights positive) — that is the
// graph package's construction contract.
// Complexity: O(V + E) time and memory.
func NewEngine(g *graph.Graph) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1. Snapshot order and external labels.
	labels := g.Labels()
	order := len(labels)

	// 2. Build the label → dense index remap from declaration order.
	index := make(map[int64]int, order)
	for i, label := range labels {
		index[label] = i
	}

	// 3. Remap the declared edge collection onto dense indices, keeping
	//    declaration order (it is the tie-breaking order for Kruskal's
	//    stable sort).
	declared := g.Edges()
	edges := make([]denseEdge, len(declared))
	for i, e := range declared {
		edges[i] = denseEdge{u: index[e.U], v: index[e.V], weight: e.Weight}
	}

	// 4. Build the engine's own bidirectional adjacency in one O(E) pass.
	adj := make([][]arc, order)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], arc{to: e.v, weight: e.weight})
		adj[e.v] = append(adj[e.v], arc{to: e.u, weight: e.weight})
	}

	return &Engine{order: order, labels: labels, edges: edges, adj: adj}, nil
}

// Order returns the number of nodes in the snapshot.
// Complexity: O(1).
func (e *Engine) Order() int {
	return e.order
}

// Labels returns a copy of the snapshot's external node labels in dense
// index order. Prim's algorithm always starts at dense index 0, i.e. the
// first label of this slice.
// Complexity: O(V).
func (e *Engine) Labels() []int64 {
	out := make([]int64, len(e.labels))
	copy(out, e.labels)

	return out
}

// Metrics returns a copy of the counters recorded by the most recent
// Kruskal or Prim call (zero values if none has run yet).
// Complexity: O(1).
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// resetMetrics clears the record before each run so every invocation
// reports only its own work.
func (e *Engine) resetMetrics() {
	e.metrics = Metrics{}
}
