// Package mst provides the Minimum Spanning Tree computation engine of
// mstlab: Kruskal's and Prim's algorithms over one immutable graph
// snapshot, each instrumented with a comparable performance record.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is
//     a subset T ⊆ E that connects all vertices with minimum total weight.
//
//   - Why an engine?
//     Both algorithms run against the same snapshot and fill the same
//     Metrics shape (runtime, edge comparisons, iterations, peak
//     auxiliary-structure size), so a caller can benchmark them against
//     each other without normalizing anything.
//
// Algorithms provided
//
//   - (*Engine).Kruskal() ([]graph.Edge, int64, error)
//
//   - Strategy: stable-sort all edges ascending by weight, then sweep
//     them through a disjoint-set (union-find) with iterative path
//     compression and union by rank, accepting every edge that joins two
//     components. The sweep never exits early, so a disconnected input
//     yields the minimum spanning forest of each component with no error.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - (*Engine).Prim() ([]graph.Edge, int64, error)
//
//   - Strategy: grow one tree from dense index 0 with a lazy-deletion
//     min-heap. A best-candidate map records each unvisited node's
//     lightest known connecting weight; a push happens only when it
//     improves on that record, bounding duplicate entries. Stale entries
//     are discarded on pop. Result edges are (parent, child, weight)
//     triples in discovery order.
//
//   - Complexity: O((V + E) log V) time, O(V + E) space.
//
// Error handling (sentinel conditions, never fatal)
//
//   - ErrNilGraph:     NewEngine received a nil graph.
//   - ErrEmptyGraph:   the snapshot has zero nodes; both algorithms return
//     it immediately with an empty edge list and a measured runtime.
//   - ErrUnconnected:  Prim only — the start node's component is a strict
//     subset of the nodes; the partial forest is returned alongside.
//
// The asymmetry between the algorithms on disconnected input (Kruskal:
// silent forest; Prim: ErrUnconnected plus partial result) is part of the
// contract — callers comparing the two must branch on it explicitly.
//
// Metrics
//
//	One Metrics value per Engine, overwritten at the start of every call
//	and read through Engine.Metrics (a copy). EdgeComparisons uses the
//	E·⌊log2 E⌋ approximation for Kruskal's sort — an order-of-magnitude
//	report, not an exact comparator tally. PeakAuxNodes is what a space
//	benchmark should sample: union-find cells for Kruskal, the
//	best-candidate map's peak for Prim.
//
// Thread safety
//
//   - An Engine serializes nothing: exactly one computation may run on it
//     at a time, and the caller owns that serialization. The snapshot
//     itself is immutable, so distinct Engines over one graph are
//     independent.
//
// See also
//
//   - graph.New / graph.NewLabeled: snapshot sources with construction
//     validation.
//   - anim.KruskalTrace / anim.PrimTrace: replay a computation as
//     discrete visualization events.
//   - bench.Run: averaged runtime/space across graph orders.
package mst
