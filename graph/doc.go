// Package graph provides the immutable graph model consumed by the
// mstlab engine: a weighted, undirected graph declared up front as a node
// set plus an ordered edge collection, with all validation performed at
// construction time.
//
// Node identity:
//
//   - Internally every node has a dense 0-based index; all adjacency
//     structures are keyed by it.
//   - Externally a node is an int64 label. New(n, edges) makes labels and
//     indices coincide (0..n-1); NewLabeled(nodes, edges) accepts any
//     unique int64 labels, with slice order fixing each label's index.
//
// Construction guarantees (fail fast, sentinel errors):
//
//   - ErrBadOrder       – negative node count.
//   - ErrDuplicateNode  – a label declared twice (NewLabeled).
//   - ErrInvalidEdge    – an endpoint outside the declared node set.
//   - ErrBadWeight      – a non-positive weight.
//
// Once built, a Graph is immutable: accessors return copies, never views
// into internal state, so a Graph may be shared freely across goroutines
// for reading.
//
// Semantics kept deliberately loose for the engine's benefit:
//
//   - Duplicate (parallel) edges are permitted and preserved in
//     declaration order — they are not deduplicated here; the MST
//     algorithms naturally skip the heavier copies.
//   - Self-loops are not rejected; spanning-tree algorithms never select
//     them because both endpoints share a component.
//
// Complexity: construction is O(V + E) time and memory; all accessors are
// O(1) or O(result).
package graph
