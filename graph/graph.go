// Package graph provides an immutable, weighted, undirected graph model
// built once from a declared node set and an ordered edge collection.
// It supports:
//
//   - Dense 0..N-1 node indices (New) or arbitrary int64 labels (NewLabeled)
//   - Construction-time validation of endpoints and weights
//   - A bidirectional adjacency list built once, in O(V+E)
//
// Duplicate (parallel) edges are permitted and preserved in declaration
// order; self-loops are not expected by the MST engine but are not
// rejected here.
package graph

import (
	"fmt"
)

// Graph is an immutable weighted undirected graph over N declared nodes.
//
// Node identities live in two layers: every node has a dense 0-based
// index used by all internal structures, and an external int64 label used
// at the API boundary. For graphs built with New the two coincide.
// Once constructed, a Graph never changes; it is safe for concurrent reads.
type Graph struct {
	labels []int64       // dense index → external label, in declaration order
	index  map[int64]int // external label → dense index
	edges  []Edge        // declared edges, external labels, declaration order
	adj    [][]Arc       // dense adjacency, both directions per edge
}

// New constructs a Graph over n nodes labeled 0..n-1 from the given edge
// collection. Edge endpoints must lie in [0, n) and weights must be
// positive; violations fail with ErrInvalidEdge or ErrBadWeight wrapped
// with the offending edge.
// Complexity: O(V + E) time and memory.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, n)
	}
	// Dense labels are just the identity sequence 0..n-1.
	labels := make([]int64, n)
	for i := 0; i < n; i++ {
		labels[i] = int64(i)
	}

	return build(labels, edges)
}

// NewLabeled constructs a Graph over the given node labels, in the given
// order (the order fixes each label's dense index). Labels may be any
// int64 values but must be unique. Edge endpoints must reference declared
// labels and weights must be positive.
// Complexity: O(V + E) time and memory.
func NewLabeled(nodes []int64, edges []Edge) (*Graph, error) {
	// Copy the label slice to keep the Graph independent of caller data.
	labels := make([]int64, len(nodes))
	copy(labels, nodes)

	return build(labels, edges)
}

// build validates edges against the label set and assembles all internal
// structures exactly once. Shared by New and NewLabeled.
func build(labels []int64, edges []Edge) (*Graph, error) {
	// 1. Build the label → dense index map, rejecting duplicates.
	index := make(map[int64]int, len(labels))
	for i, label := range labels {
		if _, seen := index[label]; seen {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, label)
		}
		index[label] = i
	}

	// 2. Validate every edge and copy it in declaration order.
	//    Parallel edges are kept as declared, never deduplicated here.
	es := make([]Edge, 0, len(edges))
	adj := make([][]Arc, len(labels))
	for _, e := range edges {
		iu, ok := index[e.U]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d–%d references %d", ErrInvalidEdge, e.U, e.V, e.U)
		}
		iv, ok := index[e.V]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d–%d references %d", ErrInvalidEdge, e.U, e.V, e.V)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: edge %d–%d has weight %d", ErrBadWeight, e.U, e.V, e.Weight)
		}
		es = append(es, e)

		// 3. Record both directions so every node sees all incident edges.
		adj[iu] = append(adj[iu], Arc{To: iv, Weight: e.Weight})
		adj[iv] = append(adj[iv], Arc{To: iu, Weight: e.Weight})
	}

	return &Graph{labels: labels, index: index, edges: es, adj: adj}, nil
}

// Order returns the number of declared nodes.
// Complexity: O(1).
func (g *Graph) Order() int {
	return len(g.labels)
}

// Size returns the number of declared edges (parallel edges counted).
// Complexity: O(1).
func (g *Graph) Size() int {
	return len(g.edges)
}

// Labels returns a copy of the external node labels in dense-index order.
// Complexity: O(V).
func (g *Graph) Labels() []int64 {
	out := make([]int64, len(g.labels))
	copy(out, g.labels)

	return out
}

// Index returns the dense index of the given external label,
// or ErrNodeNotFound if the label was never declared.
// Complexity: O(1).
func (g *Graph) Index(label int64) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: label %d", ErrNodeNotFound, label)
	}

	return i, nil
}

// Edges returns a copy of the declared edge collection, in declaration
// order, with external labels.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of the adjacency entries of the node at dense
// index i, in edge declaration order (each incident edge appears once).
// Complexity: O(deg(i)).
func (g *Graph) Neighbors(i int) ([]Arc, error) {
	if i < 0 || i >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	out := make([]Arc, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// Degree returns the number of incident edges of the node at dense index i
// (parallel edges counted separately, self-loops counted twice by their
// two adjacency entries).
// Complexity: O(1).
func (g *Graph) Degree(i int) (int, error) {
	if i < 0 || i >= len(g.adj) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}

	return len(g.adj[i]), nil
}
