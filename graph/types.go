// Package graph defines core types, sentinel errors and accessors
// for the graph subpackage of github.com/katalvlaran/mstlab.
package graph

import (
	"errors"
)

// Sentinel errors for graph construction.
var (
	// ErrBadOrder indicates a negative declared node count.
	ErrBadOrder = errors.New("graph: node count must be non-negative")
	// ErrDuplicateNode indicates the same label was declared twice.
	ErrDuplicateNode = errors.New("graph: duplicate node label")
	// ErrInvalidEdge indicates an edge endpoint outside the declared node set.
	ErrInvalidEdge = errors.New("graph: edge endpoint not among declared nodes")
	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be positive")
	// ErrNodeNotFound indicates a lookup for an undeclared node index.
	ErrNodeNotFound = errors.New("graph: node index out of range")
)

// Edge is a single undirected connection between two nodes.
//
// U and V are node labels in the caller's own labeling (dense 0..N-1
// indices when the graph was built with New). Weight must be positive.
type Edge struct {
	// U is one endpoint's label.
	U int64

	// V is the other endpoint's label.
	V int64

	// Weight is the positive cost of traversing this edge.
	Weight int64
}

// Arc is one adjacency entry: the dense index of a neighbor together with
// the weight of the connecting edge. Arcs are the internal, remapped view
// of Edges; two Arcs (one per direction) exist for every declared Edge.
type Arc struct {
	// To is the dense 0-based index of the neighboring node.
	To int

	// Weight is the weight of the connecting edge.
	Weight int64
}
