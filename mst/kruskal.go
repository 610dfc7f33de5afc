// Package mst: Kruskal's Minimum Spanning Tree algorithm over the engine
// snapshot — stable edge sort plus a disjoint-set (union-find) with path
// compression and union by rank, instrumented with the shared Metrics record.
package mst

import (
	"math/bits"
	"sort"
	"time"

	"github.com/katalvlaran/mstlab/graph"
)

// Kruskal computes a minimum spanning tree (or forest) of the snapshot.
//
// Behavior:
//   - Metrics are reset at entry; runtime is measured around the whole
//     computation as monotonic elapsed time in milliseconds.
//   - Edges are sorted ascending by weight with a stable sort, so equal
//     weights keep their declaration order and runs are deterministic.
//     The comparison counter records the E·⌊log2 E⌋ sorting approximation
//     once, then one increment per processed edge.
//   - Every sorted edge is processed — there is no early exit at |V|-1
//     accepted edges. On a disconnected input this silently produces the
//     minimum spanning forest of each component, with a nil error; only a
//     zero-node snapshot is reported, as ErrEmptyGraph.
//
// Returns the accepted edges in ascending-weight processing order,
// translated back to external labels, together with their total weight.
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func (e *Engine) Kruskal() ([]graph.Edge, int64, error) {
	// 1. Fresh counters and a monotonic start mark.
	e.resetMetrics()
	start := time.Now()

	// 2. Zero nodes: record the (near-zero) elapsed time and report.
	if e.order == 0 {
		e.metrics.RuntimeMS = msSince(start)

		return []graph.Edge{}, 0, ErrEmptyGraph
	}

	// 3. Sort a copy of the edge list ascending by weight. SliceStable
	//    keeps declaration order for equal weights.
	edges := make([]denseEdge, len(e.edges))
	copy(edges, e.edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})
	// Record the sort's comparison count as the usual E·⌊log2 E⌋
	// approximation; this is a reported estimate, not an exact tally.
	if m := len(edges); m > 0 {
		e.metrics.EdgeComparisons += int64(m) * int64(bits.Len(uint(m))-1)
	}

	// 4. Union-find over dense indices: parent[i] = i, rank[i] = 0.
	parent := make([]int, e.order)
	rank := make([]int, e.order)
	for i := range parent {
		parent[i] = i
	}
	// The union-find arrays are Kruskal's dominant auxiliary structure.
	e.metrics.PeakAuxNodes = e.order

	// Iterative find with path compression: point each visited node at
	// its grandparent while walking to the root.
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}

	// Union by rank; x and y must already be roots.
	union := func(x, y int) {
		if rank[x] < rank[y] {
			x, y = y, x
		}
		parent[y] = x
		if rank[x] == rank[y] {
			rank[x]++
		}
	}

	// 5. Process every sorted edge; accept those joining two components.
	mst := make([]graph.Edge, 0, e.order-1)
	var total int64
	for _, ed := range edges {
		e.metrics.Iterations++
		x := find(ed.u)
		y := find(ed.v)
		// One comparison per edge for the cycle check, regardless of the
		// compression depth find traversed.
		e.metrics.EdgeComparisons++
		if x != y {
			union(x, y)
			mst = append(mst, graph.Edge{U: e.labels[ed.u], V: e.labels[ed.v], Weight: ed.weight})
			total += ed.weight
		}
	}

	// 6. Close the clock and return. Fewer than |V|-1 edges means the
	//    input was disconnected; the forest is returned without an error.
	e.metrics.RuntimeMS = msSince(start)

	return mst, total, nil
}

// msSince converts the monotonic elapsed time since start to fractional
// milliseconds.
func msSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
