// Package mst: Prim's Minimum Spanning Tree algorithm over the engine
// snapshot — a lazy-deletion min-heap grown from dense index 0, with a
// best-candidate map bounding duplicate queue entries, instrumented with
// the shared Metrics record.
package mst

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/mstlab/graph"
)

// Prim computes a minimum spanning tree of the snapshot, growing from the
// node at dense index 0 (the first declared label).
//
// Behavior:
//   - Metrics are reset at entry; runtime is measured the same way as
//     Kruskal's.
//   - The queue is seeded with a sentinel entry (weight 0, node 0, no
//     parent). A candidate edge to a node v is pushed only when v has no
//     recorded candidate yet or the new weight is strictly smaller; the
//     recorded candidate is overwritten, not deleted, so superseded queue
//     entries go stale and are discarded lazily on pop.
//   - Counters: one iteration and one comparison per pop (stale pops
//     included, nothing further for a discarded entry); one comparison
//     per successful relaxation push. PeakAuxNodes samples the peak size
//     of the best-candidate map, the queue's effective footprint.
//
// Returns edges as (parent, child, weight) triples in discovery order
// (Edge.U is the parent), translated back to external labels. When the
// queue drains before every node is visited the partial forest reached
// from node 0 is returned together with ErrUnconnected; a zero-node
// snapshot returns ErrEmptyGraph.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func (e *Engine) Prim() ([]graph.Edge, int64, error) {
	// 1. Fresh counters and a monotonic start mark.
	e.resetMetrics()
	start := time.Now()

	// 2. Zero nodes: record the (near-zero) elapsed time and report.
	if e.order == 0 {
		e.metrics.RuntimeMS = msSince(start)

		return []graph.Edge{}, 0, ErrEmptyGraph
	}

	// 3. Seed the queue with the sentinel and the candidate map with the
	//    start node's zero-weight entry.
	pq := &candidateQueue{{weight: 0, node: 0, parent: noParent}}
	heap.Init(pq)
	best := map[int]int64{0: 0} // node → lightest known connecting weight
	visited := make([]bool, e.order)
	reached := 0 // number of visited nodes

	mst := make([]graph.Edge, 0, e.order-1)
	var total int64
	peak := 0

	// 4. Main loop: pop the lightest candidate, discard stale entries,
	//    otherwise accept the node and relax its neighborhood.
	for pq.Len() > 0 {
		e.metrics.Iterations++
		// Sample the candidate map before the pop shrinks it; its peak,
		// not the raw queue length, is the structure's true footprint.
		if len(best) > peak {
			peak = len(best)
		}

		c := heap.Pop(pq).(candidate)
		e.metrics.EdgeComparisons++
		if visited[c.node] {
			// Stale entry superseded by a lighter push; no further counting.
			continue
		}

		// 4a. Accept the node into the tree.
		visited[c.node] = true
		reached++
		delete(best, c.node)
		if c.parent != noParent {
			mst = append(mst, graph.Edge{U: e.labels[c.parent], V: e.labels[c.node], Weight: c.weight})
			total += c.weight
		}

		// 4b. Relax all neighbors under the best-candidate rule.
		for _, a := range e.adj[c.node] {
			if visited[a.to] {
				continue
			}
			if cur, ok := best[a.to]; !ok || a.weight < cur {
				heap.Push(pq, candidate{weight: a.weight, node: a.to, parent: c.node})
				best[a.to] = a.weight
				e.metrics.EdgeComparisons++
			}
		}
	}

	// 5. Close the clock; report partial coverage as ErrUnconnected while
	//    still handing back the forest actually discovered.
	e.metrics.PeakAuxNodes = peak
	e.metrics.RuntimeMS = msSince(start)
	if reached < e.order {
		return mst, total, ErrUnconnected
	}

	return mst, total, nil
}

// noParent marks the sentinel seed entry, which produces no tree edge.
const noParent = -1

// candidate is one queue entry: the lightest known edge reaching node
// through parent. The sentinel uses parent == noParent.
type candidate struct {
	weight int64
	node   int
	parent int
}

// candidateQueue implements heap.Interface as a min-heap of candidates
// ordered by weight, ties broken toward the smaller dense node index for
// deterministic pops.
type candidateQueue []candidate

// Len returns the number of queued candidates. Complexity: O(1).
func (pq candidateQueue) Len() int { return len(pq) }

// Less orders by ascending weight, then ascending node index.
// Complexity: O(1).
func (pq candidateQueue) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].node < pq[j].node
}

// Swap swaps entries i and j. Complexity: O(1).
func (pq candidateQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate; called by heap.Push. Complexity: O(1) amortized.
func (pq *candidateQueue) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate after heap adjustments;
// called by heap.Pop. Complexity: O(1) amortized.
func (pq *candidateQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
