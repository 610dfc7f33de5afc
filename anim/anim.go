// Package anim provides the animation-trace generator: it replays one
// finished MST computation as an ordered sequence of discrete events
// (vertex discovered, edge selected, final result) that a consumer pulls
// one at a time — a visualization decides the pacing, the trace only
// supplies the order.
package anim

import (
	"github.com/katalvlaran/mstlab/graph"
	"github.com/katalvlaran/mstlab/mst"
)

// Trace is a finite, non-restartable event sequence replaying one MST
// computation. Events were fully materialized from the algorithm's result
// when the trace was built, so each pull is pure replay: no computation
// runs, no engine metrics move. Once exhausted a Trace stays exhausted.
type Trace struct {
	events []Event // materialized replay, in emission order
	pos    int     // cursor of the next event to hand out
}

// Next returns the next event and true, or a zero Event and false once
// the trace is exhausted.
// Complexity: O(1) per pull.
func (t *Trace) Next() (Event, bool) {
	if t.pos >= len(t.events) {
		return Event{}, false
	}
	ev := t.events[t.pos]
	t.pos++

	return ev, true
}

// Remaining reports how many events are still unconsumed.
// Complexity: O(1).
func (t *Trace) Remaining() int {
	return len(t.events) - t.pos
}

// KruskalTrace runs the engine's Kruskal computation exactly once and
// returns its replay. Walking the accepted edges in order, each endpoint
// is announced as a vertex event the first time it is seen, then the edge
// itself is announced; the final event carries the authoritative result.
// On a computation error the sole event is the final one with an empty
// edge list.
// Complexity: O(E_mst) to build, O(1) per pull.
func KruskalTrace(e *mst.Engine) (*Trace, error) {
	if e == nil {
		return nil, ErrNilEngine
	}

	// 1. One authoritative invocation; the trace never re-runs it.
	edges, total, err := e.Kruskal()
	if err != nil {
		return &Trace{events: []Event{{Kind: KindFinal, Edges: []graph.Edge{}, Err: err}}}, nil
	}

	// 2. Replay structurally: first-seen endpoints precede their edge.
	events := make([]Event, 0, 3*len(edges)+1)
	seen := make(map[int64]bool, len(edges)+1)
	for _, ed := range edges {
		if !seen[ed.U] {
			seen[ed.U] = true
			events = append(events, Event{Kind: KindVertex, Node: ed.U})
		}
		if !seen[ed.V] {
			seen[ed.V] = true
			events = append(events, Event{Kind: KindVertex, Node: ed.V})
		}
		events = append(events, Event{Kind: KindEdge, U: ed.U, V: ed.V})
	}
	events = append(events, Event{Kind: KindFinal, Edges: edges, Total: total})

	return &Trace{events: events}, nil
}

// PrimTrace runs the engine's Prim computation exactly once and returns
// its replay. The fixed start node (first declared label) is announced
// first; then each (parent, child, weight) triple announces the child on
// first sight followed by the connecting edge; the final event carries
// the authoritative result. On a computation error — empty graph or
// unconnected input — the sole event is the final one with an empty edge
// list.
// Complexity: O(E_mst) to build, O(1) per pull.
func PrimTrace(e *mst.Engine) (*Trace, error) {
	if e == nil {
		return nil, ErrNilEngine
	}

	// 1. One authoritative invocation; the trace never re-runs it.
	edges, total, err := e.Prim()
	if err != nil {
		return &Trace{events: []Event{{Kind: KindFinal, Edges: []graph.Edge{}, Err: err}}}, nil
	}

	// 2. Announce the fixed start node, then replay discovery order.
	start := e.Labels()[0] // a successful Prim run implies at least one node
	events := make([]Event, 0, 2*len(edges)+2)
	seen := map[int64]bool{start: true}
	events = append(events, Event{Kind: KindVertex, Node: start})
	for _, ed := range edges {
		if !seen[ed.V] {
			seen[ed.V] = true
			events = append(events, Event{Kind: KindVertex, Node: ed.V})
		}
		events = append(events, Event{Kind: KindEdge, U: ed.U, V: ed.V})
	}
	events = append(events, Event{Kind: KindFinal, Edges: edges, Total: total})

	return &Trace{events: events}, nil
}
