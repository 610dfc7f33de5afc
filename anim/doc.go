// Package anim turns a finished MST computation into a stepwise
// animation trace: an ordered, finite, non-restartable sequence of tagged
// events that an external visualization (or analysis) consumes at its own
// pace.
//
// Contract
//
//   - KruskalTrace / PrimTrace invoke the corresponding engine method
//     exactly once to obtain the authoritative result and metrics, then
//     replay that result structurally. Consuming the trace afterwards
//     performs no new computation and never mutates the engine's metrics
//     record — the replay is fully determined by the already-computed
//     edge sequence, so it is deterministic and reproducible for a fixed
//     input graph.
//
// Event order
//
//   - Kruskal: walking the accepted edges in processing order, the first
//     appearance of each endpoint emits a vertex event before the edge
//     event; the trace closes with a final event carrying the result.
//   - Prim: the fixed start node (first declared label) is emitted first;
//     each (parent, child) triple then emits the child on first sight
//     followed by the connecting edge; same closing final event.
//   - On a computation error (mst.ErrEmptyGraph, mst.ErrUnconnected) the
//     sole event is the final one with an empty edge list and the error.
//
// Consumption model
//
//	Pull-based and cooperative: Trace.Next hands out one event per call
//	until exhaustion, with no timers, goroutines or background execution.
//	A consumer wanting to abort simply stops pulling and discards the
//	Trace; there is no cleanup to run. A Trace is not safe for concurrent
//	pulls and cannot be restarted — build a new one to replay again.
//
// See also
//
//   - mst.Engine: the computation being replayed; its Kruskal/Prim edge
//     sequence is exactly what the trace's final event carries.
package anim
