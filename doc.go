// Package mstlab is a compact laboratory for Minimum Spanning Trees:
// compute them, replay them step by step, and benchmark the two classic
// algorithms against each other on equal terms.
//
// 🚀 What is mstlab?
//
//	A small, focused library that brings together:
//		• graph/ — an immutable, weighted, undirected graph model with
//		  dense 0-based node indices and optional external labels
//		• mst/   — Kruskal's (stable sort + union-find) and Prim's
//		  (lazy-deletion min-heap) algorithms, each instrumented with
//		  comparable performance counters: runtime, edge comparisons,
//		  iterations and peak auxiliary-structure size
//		• anim/  — a pull-based trace generator that replays a finished
//		  computation as discrete vertex/edge/final events for stepwise
//		  visualization, without perturbing the measured metrics
//		• bench/ — a harness that drives both algorithms across graph
//		  orders and averages runtime and estimated space per run
//
// ✨ Why choose mstlab?
//
//   - Comparable by construction – both algorithms share one metrics
//     record shape, reset at every call, so runs line up 1:1
//   - Honest about disconnection – Prim reports the partial forest it
//     reached together with ErrUnconnected; Kruskal natively yields the
//     minimum spanning forest of each component
//   - Replayable – every computation can be consumed again as an ordered
//     event trace, one pull at a time, at whatever pace the consumer sets
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0───5───1
//	    │       │
//	   10       3
//	    │       │
//	    3───1───2
//
//	4 nodes, 4 edges; the MST keeps {2–3(1), 1–2(3), 0–1(5)}, weight 9.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
package mstlab
