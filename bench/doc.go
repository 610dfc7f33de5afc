// Package bench drives the MST engine across graph orders and reports
// averaged, comparable measurements for Kruskal's and Prim's algorithms:
// mean wall-clock runtime and a mean estimated auxiliary-space footprint
// per order.
//
// Contract with the engine
//
//   - One fresh graph per run per order, supplied by a caller-provided
//     Source — the harness deliberately owns no generation policy.
//   - One engine per graph; both algorithms run on it back to back. The
//     engine resets its Metrics record at every call, so the harness never
//     has to (and never does) clear anything between runs.
//   - Space is derived from Metrics.PeakAuxNodes, the peak cell count of
//     each algorithm's dominant structure: union-find slots for Kruskal,
//     best-candidate map entries for Prim. Sampling the raw priority
//     queue instead would over-count stale duplicates.
//
// Errors
//
//   - ErrNilSource / ErrBadRuns / ErrBadOrders for misconfiguration
//     (option constructors panic on programmer errors, Run re-checks).
//   - Source, engine and algorithm errors abort the run wrapped with the
//     order they occurred at; mst.ErrUnconnected aborts too, because a
//     partial forest's runtime is not comparable to a full tree's.
//
// Typical usage:
//
//	results, err := bench.Run(mySource,
//	    bench.WithOrders(50, 100, 200),
//	    bench.WithRuns(20),
//	)
//
// Each Result pairs the two algorithms' Summary values for one order, in
// the order configured, ready for tabulation or plotting by the caller.
package bench
