// Package bench implements the benchmark harness: it drives the MST
// engine across graph orders, repeats each measurement, and averages
// runtime and estimated auxiliary space per algorithm.
package bench

import (
	"fmt"

	"github.com/katalvlaran/mstlab/mst"
)

// Per-cell byte costs used to turn Metrics.PeakAuxNodes into a space
// estimate. These are estimates of the dominant structure's footprint,
// not heap-profiler measurements.
const (
	// dsuCellBytes covers one union-find slot: a parent int plus a rank int.
	dsuCellBytes = 16
	// heapEntryBytes covers one Prim candidate: weight, node and parent.
	heapEntryBytes = 24
	// bytesPerKB converts the estimates to kilobytes.
	bytesPerKB = 1024
)

// Run measures both algorithms across the configured orders.
//
// For every order it asks the Source for a fresh graph once per run,
// builds a new engine over it, invokes Kruskal and Prim, and reads each
// call's Metrics record. The engine resets that record at every call —
// resetting is the engine's responsibility, never the harness's — so the
// numbers of one run can never bleed into the next. Averages are taken
// over Runs repetitions.
//
// Any error from the source, the engine constructor or an algorithm
// (including mst.ErrUnconnected — the harness insists on measuring full
// spanning trees) aborts the run and is returned wrapped with the order
// it occurred at.
// Complexity: O(Σ runs·(E log E)) time over all orders; O(len(Orders)) memory.
func Run(src Source, opts ...Option) ([]Result, error) {
	// 1. Assemble configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if cfg.Runs < 1 {
		return nil, ErrBadRuns
	}
	if len(cfg.Orders) == 0 {
		return nil, ErrBadOrders
	}

	// 2. Measure order by order.
	results := make([]Result, 0, len(cfg.Orders))
	for _, order := range cfg.Orders {
		var kruskalMS, primMS, kruskalKB, primKB float64

		for run := 0; run < cfg.Runs; run++ {
			g, err := src(order)
			if err != nil {
				return nil, fmt.Errorf("bench: source failed at order %d: %w", order, err)
			}
			engine, err := mst.NewEngine(g)
			if err != nil {
				return nil, fmt.Errorf("bench: engine at order %d: %w", order, err)
			}

			// 2a. Kruskal: runtime plus the union-find footprint.
			if _, _, err = engine.Kruskal(); err != nil {
				return nil, fmt.Errorf("bench: kruskal at order %d: %w", order, err)
			}
			m := engine.Metrics()
			kruskalMS += m.RuntimeMS
			kruskalKB += float64(m.PeakAuxNodes*dsuCellBytes) / bytesPerKB

			// 2b. Prim: runtime plus the peak best-candidate footprint.
			if _, _, err = engine.Prim(); err != nil {
				return nil, fmt.Errorf("bench: prim at order %d: %w", order, err)
			}
			m = engine.Metrics()
			primMS += m.RuntimeMS
			primKB += float64(m.PeakAuxNodes*heapEntryBytes) / bytesPerKB
		}

		// 3. Average over the repetitions.
		runs := float64(cfg.Runs)
		results = append(results, Result{
			Order:   order,
			Kruskal: Summary{AvgRuntimeMS: kruskalMS / runs, AvgSpaceKB: kruskalKB / runs},
			Prim:    Summary{AvgRuntimeMS: primMS / runs, AvgSpaceKB: primKB / runs},
		})
	}

	return results, nil
}
