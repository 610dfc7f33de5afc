// Package bench defines configuration options, sentinel errors and result
// types for the MST benchmark harness.
package bench

import (
	"errors"

	"github.com/katalvlaran/mstlab/graph"
)

// Sentinel errors returned (or panicked from option constructors, for
// programmer errors) by the harness.
var (
	// ErrNilSource indicates Run was called without a graph source.
	ErrNilSource = errors.New("bench: graph source is nil")
	// ErrBadRuns indicates a non-positive repetition count.
	ErrBadRuns = errors.New("bench: runs must be positive")
	// ErrBadOrders indicates an empty order list or a non-positive order.
	ErrBadOrders = errors.New("bench: orders must be positive and non-empty")
)

// Source supplies one fresh graph of the requested order per call. The
// harness owns no generation policy: connectivity, density and weight
// distribution are entirely the caller's business. A Source is invoked
// once per run per order, so it may (and usually should) randomize.
type Source func(order int) (*graph.Graph, error)

// Summary is the averaged measurement of one algorithm at one order.
type Summary struct {
	// AvgRuntimeMS is the mean wall-clock runtime across runs, in
	// milliseconds.
	AvgRuntimeMS float64

	// AvgSpaceKB is the mean estimated footprint of the algorithm's
	// dominant auxiliary structure across runs, in kilobytes: union-find
	// cells for Kruskal, peak best-candidate entries for Prim, each
	// multiplied by a per-cell byte cost.
	AvgSpaceKB float64
}

// Result pairs both algorithms' summaries for one graph order.
type Result struct {
	// Order is the node count the summaries below were measured at.
	Order int

	// Kruskal holds the averaged Kruskal measurements.
	Kruskal Summary

	// Prim holds the averaged Prim measurements.
	Prim Summary
}

// Options configures a harness run.
//
// Orders – graph sizes (node counts) to measure, in report order.
// Runs   – repetitions per order; measurements are averaged over them.
type Options struct {
	Orders []int // node counts to drive the source with
	Runs   int   // repetitions per order
}

// Option is a functional option for configuring the harness.
type Option func(*Options)

// WithOrders sets the graph orders to measure. All orders must be
// positive and at least one must be given; violations panic, as option
// constructors do for programmer errors.
func WithOrders(orders ...int) Option {
	return func(o *Options) {
		if len(orders) == 0 {
			panic(ErrBadOrders.Error())
		}
		for _, n := range orders {
			if n < 1 {
				panic(ErrBadOrders.Error())
			}
		}
		o.Orders = orders
	}
}

// WithRuns sets the repetition count per order. Must be positive;
// violations panic.
func WithRuns(runs int) Option {
	return func(o *Options) {
		if runs < 1 {
			panic(ErrBadRuns.Error())
		}
		o.Runs = runs
	}
}

// DefaultOptions returns the harness defaults: the classic order ladder
// 5..500 with 100 runs per order.
func DefaultOptions() Options {
	return Options{
		Orders: []int{5, 50, 100, 200, 300, 400, 500},
		Runs:   100,
	}
}
