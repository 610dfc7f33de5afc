package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstlab/graph"
	"github.com/katalvlaran/mstlab/mst"
)

// buildSquare constructs the 4-node reference graph:
//
//	0—1(5), 1—2(3), 2—3(1), 0—3(10).
//
// Its MST is {2—3(1), 1—2(3), 0—1(5)} with total weight 9.
func buildSquare(t *testing.T) *mst.Engine {
	t.Helper()
	g, err := graph.New(4, []graph.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 2, Weight: 3},
		{U: 2, V: 3, Weight: 1},
		{U: 0, V: 3, Weight: 10},
	})
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	return e
}

// buildConnected creates a connected weighted graph with n nodes and
// edgeCount total edges: a chain 0—1—…—(n-1) for connectivity, then extra
// random edges. Deterministically seeded for reproducibility.
func buildConnected(n, edgeCount int) *graph.Graph {
	r := rand.New(rand.NewSource(42))
	edges := make([]graph.Edge, 0, edgeCount)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{U: int64(i - 1), V: int64(i), Weight: int64(1 + r.Intn(10))})
	}
	for len(edges) < edgeCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, graph.Edge{U: int64(u), V: int64(v), Weight: int64(1 + r.Intn(100))})
	}
	g, err := graph.New(n, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// TestNewEngine_NilGraph verifies the only constructor failure mode.
func TestNewEngine_NilGraph(t *testing.T) {
	_, err := mst.NewEngine(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}

// TestKruskal_Square checks the reference scenario: weight 9, edges in
// ascending-weight processing order.
func TestKruskal_Square(t *testing.T) {
	e := buildSquare(t)

	edges, total, err := e.Kruskal()
	assert.NoError(t, err)
	assert.Equal(t, int64(9), total)
	assert.Equal(t, []graph.Edge{
		{U: 2, V: 3, Weight: 1},
		{U: 1, V: 2, Weight: 3},
		{U: 0, V: 1, Weight: 5},
	}, edges)
}

// TestPrim_Square checks the reference scenario: weight 9, edges as
// (parent, child, weight) triples in discovery order from node 0.
func TestPrim_Square(t *testing.T) {
	e := buildSquare(t)

	edges, total, err := e.Prim()
	assert.NoError(t, err)
	assert.Equal(t, int64(9), total)
	assert.Equal(t, []graph.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 2, Weight: 3},
		{U: 2, V: 3, Weight: 1},
	}, edges)
}

// TestEmptyGraph verifies that a zero-node snapshot yields ErrEmptyGraph
// from both algorithms, with an empty (non-nil) edge list and a measured,
// non-negative runtime.
func TestEmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesK, totalK, errK := e.Kruskal()
	assert.ErrorIs(t, errK, mst.ErrEmptyGraph)
	assert.NotNil(t, edgesK)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
	assert.GreaterOrEqual(t, e.Metrics().RuntimeMS, 0.0)

	edgesP, totalP, errP := e.Prim()
	assert.ErrorIs(t, errP, mst.ErrEmptyGraph)
	assert.NotNil(t, edgesP)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
	assert.GreaterOrEqual(t, e.Metrics().RuntimeMS, 0.0)
}

// TestSingleNode verifies the trivial MST: no edges, no error, weight 0.
func TestSingleNode(t *testing.T) {
	g, err := graph.New(1, nil)
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesK, totalK, errK := e.Kruskal()
	assert.NoError(t, errK)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)

	edgesP, totalP, errP := e.Prim()
	assert.NoError(t, errP)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
}

// TestDisconnected_Asymmetry pins the contract's deliberate asymmetry on
// the 3-node graph with only edge 0—1(2) (node 2 isolated): Prim returns
// the partial forest plus ErrUnconnected, Kruskal the same forest with no
// error at all.
func TestDisconnected_Asymmetry(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{U: 0, V: 1, Weight: 2}})
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesP, totalP, errP := e.Prim()
	assert.ErrorIs(t, errP, mst.ErrUnconnected)
	assert.Equal(t, []graph.Edge{{U: 0, V: 1, Weight: 2}}, edgesP)
	assert.Equal(t, int64(2), totalP)

	edgesK, totalK, errK := e.Kruskal()
	assert.NoError(t, errK)
	assert.Equal(t, []graph.Edge{{U: 0, V: 1, Weight: 2}}, edgesK)
	assert.Equal(t, int64(2), totalK)
}

// TestDisconnected_ForestCounts verifies the edge-count laws on a
// two-component graph: Kruskal keeps |V| - components edges, Prim keeps
// k-1 edges where k is the size of node 0's component.
func TestDisconnected_ForestCounts(t *testing.T) {
	// Component {0,1,2} chained, component {3,4} chained: 5 nodes, 2 parts.
	g, err := graph.New(5, []graph.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 3, V: 4, Weight: 3},
	})
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesK, _, errK := e.Kruskal()
	assert.NoError(t, errK)
	assert.Len(t, edgesK, 3) // 5 nodes - 2 components

	edgesP, _, errP := e.Prim()
	assert.ErrorIs(t, errP, mst.ErrUnconnected)
	assert.Len(t, edgesP, 2) // component of node 0 has k=3 nodes
}

// TestWeightParity verifies that both algorithms agree on the MST's total
// weight for the same connected input, even where tie-broken edge sets
// may differ.
func TestWeightParity(t *testing.T) {
	g := buildConnected(50, 200)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesK, totalK, errK := e.Kruskal()
	assert.NoError(t, errK)
	assert.Len(t, edgesK, 49)

	edgesP, totalP, errP := e.Prim()
	assert.NoError(t, errP)
	assert.Len(t, edgesP, 49)

	assert.Equal(t, totalK, totalP)
}

// TestParallelEdges verifies that both algorithms pick the lighter of two
// parallel edges.
func TestParallelEdges(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 0, V: 1, Weight: 1},
	})
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesK, totalK, errK := e.Kruskal()
	assert.NoError(t, errK)
	assert.Len(t, edgesK, 1)
	assert.Equal(t, int64(1), totalK)

	edgesP, totalP, errP := e.Prim()
	assert.NoError(t, errP)
	assert.Len(t, edgesP, 1)
	assert.Equal(t, int64(1), totalP)
}

// TestLabeledGraph_Translation verifies that results come back in the
// caller's labels and that Prim starts at the first declared label.
func TestLabeledGraph_Translation(t *testing.T) {
	g, err := graph.NewLabeled(
		[]int64{10, 20, 30},
		[]graph.Edge{
			{U: 10, V: 20, Weight: 4},
			{U: 20, V: 30, Weight: 2},
		},
	)
	assert.NoError(t, err)
	e, err := mst.NewEngine(g)
	assert.NoError(t, err)

	edgesP, totalP, errP := e.Prim()
	assert.NoError(t, errP)
	assert.Equal(t, int64(6), totalP)
	// Discovery from label 10 (dense index 0): 10→20 first, then 20→30.
	assert.Equal(t, []graph.Edge{
		{U: 10, V: 20, Weight: 4},
		{U: 20, V: 30, Weight: 2},
	}, edgesP)

	edgesK, totalK, errK := e.Kruskal()
	assert.NoError(t, errK)
	assert.Equal(t, int64(6), totalK)
	assert.Equal(t, []graph.Edge{
		{U: 20, V: 30, Weight: 2},
		{U: 10, V: 20, Weight: 4},
	}, edgesK)
}

// TestMetrics_KruskalCounts pins the deterministic counters on the square
// graph: one iteration per edge, sort approximation of the expected order
// of magnitude (not an exact comparator tally) plus one check per edge.
func TestMetrics_KruskalCounts(t *testing.T) {
	e := buildSquare(t)
	_, _, err := e.Kruskal()
	assert.NoError(t, err)

	m := e.Metrics()
	assert.Equal(t, int64(4), m.Iterations)
	// The sort contributes an E·⌊log2 E⌋ estimate, the sweep one check per
	// edge: expect the right order of magnitude, not a precise tally.
	assert.GreaterOrEqual(t, m.EdgeComparisons, int64(4))      // at least the cycle checks
	assert.LessOrEqual(t, m.EdgeComparisons, int64(4*(2+1)+4)) // bounded by E·(log2 E + 1) + E
	assert.Equal(t, 4, m.PeakAuxNodes) // union-find arrays span all nodes
	assert.GreaterOrEqual(t, m.RuntimeMS, 0.0)
}

// TestMetrics_PrimCounts verifies Prim's counters on the square graph:
// pops (including the one stale entry) drive Iterations, and the
// best-candidate map's peak stays well below the node count here.
func TestMetrics_PrimCounts(t *testing.T) {
	e := buildSquare(t)
	_, _, err := e.Prim()
	assert.NoError(t, err)

	m := e.Metrics()
	// 4 accepting pops + 1 stale pop of node 3's superseded entry.
	assert.Equal(t, int64(5), m.Iterations)
	// One comparison per pop (5) + one per successful push (4).
	assert.Equal(t, int64(9), m.EdgeComparisons)
	assert.Equal(t, 2, m.PeakAuxNodes)
	assert.GreaterOrEqual(t, m.RuntimeMS, 0.0)
}

// TestMetrics_ResetPerCall verifies that counters are overwritten, not
// accumulated, across calls on one engine — and that the two algorithms
// never see each other's numbers.
func TestMetrics_ResetPerCall(t *testing.T) {
	e := buildSquare(t)

	_, _, err := e.Kruskal()
	assert.NoError(t, err)
	first := e.Metrics()

	_, _, err = e.Kruskal()
	assert.NoError(t, err)
	second := e.Metrics()

	assert.Equal(t, first.Iterations, second.Iterations)
	assert.Equal(t, first.EdgeComparisons, second.EdgeComparisons)

	// A Prim run overwrites the record with its own shape of work.
	_, _, err = e.Prim()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), e.Metrics().Iterations)
}

// TestEngine_Accessors verifies snapshot accessors return copies.
func TestEngine_Accessors(t *testing.T) {
	e := buildSquare(t)
	assert.Equal(t, 4, e.Order())

	labels := e.Labels()
	assert.Equal(t, []int64{0, 1, 2, 3}, labels)
	labels[0] = 99
	assert.Equal(t, []int64{0, 1, 2, 3}, e.Labels())
}
