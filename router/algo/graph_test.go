package algo_test

import (
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestride/routing/router/algo"
)

func TestSearchGraph(t *testing.T) {
	g := algo.NewSearchGraph[int, int](nil)

	// nodes
	n1 := g.InitNode(orb.Point{0, 0}, 1)
	n2 := g.InitNode(orb.Point{0, 1}, 2)
	n3 := g.InitNode(orb.Point{1, 0}, 3)
	n4 := g.InitNode(orb.Point{1, 1}, 4)

	// edges
	e12 := g.InitEdge(n1, n2, 1, 12)
	g.InitEdge(n2, n3, 1, 23)
	g.InitEdge(n3, n4, 1, 34)

	cost, err := g.GetEdgeCost(e12)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
	require.NoError(t, g.SetEdgeCost(e12, 2.0))
	cost, _ = g.GetEdgeCost(e12)
	assert.Equal(t, 2.0, cost)
	require.NoError(t, g.SetEdgeCost(e12, 1.0))

	// shortest path
	path, cost := g.ShortestPath(n1, n4)
	assert.Len(t, path, 4)
	assert.Equal(t, 1, path[0].NodeAttr)
	assert.Equal(t, 12, path[0].EdgeAttr)
	assert.Equal(t, 2, path[1].NodeAttr)
	assert.Equal(t, 23, path[1].EdgeAttr)
	assert.Equal(t, 3, path[2].NodeAttr)
	assert.Equal(t, 34, path[2].EdgeAttr)
	assert.Equal(t, 4, path[3].NodeAttr)
	assert.Equal(t, 3.0, cost)

	path, cost = g.ShortestPath(n3, n3)
	assert.Len(t, path, 1)
	assert.Equal(t, 3, path[0].NodeAttr)
	assert.Equal(t, 0.0, cost)

	// unreachable node
	n5 := g.InitNode(orb.Point{2, 2}, 5)
	path, cost = g.ShortestPath(n1, n5)
	assert.Nil(t, path)
	assert.Equal(t, algo.INF, cost)
}

func TestSearchGraphCheaperDetour(t *testing.T) {
	g := algo.NewSearchGraph[int, int](algo.ZeroHeuristics{})

	n1 := g.InitNode(orb.Point{0, 0}, 1)
	n2 := g.InitNode(orb.Point{0, 1}, 2)
	n3 := g.InitNode(orb.Point{1, 0}, 3)

	g.InitEdge(n1, n2, 10, 12)
	g.InitEdge(n1, n3, 2, 13)
	g.InitEdge(n3, n2, 1, 32)

	path, cost := g.ShortestPath(n1, n2)
	assert.Len(t, path, 3)
	assert.Equal(t, 1, path[0].NodeAttr)
	assert.Equal(t, 13, path[0].EdgeAttr)
	assert.Equal(t, 3, path[1].NodeAttr)
	assert.Equal(t, 32, path[1].EdgeAttr)
	assert.Equal(t, 2, path[2].NodeAttr)
	assert.Equal(t, 3.0, cost)
}

func TestSearchGraphParallelEdges(t *testing.T) {
	g := algo.NewSearchGraph[int, string](nil)
	n1 := g.InitNode(orb.Point{0, 0}, 1)
	n2 := g.InitNode(orb.Point{1, 0}, 2)

	slow := g.InitEdge(n1, n2, 0.9, "1_2_0")
	fast := g.InitEdge(n1, n2, 0.3, "1_2_1")
	assert.Equal(t, algo.EdgeRef{From: n1, Index: 0}, slow)
	assert.Equal(t, algo.EdgeRef{From: n1, Index: 1}, fast)

	path, cost := g.ShortestPath(n1, n2)
	require.Len(t, path, 2)
	assert.Equal(t, "1_2_1", path[0].EdgeAttr)
	assert.InDelta(t, 0.3, cost, 1e-12)

	// reweighting flips the preferred parallel edge
	require.NoError(t, g.SetEdgeCost(fast, 1.5))
	path, cost = g.ShortestPath(n1, n2)
	require.Len(t, path, 2)
	assert.Equal(t, "1_2_0", path[0].EdgeAttr)
	assert.InDelta(t, 0.9, cost, 1e-12)
}

func TestSearchGraphSetEdgeCostErrors(t *testing.T) {
	g := algo.NewSearchGraph[int, int](nil)
	n1 := g.InitNode(orb.Point{0, 0}, 1)
	n2 := g.InitNode(orb.Point{1, 0}, 2)
	ref := g.InitEdge(n1, n2, 1, 0)

	assert.ErrorIs(t, g.SetEdgeCost(ref, -0.1), algo.ErrInvalidEdgeCost)
	assert.ErrorIs(t, g.SetEdgeCost(algo.EdgeRef{From: n2, Index: 0}, 1), algo.ErrEdgeNotFound)
	assert.ErrorIs(t, g.SetEdgeCost(algo.EdgeRef{From: 9, Index: 0}, 1), algo.ErrEdgeNotFound)
	_, err := g.GetEdgeCost(algo.EdgeRef{From: n1, Index: 3})
	assert.ErrorIs(t, err, algo.ErrEdgeNotFound)

	cost, err := g.GetEdgeCost(ref)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
}

func TestSearchGraphEdges(t *testing.T) {
	g := algo.NewSearchGraph[int, int](nil)
	n1 := g.InitNode(orb.Point{0, 0}, 1)
	n2 := g.InitNode(orb.Point{1, 0}, 2)
	g.InitEdge(n1, n2, 1, 12)
	g.InitEdge(n2, n1, 1, 21)

	attrs := make([]int, 0)
	g.Edges(func(ref algo.EdgeRef, from, to int, attr int) {
		attrs = append(attrs, attr)
	})
	assert.Equal(t, []int{12, 21}, attrs)
	assert.Equal(t, 2, g.NodeCount())
}

func TestSearchGraphConcurrentReweight(t *testing.T) {
	g := algo.NewSearchGraph[int, int](nil)
	const n = 50
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = g.InitNode(orb.Point{float64(i), 0}, i)
	}
	refs := make([]algo.EdgeRef, 0, n-1)
	for i := 0; i < n-1; i++ {
		refs = append(refs, g.InitEdge(ids[i], ids[i+1], 1, i))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 0; round < 200; round++ {
			for _, ref := range refs {
				_ = g.SetEdgeCost(ref, float64(round%2)+0.5)
			}
		}
	}()
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				path, cost := g.ShortestPath(ids[0], ids[n-1])
				assert.Len(t, path, n)
				// every edge cost is either 0.5 or 1.5 (or the initial 1)
				assert.GreaterOrEqual(t, cost, 0.5*float64(n-1))
				assert.LessOrEqual(t, cost, 1.5*float64(n-1))
			}
		}()
	}
	wg.Wait()
}
