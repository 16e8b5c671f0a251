package algo

import (
	"container/heap"
	"log"

	"github.com/paulmach/orb"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
)

type node[T any] struct {
	p    orb.Point
	attr T
}

type edge[T any] struct {
	to   int
	cost atomicCost
	attr T
}

// SearchGraph is a directed multigraph with one mutable scalar cost per edge.
type SearchGraph[NT any, ET any] struct {
	// adjacency list, from node -> out edges (parallel edges allowed)
	// the topology is fixed once built, only edge costs change at runtime
	edges [][]*edge[ET]
	nodes []node[NT]
	// A Star heuristic, ZeroHeuristics degrades the search to Dijkstra
	h IHeuristics

	mu *xsync.RBMutex
}

type IHeuristics interface {
	HeuristicEuclidean(orb.Point, orb.Point) float64
}

// ZeroHeuristics is admissible for any non-negative cost
type ZeroHeuristics struct{}

func (ZeroHeuristics) HeuristicEuclidean(orb.Point, orb.Point) float64 { return 0 }

func NewSearchGraph[NT any, ET any](h IHeuristics) *SearchGraph[NT, ET] {
	if h == nil {
		h = ZeroHeuristics{}
	}
	return &SearchGraph[NT, ET]{
		edges: make([][]*edge[ET], 0),
		nodes: make([]node[NT], 0),
		h:     h,
		mu:    xsync.NewRBMutex(),
	}
}

func (g *SearchGraph[NT, ET]) InitNode(p orb.Point, attr NT) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = append(g.nodes, node[NT]{p: p, attr: attr})
	g.edges = append(g.edges, make([]*edge[ET], 0))
	return len(g.nodes) - 1
}

func (g *SearchGraph[NT, ET]) InitEdge(from, to int, cost float64, attr ET) EdgeRef {
	g.mu.Lock()
	defer g.mu.Unlock()
	if from >= len(g.edges) || to >= len(g.edges) {
		log.Panicf("edge (%d,%d) refers to missing node, node count %d", from, to, len(g.edges))
	}
	if !validCost(cost) {
		log.Panicf("edge (%d,%d) initialized with invalid cost %v", from, to, cost)
	}
	e := &edge[ET]{to: to, attr: attr}
	e.cost.Store(cost)
	g.edges[from] = append(g.edges[from], e)
	return EdgeRef{From: from, Index: len(g.edges[from]) - 1}
}

func (g *SearchGraph[NT, ET]) NodeCount() int {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	return len(g.nodes)
}

func (g *SearchGraph[NT, ET]) getEdge(ref EdgeRef) (*edge[ET], bool) {
	if ref.From < 0 || ref.From >= len(g.edges) {
		return nil, false
	}
	out := g.edges[ref.From]
	if ref.Index < 0 || ref.Index >= len(out) {
		return nil, false
	}
	return out[ref.Index], true
}

func (g *SearchGraph[NT, ET]) GetEdgeCost(ref EdgeRef) (float64, error) {
	e, ok := g.getEdge(ref)
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return e.cost.Load(), nil
}

// SetEdgeCost replaces the cost of one edge. It does not wait for running
// searches, which observe either the old or the new value.
func (g *SearchGraph[NT, ET]) SetEdgeCost(ref EdgeRef, cost float64) error {
	if !validCost(cost) {
		return ErrInvalidEdgeCost
	}
	e, ok := g.getEdge(ref)
	if !ok {
		return ErrEdgeNotFound
	}
	e.cost.Store(cost)
	return nil
}

// Edges calls fn for every edge in adjacency order.
func (g *SearchGraph[NT, ET]) Edges(fn func(ref EdgeRef, from, to int, attr ET)) {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	for from, out := range g.edges {
		for i, e := range out {
			fn(EdgeRef{From: from, Index: i}, from, e.to, e.attr)
		}
	}
}

type cameFromItem struct {
	from int
	edge int
	cost float64
}

func (g *SearchGraph[NT, ET]) reconstructPath(cameFrom map[int]cameFromItem, curNode int) ([]PathItem[NT, ET], float64) {
	pathBeforeReversed := []PathItem[NT, ET]{{NodeAttr: g.nodes[curNode].attr}}
	cost := 0.0
	for {
		if c, ok := cameFrom[curNode]; ok {
			// use the cost seen during the search, the edge may have been reweighted since
			cost += c.cost
			curNode = c.from
			pathBeforeReversed = append(pathBeforeReversed, PathItem[NT, ET]{
				NodeAttr: g.nodes[curNode].attr,
				EdgeAttr: g.edges[c.from][c.edge].attr,
			})
		} else {
			break
		}
	}
	return lo.Reverse(pathBeforeReversed), cost
}

func (g *SearchGraph[NT, ET]) ShortestPath(start, end int) ([]PathItem[NT, ET], float64) {
	return g.ShortestPathAStar(start, end)
}

// A Star shortest path, returns (nil, INF) if end is unreachable
func (g *SearchGraph[NT, ET]) ShortestPathAStar(start, end int) ([]PathItem[NT, ET], float64) {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	if start == end {
		return []PathItem[NT, ET]{{NodeAttr: g.nodes[start].attr}}, 0
	}
	openSet := make(PriorityQueue, 1)
	openSetMap := make(map[int]*Item, 1) // openSet value -> openSet item
	closed := make(map[int]bool)
	cameFrom := make(map[int]cameFromItem, 0)
	gScore := make(map[int]float64, 0)
	gScore[start] = .0
	fScore := g.h.HeuristicEuclidean(g.nodes[start].p, g.nodes[end].p)
	openSet[0] = &Item{Value: start, Priority: fScore, Index: 0}
	openSetMap[start] = openSet[0]
	heap.Init(&openSet)
	for openSet.Len() > 0 {
		cur := heap.Pop(&openSet).(*Item).Value
		if cur == end {
			return g.reconstructPath(cameFrom, cur)
		}
		closed[cur] = true
		for i, e := range g.edges[cur] {
			neighbor := e.to
			if closed[neighbor] {
				continue
			}
			// one atomic read per edge, the value is used for both relaxation and the path cost
			cost := e.cost.Load()
			gScoreTentative := gScore[cur] + cost
			gScoreNeighbor, ok := gScore[neighbor]
			if !ok {
				gScoreNeighbor = INF
			}
			if gScoreTentative < gScoreNeighbor {
				cameFrom[neighbor] = cameFromItem{from: cur, edge: i, cost: cost}
				gScore[neighbor] = gScoreTentative
				fScore := gScoreTentative + g.h.HeuristicEuclidean(g.nodes[neighbor].p, g.nodes[end].p)
				if item, inHeap := openSetMap[neighbor]; inHeap && item.Index >= 0 {
					// already in the heap, fix its priority
					item.Priority = fScore
					heap.Fix(&openSet, item.Index)
				} else {
					item := &Item{Value: neighbor, Priority: fScore}
					heap.Push(&openSet, item)
					openSetMap[neighbor] = item
				}
			}
		}
	}
	return nil, INF
}
