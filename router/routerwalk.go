package router

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/samber/lo"

	"github.com/safestride/routing/router/algo"
	"github.com/safestride/routing/router/geo"
)

// Route is one walking route found by SearchWalking.
type Route struct {
	Path  []LatLon // (lat, lon) vertices from origin to destination
	Edges []EdgeID // street edges in travel order
	Cost  float64  // sum of edge costs seen by the search
}

// FindRoute returns the safest walking path between two coordinates as
// (lat, lon) vertices.
func (r *Router) FindRoute(ctx context.Context, oLat, oLon, dLat, dLon float64) ([]LatLon, error) {
	route, err := r.SearchWalking(ctx, LatLon{Lat: oLat, Lon: oLon}, LatLon{Lat: dLat, Lon: dLon})
	if err != nil {
		return nil, err
	}
	return route.Path, nil
}

// nearestNode resolves a coordinate to the closest street node.
func (r *Router) nearestNode(p LatLon) (*StreetNode, error) {
	q, err := geo.ToCRS(orb.Point{p.Lon, p.Lat}, r.frame())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeResolutionFailed, err)
	}
	id, ok := r.points.Nearest(q)
	if !ok || id < 0 || id >= len(r.nodeIndex) {
		return nil, fmt.Errorf("%w: no street node near (%v, %v)", ErrNodeResolutionFailed, p.Lat, p.Lon)
	}
	return r.nodeIndex[id], nil
}

func (r *Router) SearchWalking(ctx context.Context, origin, dest LatLon) (*Route, error) {
	if !geo.ValidLatLon(origin.Lat, origin.Lon) {
		return nil, fmt.Errorf("%w: origin (%v, %v)", ErrInvalidInput, origin.Lat, origin.Lon)
	}
	if !geo.ValidLatLon(dest.Lat, dest.Lon) {
		return nil, fmt.Errorf("%w: destination (%v, %v)", ErrInvalidInput, dest.Lat, dest.Lon)
	}
	start, err := r.nearestNode(origin)
	if err != nil {
		return nil, err
	}
	end, err := r.nearestNode(dest)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debugf("search walking route from node %d to node %d", start.ID, end.ID)
	path, cost := r.walkGraph.ShortestPath(start.graphID, end.graphID)
	// unreachable
	if cost == algo.INF || len(path) == 0 {
		return nil, fmt.Errorf("%w: node %d to node %d", ErrNoPathFound, start.ID, end.ID)
	}
	return r.toRoute(path, cost), nil
}

// toRoute concatenates the geometry of the edges along path. Each edge uses
// its stored line, oriented in the direction of travel, or the straight
// segment between its nodes; shared vertices are not repeated.
func (r *Router) toRoute(path []algo.PathItem[algo.WalkNodeAttr, EdgeID], cost float64) *Route {
	route := &Route{Cost: cost, Edges: make([]EdgeID, 0, len(path)-1)}
	coords := make(orb.LineString, 0, len(path))
	appendPoint := func(p orb.Point) {
		if len(coords) > 0 && coords[len(coords)-1].Equal(p) {
			return
		}
		coords = append(coords, p)
	}
	first := r.nodes[path[0].NodeAttr.ID]
	appendPoint(orb.Point{first.Lon, first.Lat})
	for i := 0; i < len(path)-1; i++ {
		from := r.nodes[path[i].NodeAttr.ID]
		to := r.nodes[path[i+1].NodeAttr.ID]
		id := path[i].EdgeAttr
		route.Edges = append(route.Edges, id)
		for _, p := range r.segmentLine(id, from, to) {
			appendPoint(p)
		}
	}
	route.Path = lo.Map(coords, func(p orb.Point, _ int) LatLon {
		return LatLon{Lat: p[1], Lon: p[0]}
	})
	return route
}

func (r *Router) segmentLine(id EdgeID, from, to *StreetNode) orb.LineString {
	pFrom := orb.Point{from.Lon, from.Lat}
	pTo := orb.Point{to.Lon, to.Lat}
	e, ok := r.store.Edge(id)
	if !ok || len(e.Line) < 2 {
		return orb.LineString{pFrom, pTo}
	}
	head, tail := e.Line[0], e.Line[len(e.Line)-1]
	if planar.DistanceSquared(tail, pFrom) < planar.DistanceSquared(head, pFrom) {
		reversed := e.Line.Clone()
		reversed.Reverse()
		return reversed
	}
	return e.Line
}
