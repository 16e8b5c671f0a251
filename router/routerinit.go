package router

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/safestride/routing/network"
	"github.com/safestride/routing/router/algo"
	"github.com/safestride/routing/router/geo"
)

// frame is the planar reference system the geometry is projected into.
func (r *Router) frame() geo.CRS {
	if r.crs.Defined() {
		return r.crs
	}
	return geo.WebMercator
}

// buildWalkGraph converts the network into street records, projects their
// geometry and builds the search graph and spatial indexes.
func (r *Router) buildWalkGraph(net *network.Network) error {
	frame := r.frame()
	walkGraph := algo.NewSearchGraph[algo.WalkNodeAttr, EdgeID](nil)
	r.nodes = make(map[int64]*StreetNode, len(net.Nodes))
	r.nodeIndex = make([]*StreetNode, 0, len(net.Nodes))
	r.edgeRefs = make(map[EdgeID][]algo.EdgeRef, len(net.Edges))
	r.store = NewEdgeStore(r.crs)
	r.lines = geo.NewLineIndex()
	r.points = geo.NewPointIndex()

	// nodes
	for _, n := range net.Nodes {
		if _, ok := r.nodes[n.ID]; ok {
			log.Warnf("skip duplicated node %d", n.ID)
			continue
		}
		if !geo.ValidLatLon(n.Lat, n.Lon) {
			log.Warnf("skip node %d with invalid position (%v, %v)", n.ID, n.Lat, n.Lon)
			continue
		}
		p, err := geo.ToCRS(orb.Point{n.Lon, n.Lat}, frame)
		if err != nil {
			return fmt.Errorf("%w: node %d: %v", ErrProjection, n.ID, err)
		}
		sn := &StreetNode{ID: n.ID, Lat: n.Lat, Lon: n.Lon, p: p}
		sn.graphID = walkGraph.InitNode(p, algo.WalkNodeAttr{ID: n.ID})
		r.nodes[n.ID] = sn
		r.nodeIndex = append(r.nodeIndex, sn)
		r.points.Insert(sn.graphID, p)
	}

	// edges
	skipped := 0
	for _, e := range net.Edges {
		u, uOk := r.nodes[e.U]
		v, vOk := r.nodes[e.V]
		if !uOk || !vOk {
			skipped++
			continue
		}
		id := NewEdgeID(e.U, e.V, e.Key)
		var line orb.LineString
		if len(e.Line) >= 2 {
			line = e.Line
		}
		rendered := line
		if rendered == nil {
			rendered = orb.LineString{{u.Lon, u.Lat}, {v.Lon, v.Lat}}
		}
		projected, err := geo.LineToCRS(rendered, frame)
		if err != nil {
			return fmt.Errorf("%w: edge %s: %v", ErrProjection, id, err)
		}
		se := &StreetEdge{
			ID:      id,
			U:       e.U,
			V:       e.V,
			Key:     e.Key,
			Name:    e.Name,
			Highway: e.Highway,
			Length:  e.Length,
			Line:    line,
		}
		if !r.store.add(se) {
			log.Warnf("skip duplicated edge %s", id)
			continue
		}
		r.lines.Insert(string(id), projected)
		ref := walkGraph.InitEdge(u.graphID, v.graphID, algo.UNKNOWN_EDGE_COST, id)
		r.edgeRefs[id] = append(r.edgeRefs[id], ref)
	}
	if skipped > 0 {
		log.Warnf("skipped %d edges with unknown endpoints", skipped)
	}
	r.walkGraph = walkGraph

	r.store.seedFeatures(rand.New(rand.NewSource(r.seed)))
	r.reweight(nil)
	log.Infof("built walk graph of %q: %d nodes, %d edges", r.place, len(r.nodeIndex), r.store.Len())
	return nil
}
