package router

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/safestride/routing/network"
	"github.com/safestride/routing/router/algo"
	"github.com/safestride/routing/router/geo"
)

var log = logrus.WithField("module", "router")

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoPathFound          = errors.New("no path found")
	ErrNodeResolutionFailed = errors.New("node resolution failed")
	ErrProjection           = errors.New("projection error")
)

const DEFAULT_SEED = 42

type Router struct {
	// walkGraph Topo
	// 1. nodes are the street nodes of the network source, NodeAttr keeps the source id
	// 2. edges are the directed street edges, EdgeAttr is the EdgeID of the store record
	// 3. cost is 1 - safety score of the record, UNKNOWN_EDGE_COST without one
	nodes     map[int64]*StreetNode
	nodeIndex []*StreetNode // graph node id -> street node
	store     *EdgeStore
	edgeRefs  map[EdgeID][]algo.EdgeRef
	walkGraph *algo.SearchGraph[algo.WalkNodeAttr, EdgeID]

	lines  *geo.LineIndex  // projected edge lines
	points *geo.PointIndex // projected nodes, keyed by graph node id

	place    string
	severity *SeverityModel
	seed     int64
	crs      geo.CRS

	// serializes crime score mutation passes
	ingest sync.Mutex
}

type Option func(*Router)

func WithSeverityModel(m *SeverityModel) Option {
	return func(r *Router) {
		if m != nil {
			r.severity = m
		}
	}
}

// WithSeed sets the seed of the mocked auxiliary features.
func WithSeed(seed int64) Option {
	return func(r *Router) {
		r.seed = seed
	}
}

// WithCRS declares the reference system of the stored geometry. An undefined
// CRS is resolved to Web Mercator on first use. Geographic systems such as
// WGS84 are rejected by New since all radii are in projected units.
func WithCRS(crs geo.CRS) Option {
	return func(r *Router) {
		r.crs = crs
	}
}

// New builds the edge store and the walk graph of net. Crime scores start at
// 0 until BuildCrimeScores or a snapshot sets them.
func New(net *network.Network, opts ...Option) (*Router, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", ErrInvalidInput)
	}
	r := &Router{
		place:    net.Place,
		severity: DefaultSeverityModel(),
		seed:     DEFAULT_SEED,
		crs:      geo.WebMercator,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.crs.Defined() && !r.crs.Projected() {
		return nil, fmt.Errorf("%w: %v is not a projected CRS", ErrInvalidInput, r.crs)
	}
	if err := r.buildWalkGraph(net); err != nil {
		return nil, err
	}
	return r, nil
}

// storeCRS returns the CRS of the stored geometry, assigning Web Mercator
// when none is defined.
func (r *Router) storeCRS() geo.CRS {
	crs := r.store.CRS()
	if crs.Defined() {
		return crs
	}
	err := fmt.Errorf("%w: edge store has no coordinate reference system, assign %v", ErrProjection, geo.WebMercator)
	log.Error(err)
	r.store.assignCRS(geo.WebMercator)
	return geo.WebMercator
}

// getter

func (r *Router) Place() string {
	return r.place
}

func (r *Router) Store() *EdgeStore {
	return r.store
}

func (r *Router) Severity() *SeverityModel {
	return r.severity
}

func (r *Router) NodeCount() int {
	return len(r.nodeIndex)
}

func (r *Router) HasEdge(id EdgeID) bool {
	_, ok := r.edgeRefs[id]
	return ok
}

// Bounds is the (lon, lat) bounding box of the street nodes.
func (r *Router) Bounds() orb.Bound {
	if len(r.nodeIndex) == 0 {
		return orb.Bound{}
	}
	b := orb.Point{r.nodeIndex[0].Lon, r.nodeIndex[0].Lat}.Bound()
	for _, n := range r.nodeIndex[1:] {
		b = b.Extend(orb.Point{n.Lon, n.Lat})
	}
	return b
}

// GetEdgeCost returns the current search cost of id.
func (r *Router) GetEdgeCost(id EdgeID) (float64, error) {
	refs, ok := r.edgeRefs[id]
	if !ok || len(refs) == 0 {
		return 0, fmt.Errorf("%w: %s", algo.ErrEdgeNotFound, id)
	}
	return r.walkGraph.GetEdgeCost(refs[0])
}

// close
func (r *Router) Close() {}
