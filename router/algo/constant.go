package algo

import (
	"errors"
	"math"
)

const (
	// search cost of an edge whose weight is unknown (worst case)
	UNKNOWN_EDGE_COST = 1.0
	// edge costs live in [0, MAX_EDGE_COST]
	MAX_EDGE_COST = 2.0
)

var (
	// INF marks an unreachable target
	INF = math.Inf(1)

	// the referenced edge does not exist
	ErrEdgeNotFound = errors.New("edge not found in search graph")
	// Dijkstra requires finite non-negative costs
	ErrInvalidEdgeCost = errors.New("edge cost should be finite and non-negative")
)
