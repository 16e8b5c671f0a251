package router

import (
	"github.com/safestride/routing/router/algo"
)

// EdgeCost is the search cost of an edge with the given store record.
// Without a record the edge is assumed to be maximally unknown.
func EdgeCost(f Features, ok bool) float64 {
	if !ok {
		return algo.UNKNOWN_EDGE_COST
	}
	return 1 - f.SafetyScore()
}

// reweight copies safety scores onto the search graph. A nil ids refreshes
// every graph edge; otherwise only the graph edges of the given store ids.
// Failures are per edge: a failed edge falls back to the unknown cost so it
// never keeps a cost from before the change, and the rest continues.
func (r *Router) reweight(ids []EdgeID) (updated, failed int) {
	apply := func(id EdgeID, ref algo.EdgeRef) {
		cost := EdgeCost(r.store.Lookup(id))
		if err := r.walkGraph.SetEdgeCost(ref, cost); err != nil {
			log.Warnf("failed to set cost %v of edge %s, falling back to %v: %v", cost, id, algo.UNKNOWN_EDGE_COST, err)
			if err := r.walkGraph.SetEdgeCost(ref, algo.UNKNOWN_EDGE_COST); err != nil {
				log.Errorf("failed to reset cost of edge %s: %v", id, err)
			}
			failed++
			return
		}
		updated++
	}
	if ids == nil {
		r.walkGraph.Edges(func(ref algo.EdgeRef, _, _ int, id EdgeID) {
			apply(id, ref)
		})
	} else {
		for _, id := range ids {
			refs, ok := r.edgeRefs[id]
			if !ok {
				log.Debugf("edge %s is not in the search graph", id)
				continue
			}
			for _, ref := range refs {
				apply(id, ref)
			}
		}
	}
	if failed > 0 {
		log.Warnf("reweight finished with %d failed edges, %d updated", failed, updated)
	}
	return
}
