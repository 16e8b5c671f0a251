package router

import (
	"math"
	"math/rand"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"

	"github.com/safestride/routing/router/geo"
)

// ranges of the mocked auxiliary features
var (
	footTrafficRange = [2]float64{0.2, 1.0}
	lightingRange    = [2]float64{0.3, 1.0}
	institutionRange = [2]float64{0.4, 1.0}
)

// clampFeatures bounds the input features of f to their ranges. Rows with a
// non-finite feature are rejected.
func clampFeatures(f Features) (Features, bool) {
	for _, v := range []float64{f.CrimeScore, f.FootTraffic, f.Lighting, f.InstitutionScore} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Features{}, false
		}
	}
	return Features{
		CrimeScore:       lo.Clamp(f.CrimeScore, 0, 1),
		FootTraffic:      lo.Clamp(f.FootTraffic, footTrafficRange[0], footTrafficRange[1]),
		Lighting:         lo.Clamp(f.Lighting, lightingRange[0], lightingRange[1]),
		InstitutionScore: lo.Clamp(f.InstitutionScore, institutionRange[0], institutionRange[1]),
	}, true
}

// EdgeStore owns the feature rows of all street edges. A row is always read
// and written whole under the lock, so readers never see a half-updated row.
type EdgeStore struct {
	mu    *xsync.RBMutex
	edges map[EdgeID]*StreetEdge
	// insertion order, which is the network source order
	order []EdgeID
	crs   geo.CRS
}

// CrimeBump records one crime score change made by an incident.
type CrimeBump struct {
	ID     EdgeID
	Before float64
	After  float64
}

func NewEdgeStore(crs geo.CRS) *EdgeStore {
	return &EdgeStore{
		mu:    xsync.NewRBMutex(),
		edges: make(map[EdgeID]*StreetEdge),
		order: make([]EdgeID, 0),
		crs:   crs,
	}
}

// add inserts e, replacing nothing: a duplicate id is reported as false.
func (s *EdgeStore) add(e *StreetEdge) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.edges[e.ID]; ok {
		return false
	}
	e.recompute()
	s.edges[e.ID] = e
	s.order = append(s.order, e.ID)
	return true
}

func (s *EdgeStore) Len() int {
	token := s.mu.RLock()
	defer s.mu.RUnlock(token)
	return len(s.order)
}

func (s *EdgeStore) IDs() []EdgeID {
	token := s.mu.RLock()
	defer s.mu.RUnlock(token)
	ids := make([]EdgeID, len(s.order))
	copy(ids, s.order)
	return ids
}

// Lookup returns a copy of the features of id, false if the store has no such edge.
func (s *EdgeStore) Lookup(id EdgeID) (Features, bool) {
	token := s.mu.RLock()
	defer s.mu.RUnlock(token)
	e, ok := s.edges[id]
	if !ok {
		return Features{}, false
	}
	return e.Features, true
}

// Edge returns a copy of the edge record. Geometry slices are shared and
// must not be modified.
func (s *EdgeStore) Edge(id EdgeID) (StreetEdge, bool) {
	token := s.mu.RLock()
	defer s.mu.RUnlock(token)
	e, ok := s.edges[id]
	if !ok {
		return StreetEdge{}, false
	}
	return *e, true
}

func (s *EdgeStore) CRS() geo.CRS {
	token := s.mu.RLock()
	defer s.mu.RUnlock(token)
	return s.crs
}

func (s *EdgeStore) assignCRS(crs geo.CRS) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crs = crs
}

// seedFeatures draws the mocked auxiliary features in store order, one
// feature column at a time, so a seed always yields the same values.
func (s *EdgeStore) seedFeatures(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uniform := func(r [2]float64) float64 {
		return r[0] + rng.Float64()*(r[1]-r[0])
	}
	for _, id := range s.order {
		s.edges[id].FootTraffic = uniform(footTrafficRange)
	}
	for _, id := range s.order {
		s.edges[id].Lighting = uniform(lightingRange)
	}
	for _, id := range s.order {
		e := s.edges[id]
		e.InstitutionScore = uniform(institutionRange)
		e.recompute()
	}
}

// setCrimeScores replaces the crime score of every edge, edges missing from
// scores get 0, and recomputes all safety scores.
func (s *EdgeStore) setCrimeScores(scores map[EdgeID]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		e := s.edges[id]
		e.CrimeScore = scores[id]
		e.recompute()
	}
}

// bumpCrime raises the crime score of each edge in ids by delta, saturating
// at 1, and recomputes their safety scores. Unknown ids are skipped.
func (s *EdgeStore) bumpCrime(ids []EdgeID, delta float64) []CrimeBump {
	s.mu.Lock()
	defer s.mu.Unlock()
	bumps := make([]CrimeBump, 0, len(ids))
	for _, id := range ids {
		e, ok := s.edges[id]
		if !ok {
			log.Warnf("skip crime bump of unknown edge %s", id)
			continue
		}
		before := e.CrimeScore
		e.CrimeScore = min(before+delta, 1.0)
		e.recompute()
		bumps = append(bumps, CrimeBump{ID: id, Before: before, After: e.CrimeScore})
	}
	return bumps
}

// setFeatures overwrites the input features of id and recomputes its safety score.
func (s *EdgeStore) setFeatures(id EdgeID, f Features) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.edges[id]
	if !ok {
		return false
	}
	e.Features = f
	e.recompute()
	return true
}
