package router

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/samber/lo"

	"github.com/safestride/routing/router/geo"
)

// IncidentResult describes one applied incident.
type IncidentResult struct {
	Category string
	Severity float64
	Bumps    []CrimeBump
}

// ApplyIncident raises the crime score of every edge within INCIDENT_RADIUS of
// the incident, then refreshes their safety scores and search costs. It
// returns the number of edges touched, 0 being a valid outcome.
func (r *Router) ApplyIncident(category string, lat, lon float64) (int, error) {
	res, err := r.applyIncident(category, lat, lon)
	if err != nil {
		return 0, err
	}
	return len(res.Bumps), nil
}

func (r *Router) applyIncident(category string, lat, lon float64) (*IncidentResult, error) {
	if !geo.ValidLatLon(lat, lon) {
		return nil, fmt.Errorf("%w: incident at (%v, %v)", ErrInvalidInput, lat, lon)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = UNKNOWN_CATEGORY
	}

	r.ingest.Lock()
	defer r.ingest.Unlock()

	crs := r.storeCRS()
	p, err := geo.ToCRS(orb.Point{lon, lat}, crs)
	if err != nil {
		log.Errorf("%v: %v, fall back to %v", ErrProjection, err, geo.WebMercator)
		r.store.assignCRS(geo.WebMercator)
		p, _ = geo.ToCRS(orb.Point{lon, lat}, geo.WebMercator)
	}
	// strictly closer than the radius
	hits := lo.Filter(r.lines.Within(p, INCIDENT_RADIUS), func(h geo.Hit, _ int) bool {
		return h.Distance < INCIDENT_RADIUS
	})
	ids := lo.Map(hits, func(h geo.Hit, _ int) EdgeID {
		return EdgeID(h.ID)
	})

	severity := r.severity.Severity(category)
	res := &IncidentResult{Category: category, Severity: severity}
	if len(ids) == 0 {
		log.Infof("incident %s at (%v, %v) has no nearby edge", category, lat, lon)
		res.Bumps = []CrimeBump{}
		return res, nil
	}
	res.Bumps = r.store.bumpCrime(ids, LEARNING_RATE*severity)
	r.reweight(ids)
	log.Infof(
		"incident %s (severity %.2f) at (%v, %v) updated %d edges",
		category, severity, lat, lon, len(res.Bumps),
	)
	return res, nil
}
