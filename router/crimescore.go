package router

import (
	"github.com/paulmach/orb"

	"github.com/safestride/routing/router/geo"
)

// CrimeScoreStats summarizes one crime score build.
type CrimeScoreStats struct {
	Records int // crime records offered
	Joined  int // records within the buffer of at least one edge
	Skipped int // records with invalid coordinates
	Edges   int // edges with at least one joined record
}

// crimeScores joins crime points with the buffered edge lines and returns the
// min-max scaled mean severity per edge. Edges without any joined record get
// no entry, which reads as 0.
func crimeScores(
	lines *geo.LineIndex, crs geo.CRS, severity *SeverityModel, records []CrimeRecord,
) (map[EdgeID]float64, CrimeScoreStats) {
	stats := CrimeScoreStats{Records: len(records)}
	sums := make(map[EdgeID]float64)
	counts := make(map[EdgeID]int)
	for _, rec := range records {
		if !geo.ValidLatLon(rec.Lat, rec.Lon) {
			stats.Skipped++
			continue
		}
		p, err := geo.ToCRS(orb.Point{rec.Lon, rec.Lat}, crs)
		if err != nil {
			stats.Skipped++
			continue
		}
		hits := lines.Within(p, CRIME_BUFFER_RADIUS)
		if len(hits) == 0 {
			continue
		}
		stats.Joined++
		s := severity.Severity(rec.Category)
		for _, h := range hits {
			id := EdgeID(h.ID)
			sums[id] += s
			counts[id]++
		}
	}
	stats.Edges = len(counts)

	means := make(map[EdgeID]float64, len(counts))
	for id, n := range counts {
		means[id] = sums[id] / float64(n)
	}
	return minMaxScale(means, len(counts) < lines.Len()), stats
}

// minMaxScale rescales values to [0,1] with one global scaler. withZero adds
// the implicit 0 of the edges that had no joined record to the fitted range.
// A constant input maps to 0.
func minMaxScale(values map[EdgeID]float64, withZero bool) map[EdgeID]float64 {
	if len(values) == 0 {
		return values
	}
	low, high := 0.0, 0.0
	first := !withZero
	for _, v := range values {
		if first {
			low, high = v, v
			first = false
			continue
		}
		low = min(low, v)
		high = max(high, v)
	}
	scaled := make(map[EdgeID]float64, len(values))
	span := high - low
	for id, v := range values {
		if span <= 0 {
			scaled[id] = 0
		} else {
			scaled[id] = (v - low) / span
		}
	}
	return scaled
}

// BuildCrimeScores computes the crime score of every edge from historical
// records, recomputes all safety scores and reweights the whole graph. It is
// serialized with incident updates.
func (r *Router) BuildCrimeScores(records []CrimeRecord) CrimeScoreStats {
	r.ingest.Lock()
	defer r.ingest.Unlock()

	crs := r.storeCRS()
	scores, stats := crimeScores(r.lines, crs, r.severity, records)
	r.store.setCrimeScores(scores)
	r.reweight(nil)
	log.Infof(
		"built crime scores from %d records: %d joined, %d skipped, %d edges scored",
		stats.Records, stats.Joined, stats.Skipped, stats.Edges,
	)
	return stats
}
