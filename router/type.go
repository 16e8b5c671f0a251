package router

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// EdgeID identifies a street edge as "{u}_{v}_{key}", key disambiguating
// parallel edges between the same node pair.
type EdgeID string

func NewEdgeID(u, v int64, key int) EdgeID {
	return EdgeID(fmt.Sprintf("%d_%d_%d", u, v, key))
}

type LatLon struct {
	Lat float64
	Lon float64
}

type StreetNode struct {
	ID  int64
	Lat float64
	Lon float64

	p       orb.Point // projected position
	graphID int       // node index in the search graph
}

// Features are the per-edge scores. SafetyScore is derived and only written
// by recompute.
type Features struct {
	CrimeScore       float64 // [0,1]
	FootTraffic      float64 // [0.2,1]
	Lighting         float64 // [0.3,1]
	InstitutionScore float64 // [0.4,1]

	safetyScore float64
}

func (f Features) SafetyScore() float64 {
	return f.safetyScore
}

func (f *Features) recompute() {
	f.safetyScore = SafetyScore(*f)
}

type StreetEdge struct {
	ID      EdgeID
	U, V    int64
	Key     int
	Name    string
	Highway string
	Length  float64

	// (lon, lat) geometry for rendering, nil when the source had none
	Line orb.LineString

	Features
}

// CrimeRecord is a historical crime point used to seed crime scores.
type CrimeRecord struct {
	Lat      float64
	Lon      float64
	Category string
}

// IncidentReport is a classified incident submitted by a user. It does not
// change once saved.
type IncidentReport struct {
	ID         string
	Transcript string
	Category   string
	Lat        float64
	Lon        float64
	ReportedBy string
	Timestamp  time.Time
}

// IncidentApplication is the outcome of applying a saved report to the graph.
type IncidentApplication struct {
	ReportID     string
	EdgesUpdated int
	AppliedAt    time.Time
}
