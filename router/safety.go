package router

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// safety score blend, higher is safer
	CRIME_WEIGHT        = 0.4
	FOOT_TRAFFIC_WEIGHT = 0.2
	LIGHTING_WEIGHT     = 0.2
	INSTITUTION_WEIGHT  = 0.2

	// buffer of the one-time crime join, projected units
	CRIME_BUFFER_RADIUS = 25

	// proximity radius of online incident updates, projected units
	INCIDENT_RADIUS = 30

	// crime score bump per incident, scaled by severity
	LEARNING_RATE = 0.2

	DEFAULT_SEVERITY = 0.4
	UNKNOWN_CATEGORY = "UNKNOWN"
)

// SafetyScore blends the feature scores of an edge.
func SafetyScore(f Features) float64 {
	return CRIME_WEIGHT*(1-f.CrimeScore) +
		FOOT_TRAFFIC_WEIGHT*f.FootTraffic +
		LIGHTING_WEIGHT*f.Lighting +
		INSTITUTION_WEIGHT*f.InstitutionScore
}

var defaultSeverities = map[string]float64{
	"FELONY ASSAULT":      0.9,
	"PETTY THEFT":         0.3,
	"BURG - RESIDENTIAL":  0.7,
	"MISDEMEANOR ASSAULT": 0.5,
	"ARSON":               0.8,
	"ROBBERY":             0.85,
	"NARCOTICS":           0.4,
	"KIDNAPPING":          0.95,
	"FORCIBLE RAPE":       1.0,
	"HOMICIDE":            1.0,
	"CHILD ABUSE":         0.85,
	"OTHER":               0.4,
}

// SeverityModel maps crime categories to a severity in [0,1]. It is
// immutable once created and safe for concurrent use.
type SeverityModel struct {
	scores   map[string]float64
	fallback float64
}

func DefaultSeverityModel() *SeverityModel {
	return NewSeverityModel(defaultSeverities, DEFAULT_SEVERITY)
}

// NewSeverityModel copies scores, normalizing categories to upper case and
// clamping values into [0,1].
func NewSeverityModel(scores map[string]float64, fallback float64) *SeverityModel {
	m := &SeverityModel{
		scores:   make(map[string]float64, len(scores)),
		fallback: lo.Clamp(fallback, 0, 1),
	}
	for category, score := range scores {
		m.scores[normalizeCategory(category)] = lo.Clamp(score, 0, 1)
	}
	return m
}

func normalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}

// Severity returns the severity of category, the fallback for unknown ones.
func (m *SeverityModel) Severity(category string) float64 {
	if s, ok := m.scores[normalizeCategory(category)]; ok {
		return s
	}
	return m.fallback
}
