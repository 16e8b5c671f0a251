// Package store persists crime records and incident reports.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/safestride/routing/router"
	"github.com/safestride/routing/router/geo"
)

var log = logrus.WithField("module", "store")

var ErrIncidentNotFound = eris.New("incident report not found")

// Store is the document store behind the service.
type Store interface {
	FetchAllCrimeRecords(ctx context.Context) ([]router.CrimeRecord, error)
	SaveIncidentReport(ctx context.Context, report *router.IncidentReport) error
	// RecordIncidentApplied stores the outcome of applying a saved report next
	// to it. The report is left untouched, a later record replaces an earlier one.
	RecordIncidentApplied(ctx context.Context, app router.IncidentApplication) error
	// ListIncidentReports returns the latest reports first, at most limit (<= 0 for all).
	ListIncidentReports(ctx context.Context, limit int) ([]IncidentEntry, error)
	Close(ctx context.Context) error
}

// IncidentEntry is a stored report joined with its application, which is nil
// until the incident worker has applied the report.
type IncidentEntry struct {
	router.IncidentReport
	Applied *router.IncidentApplication
}

func (e IncidentEntry) EdgesUpdated() int {
	if e.Applied == nil {
		return 0
	}
	return e.Applied.EdgesUpdated
}

func sortEntries(entries []IncidentEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID < entries[j].ID
	})
}

// Namespace is a "{db}.{col}" collection path.
type Namespace struct {
	DB   string
	Coll string
}

func ParseNamespace(s string) (Namespace, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Namespace{}, eris.Errorf("invalid collection path %q, want {db}.{col}", s)
	}
	return Namespace{DB: parts[0], Coll: parts[1]}, nil
}

func (n Namespace) String() string {
	return n.DB + "." + n.Coll
}

// crimeDocument is a row of the crimes collection.
type crimeDocument struct {
	Location  string `bson:"Location" json:"Location"`
	CrimeType string `bson:"CRIMETYPE" json:"CRIMETYPE"`
}

// ParseCrime converts a WKT "POINT (lon lat)" location and a category into a
// crime record. Rows without a usable location are rejected.
func ParseCrime(location, category string) (router.CrimeRecord, bool) {
	p, err := wkt.UnmarshalPoint(strings.TrimSpace(location))
	if err != nil {
		return router.CrimeRecord{}, false
	}
	lon, lat := p[0], p[1]
	if !geo.ValidLatLon(lat, lon) {
		return router.CrimeRecord{}, false
	}
	return router.CrimeRecord{Lat: lat, Lon: lon, Category: strings.TrimSpace(category)}, true
}

func crimesFromDocuments(docs []crimeDocument) []router.CrimeRecord {
	records := make([]router.CrimeRecord, 0, len(docs))
	dropped := 0
	for _, d := range docs {
		rec, ok := ParseCrime(d.Location, d.CrimeType)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		log.Warnf("dropped %d crime records without coordinates", dropped)
	}
	return records
}

// MemoryStore keeps everything in process. It backs tests and offline runs.
type MemoryStore struct {
	mu        sync.RWMutex
	crimes    []router.CrimeRecord
	incidents map[string]router.IncidentReport
	applied   map[string]router.IncidentApplication
}

func NewMemoryStore(crimes []router.CrimeRecord) *MemoryStore {
	return &MemoryStore{
		crimes:    crimes,
		incidents: make(map[string]router.IncidentReport),
		applied:   make(map[string]router.IncidentApplication),
	}
}

func (s *MemoryStore) FetchAllCrimeRecords(ctx context.Context) ([]router.CrimeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]router.CrimeRecord, len(s.crimes))
	copy(out, s.crimes)
	return out, nil
}

func (s *MemoryStore) SaveIncidentReport(ctx context.Context, report *router.IncidentReport) error {
	if report == nil || report.ID == "" {
		return eris.New("store: incident report without id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incidents[report.ID]; ok {
		return eris.Errorf("store: duplicated incident %s", report.ID)
	}
	s.incidents[report.ID] = *report
	return nil
}

func (s *MemoryStore) RecordIncidentApplied(ctx context.Context, app router.IncidentApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incidents[app.ReportID]; !ok {
		return eris.Wrapf(ErrIncidentNotFound, "store: record application of %s", app.ReportID)
	}
	s.applied[app.ReportID] = app
	return nil
}

func (s *MemoryStore) ListIncidentReports(ctx context.Context, limit int) ([]IncidentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]IncidentEntry, 0, len(s.incidents))
	for id, r := range s.incidents {
		e := IncidentEntry{IncidentReport: r}
		if app, ok := s.applied[id]; ok {
			e.Applied = &app
		}
		out = append(out, e)
	}
	sortEntries(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
