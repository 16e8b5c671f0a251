package router

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/safestride/routing/router/geo"
)

type edgeSnapshot struct {
	ID               string  `bson:"id"`
	CrimeScore       float64 `bson:"crime_score"`
	FootTraffic      float64 `bson:"foot_traffic"`
	Lighting         float64 `bson:"lighting"`
	InstitutionScore float64 `bson:"institution_score"`
}

type storeSnapshot struct {
	Place   string         `bson:"place"`
	CRS     int            `bson:"crs"`
	SavedAt time.Time      `bson:"saved_at"`
	Edges   []edgeSnapshot `bson:"edges"`
}

// MarshalSnapshot encodes the feature rows of the store as BSON. Safety
// scores are not stored, they are recomputed on load.
func (r *Router) MarshalSnapshot() ([]byte, error) {
	r.ingest.Lock()
	defer r.ingest.Unlock()
	snap := storeSnapshot{
		Place:   r.place,
		CRS:     int(r.store.CRS()),
		SavedAt: time.Now().UTC(),
		Edges:   make([]edgeSnapshot, 0, r.store.Len()),
	}
	for _, id := range r.store.IDs() {
		f, ok := r.store.Lookup(id)
		if !ok {
			continue
		}
		snap.Edges = append(snap.Edges, edgeSnapshot{
			ID:               string(id),
			CrimeScore:       f.CrimeScore,
			FootTraffic:      f.FootTraffic,
			Lighting:         f.Lighting,
			InstitutionScore: f.InstitutionScore,
		})
	}
	return bson.Marshal(snap)
}

// UnmarshalSnapshot restores feature rows from data and reweights the whole
// graph. Features are clamped to their ranges, rows with a non-finite feature
// and rows of edges unknown to this network are skipped. It returns the
// number of restored rows.
func (r *Router) UnmarshalSnapshot(data []byte) (int, error) {
	var snap storeSnapshot
	if err := bson.Unmarshal(data, &snap); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}
	crs := geo.CRS(snap.CRS)
	if crs.Defined() && !crs.Projected() {
		return 0, fmt.Errorf("%w: snapshot CRS %v is not projected", ErrInvalidInput, crs)
	}
	r.ingest.Lock()
	defer r.ingest.Unlock()
	if snap.Place != "" && snap.Place != r.place {
		log.Warnf("snapshot of %q restored into the network of %q", snap.Place, r.place)
	}
	restored, unknown, invalid := 0, 0, 0
	for _, e := range snap.Edges {
		f, ok := clampFeatures(Features{
			CrimeScore:       e.CrimeScore,
			FootTraffic:      e.FootTraffic,
			Lighting:         e.Lighting,
			InstitutionScore: e.InstitutionScore,
		})
		if !ok {
			invalid++
			continue
		}
		if r.store.setFeatures(EdgeID(e.ID), f) {
			restored++
		} else {
			unknown++
		}
	}
	if crs.Defined() {
		r.store.assignCRS(crs)
	}
	r.reweight(nil)
	if unknown > 0 {
		log.Warnf("skipped %d snapshot rows of unknown edges", unknown)
	}
	if invalid > 0 {
		log.Warnf("skipped %d snapshot rows with non-finite features", invalid)
	}
	return restored, nil
}

// SaveSnapshot writes the snapshot to path atomically.
func (r *Router) SaveSnapshot(path string) error {
	data, err := r.MarshalSnapshot()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (r *Router) LoadSnapshot(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n, err := r.UnmarshalSnapshot(data)
	if err != nil {
		return 0, err
	}
	log.Infof("restored %d edges from snapshot %s", n, path)
	return n, nil
}
