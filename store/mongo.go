package store

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safestride/routing/router"
)

const connectTimeout = 10 * time.Second

type incidentDocument struct {
	ID         string    `bson:"_id"`
	Transcript string    `bson:"transcript"`
	Category   string    `bson:"category"`
	Location   string    `bson:"location"` // WKT POINT (lon lat)
	Lat        float64   `bson:"lat"`
	Lon        float64   `bson:"lon"`
	ReportedBy string    `bson:"reported_by,omitempty"`
	Timestamp  time.Time `bson:"timestamp"`
}

// appliedDocument is a row of the applied collection, keyed by report id.
type appliedDocument struct {
	ReportID     string    `bson:"_id"`
	EdgesUpdated int       `bson:"edges_updated"`
	AppliedAt    time.Time `bson:"applied_at"`
}

func toIncidentDocument(r *router.IncidentReport) incidentDocument {
	return incidentDocument{
		ID:         r.ID,
		Transcript: r.Transcript,
		Category:   r.Category,
		Location:   wkt.MarshalString(orb.Point{r.Lon, r.Lat}),
		Lat:        r.Lat,
		Lon:        r.Lon,
		ReportedBy: r.ReportedBy,
		Timestamp:  r.Timestamp.UTC(),
	}
}

func (d incidentDocument) report() router.IncidentReport {
	return router.IncidentReport{
		ID:         d.ID,
		Transcript: d.Transcript,
		Category:   d.Category,
		Lat:        d.Lat,
		Lon:        d.Lon,
		ReportedBy: d.ReportedBy,
		Timestamp:  d.Timestamp,
	}
}

// MongoStore reads crimes from and writes incident reports to MongoDB.
// Applications of reports live in "{incidents}_applied" so report documents
// are insert-only.
type MongoStore struct {
	client    *mongo.Client
	crimes    *mongo.Collection
	incidents *mongo.Collection
	applied   *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri string, crimes, incidents Namespace) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, eris.Wrap(err, "store: connect mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, eris.Wrap(err, "store: ping mongo")
	}
	log.Infof("connected to mongo, crimes in %v, incidents in %v", crimes, incidents)
	return NewMongoStoreWithClient(client, crimes, incidents), nil
}

func NewMongoStoreWithClient(client *mongo.Client, crimes, incidents Namespace) *MongoStore {
	return &MongoStore{
		client:    client,
		crimes:    client.Database(crimes.DB).Collection(crimes.Coll),
		incidents: client.Database(incidents.DB).Collection(incidents.Coll),
		applied:   client.Database(incidents.DB).Collection(incidents.Coll + "_applied"),
	}
}

func (s *MongoStore) FetchAllCrimeRecords(ctx context.Context) ([]router.CrimeRecord, error) {
	opts := options.Find().SetProjection(bson.M{"Location": 1, "CRIMETYPE": 1})
	cur, err := s.crimes.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, eris.Wrap(err, "store: find crimes")
	}
	defer cur.Close(ctx)
	docs := make([]crimeDocument, 0)
	for cur.Next(ctx) {
		var d crimeDocument
		if err := cur.Decode(&d); err != nil {
			log.Warnf("skip undecodable crime document: %v", err)
			continue
		}
		docs = append(docs, d)
	}
	if err := cur.Err(); err != nil {
		return nil, eris.Wrap(err, "store: iterate crimes")
	}
	records := crimesFromDocuments(docs)
	log.Infof("fetched %d crime records from %s", len(records), s.crimes.Name())
	return records, nil
}

func (s *MongoStore) SaveIncidentReport(ctx context.Context, report *router.IncidentReport) error {
	if report == nil || report.ID == "" {
		return eris.New("store: incident report without id")
	}
	if _, err := s.incidents.InsertOne(ctx, toIncidentDocument(report)); err != nil {
		return eris.Wrapf(err, "store: insert incident %s", report.ID)
	}
	return nil
}

func (s *MongoStore) RecordIncidentApplied(ctx context.Context, app router.IncidentApplication) error {
	n, err := s.incidents.CountDocuments(ctx, bson.M{"_id": app.ReportID}, options.Count().SetLimit(1))
	if err != nil {
		return eris.Wrapf(err, "store: find incident %s", app.ReportID)
	}
	if n == 0 {
		return eris.Wrapf(ErrIncidentNotFound, "store: record application of %s", app.ReportID)
	}
	doc := appliedDocument{
		ReportID:     app.ReportID,
		EdgesUpdated: app.EdgesUpdated,
		AppliedAt:    app.AppliedAt.UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.applied.ReplaceOne(ctx, bson.M{"_id": app.ReportID}, doc, opts); err != nil {
		return eris.Wrapf(err, "store: record application of %s", app.ReportID)
	}
	return nil
}

func (s *MongoStore) ListIncidentReports(ctx context.Context, limit int) ([]IncidentEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.incidents.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, eris.Wrap(err, "store: find incidents")
	}
	defer cur.Close(ctx)
	out := make([]IncidentEntry, 0)
	for cur.Next(ctx) {
		var d incidentDocument
		if err := cur.Decode(&d); err != nil {
			return nil, eris.Wrap(err, "store: decode incident")
		}
		out = append(out, IncidentEntry{IncidentReport: d.report()})
	}
	if err := cur.Err(); err != nil {
		return nil, eris.Wrap(err, "store: iterate incidents")
	}
	if err := s.joinApplied(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// joinApplied fills in the applications of entries.
func (s *MongoStore) joinApplied(ctx context.Context, entries []IncidentEntry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	cur, err := s.applied.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return eris.Wrap(err, "store: find applied incidents")
	}
	defer cur.Close(ctx)
	applied := make(map[string]*router.IncidentApplication)
	for cur.Next(ctx) {
		var d appliedDocument
		if err := cur.Decode(&d); err != nil {
			return eris.Wrap(err, "store: decode applied incident")
		}
		applied[d.ReportID] = &router.IncidentApplication{
			ReportID:     d.ReportID,
			EdgesUpdated: d.EdgesUpdated,
			AppliedAt:    d.AppliedAt,
		}
	}
	if err := cur.Err(); err != nil {
		return eris.Wrap(err, "store: iterate applied incidents")
	}
	for i := range entries {
		entries[i].Applied = applied[entries[i].ID]
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
