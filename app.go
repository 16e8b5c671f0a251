package main

import (
	"context"
	"os"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/safestride/routing/classifier"
	"github.com/safestride/routing/events"
	"github.com/safestride/routing/geocoder"
	"github.com/safestride/routing/network"
	"github.com/safestride/routing/router"
	"github.com/safestride/routing/store"
)

// App holds the long-lived components shared by the server and the
// benchmark.
type App struct {
	cfg        *Config
	router     *router.Router
	store      store.Store
	geocoder   geocoder.Geocoder
	classifier classifier.Classifier
	events     *events.Publisher
	queue      *router.IncidentQueue
	redis      *redis.Client
}

// crimeFileStore serves crimes from a file export and incident reports from
// the wrapped store.
type crimeFileStore struct {
	store.Store
	crimes []router.CrimeRecord
}

func (s *crimeFileStore) FetchAllCrimeRecords(context.Context) ([]router.CrimeRecord, error) {
	return slices.Clone(s.crimes), nil
}

func openStore(ctx context.Context, cfg *Config) (store.Store, error) {
	crimesPath, err := NewPath(cfg.Mongo.Crimes)
	if err != nil {
		return nil, eris.Wrap(err, "invalid crimes path")
	}
	var crimes []router.CrimeRecord
	if crimesPath.IsFile() {
		if crimes, err = store.LoadCrimeFile(crimesPath.File); err != nil {
			return nil, err
		}
	}
	if cfg.Offline || cfg.Mongo.URI == "" {
		log.Info("no document store configured, incident reports are kept in memory")
		return store.NewMemoryStore(crimes), nil
	}

	incidentsPath, err := NewPath(cfg.Mongo.Incidents)
	if err != nil || incidentsPath == nil || incidentsPath.IsFile() {
		return nil, eris.Errorf("invalid incidents collection %q, want {db}.{col}", cfg.Mongo.Incidents)
	}
	crimesNS := incidentsPath.Namespace()
	crimesNS.Coll = "crimes"
	if crimesPath != nil && !crimesPath.IsFile() {
		crimesNS = crimesPath.Namespace()
	}
	s, err := store.NewMongoStore(ctx, cfg.Mongo.URI, crimesNS, incidentsPath.Namespace())
	if err != nil {
		return nil, err
	}
	if crimesPath.IsFile() {
		return &crimeFileStore{Store: s, crimes: crimes}, nil
	}
	return s, nil
}

func loadCrimeScores(r *router.Router, snapshotPath string, crimes []router.CrimeRecord) {
	if snapshotPath != "" {
		if _, err := os.Stat(snapshotPath); err == nil {
			n, err := r.LoadSnapshot(snapshotPath)
			if err == nil {
				log.Infof("restored %d edges from snapshot %s", n, snapshotPath)
				return
			}
			log.Warnf("failed to load snapshot %s, rebuilding crime scores: %v", snapshotPath, err)
		}
	}
	stats := r.BuildCrimeScores(crimes)
	log.Infof("crime scores built: %+v", stats)
}

func NewApp(ctx context.Context, cfg *Config) (*App, error) {
	s, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app := &App{cfg: cfg, store: s}

	var (
		net    *network.Network
		crimes []router.CrimeRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		net, err = network.NewGeoJSONSource(cfg.Network.Path).Load(gctx, cfg.Network.Place)
		return err
	})
	g.Go(func() error {
		var err error
		crimes, err = s.FetchAllCrimeRecords(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		app.Close()
		return nil, err
	}

	app.router, err = router.New(net, router.WithSeed(cfg.Seed))
	if err != nil {
		app.Close()
		return nil, err
	}
	loadCrimeScores(app.router, cfg.Snapshot.Path, crimes)

	geoOpts := []geocoder.Option{
		geocoder.WithBaseURL(cfg.Geocoder.BaseURL),
		geocoder.WithRateLimit(cfg.Geocoder.RPS),
		geocoder.WithUserAgent(cfg.Geocoder.UserAgent),
	}
	if len(cfg.Geocoder.Countries) > 0 {
		geoOpts = append(geoOpts, geocoder.WithCountryCodes(cfg.Geocoder.Countries...))
	}
	if cfg.Redis.Addr != "" && !cfg.Offline {
		rc, err := geocoder.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warnf("geocode cache disabled: %v", err)
		} else {
			app.redis = rc
			geoOpts = append(geoOpts, geocoder.WithCache(geocoder.NewRedisCache(rc, cfg.Redis.TTL)))
		}
	}
	app.geocoder = geocoder.NewNominatim(geoOpts...)

	if cfg.Anthropic.Key != "" && !cfg.Offline {
		app.classifier = classifier.NewClaude(cfg.Anthropic.Key,
			classifier.WithModel(cfg.Anthropic.Model),
			classifier.WithRateLimit(cfg.Anthropic.RPS),
		)
	} else {
		log.Info("no anthropic key, classifying incidents by keyword")
		app.classifier = classifier.Keyword{}
	}

	if cfg.NATS.URL != "" && !cfg.Offline {
		p, err := events.Connect(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			log.Warnf("incident events disabled: %v", err)
		} else {
			app.events = p
		}
	}

	app.startQueue()
	return app, nil
}

// startQueue starts the incident worker. Hooks run on the worker goroutine
// in job order.
func (a *App) startQueue() {
	var q *router.IncidentQueue
	hooks := []router.AppliedFunc{
		a.recordApplied,
		a.events.Hook(),
	}
	if a.cfg.Snapshot.Path != "" {
		hooks = append(hooks, a.saveSnapshot)
	}
	hooks = append(hooks, metricsHook(func() int { return q.Len() }))
	q = router.NewIncidentQueue(a.router, a.cfg.Queue.Size, hooks...)
	q.Start()
	a.queue = q
}

func (a *App) recordApplied(res router.IncidentJobResult) {
	if res.Err != nil || res.Result == nil || res.Job.ReportID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := a.store.RecordIncidentApplied(ctx, router.IncidentApplication{
		ReportID:     res.Job.ReportID,
		EdgesUpdated: len(res.Result.Bumps),
		AppliedAt:    time.Now().UTC(),
	})
	if err != nil && !eris.Is(err, store.ErrIncidentNotFound) {
		log.Warnf("failed to record applied incident %s: %v", res.Job.ReportID, err)
	}
}

func (a *App) saveSnapshot(res router.IncidentJobResult) {
	if res.Err != nil || res.Result == nil || len(res.Result.Bumps) == 0 {
		return
	}
	if err := a.router.SaveSnapshot(a.cfg.Snapshot.Path); err != nil {
		log.Warnf("failed to save snapshot: %v", err)
	}
}

// Close drains the incident queue before releasing the other components.
func (a *App) Close() {
	if a.queue != nil {
		a.queue.Close()
	}
	a.events.Close()
	if a.redis != nil {
		a.redis.Close()
	}
	if a.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.store.Close(ctx); err != nil {
			log.Warnf("failed to close store: %v", err)
		}
	}
	if a.router != nil {
		a.router.Close()
	}
}
