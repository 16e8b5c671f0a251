package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rotisserie/eris"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1 "github.com/safestride/routing/api/saferoute/v1"
	"github.com/safestride/routing/api/saferoute/v1/saferoutev1connect"
	"github.com/safestride/routing/classifier"
	"github.com/safestride/routing/geocoder"
	"github.com/safestride/routing/router"
	rgeo "github.com/safestride/routing/router/geo"
	"github.com/safestride/routing/store"
)

var errDestinationNotFound = errors.New("destination not found")

// toConnectError maps component errors to connect codes.
func toConnectError(err error) error {
	var ce *connect.Error
	switch {
	case errors.As(err, &ce):
		return ce
	case errors.Is(err, router.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case eris.Is(err, geocoder.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, errDestinationNotFound)
	case errors.Is(err, router.ErrNoPathFound), errors.Is(err, router.ErrNodeResolutionFailed):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func checkLatLng(name string, p *v1.LatLng) error {
	if p == nil {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("missing %s", name))
	}
	if !rgeo.ValidLatLon(p.Lat, p.Lon) {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s: (%v, %v)", name, p.Lat, p.Lon))
	}
	return nil
}

type SafeRouteServer struct {
	saferoutev1connect.UnimplementedSafeRouteServiceHandler
	app *App

	// serving when true, requests wait while false
	ok bool
	// guards ok
	cond *sync.Cond
}

func NewSafeRouteServer(app *App) *SafeRouteServer {
	return &SafeRouteServer{
		app: app,
		ok:  true, cond: sync.NewCond(&sync.Mutex{})}
}

// wait blocks while the service is suspended.
func (s *SafeRouteServer) wait() {
	s.cond.L.Lock()
	for !s.ok {
		s.cond.Wait()
	}
	s.cond.L.Unlock()
}

func (s *SafeRouteServer) GetSafeRoute(
	ctx context.Context,
	req *connect.Request[v1.GetSafeRouteRequest],
) (res *connect.Response[v1.GetSafeRouteResponse], err error) {
	s.wait()
	start := time.Now()
	routeRequestsTotal.Inc()
	defer func() {
		routeDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000)
		if err != nil {
			routeFailuresTotal.WithLabelValues(connect.CodeOf(err).String()).Inc()
		}
	}()

	in := req.Msg
	if err := checkLatLng("origin", in.Origin); err != nil {
		return nil, err
	}
	var dest *v1.LatLng
	switch {
	case in.DestinationPoint != nil:
		if err := checkLatLng("destination point", in.DestinationPoint); err != nil {
			return nil, err
		}
		dest = in.DestinationPoint
	case strings.TrimSpace(in.Destination) != "":
		lat, lon, err := s.app.geocoder.Resolve(ctx, in.Destination)
		if err != nil {
			log.Debugf("geocode %q failed: %v", in.Destination, err)
			return nil, toConnectError(err)
		}
		dest = &v1.LatLng{Lat: lat, Lon: lon}
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("missing destination"))
	}

	log.Debugf("Search safe route from (%v, %v) to (%v, %v)", in.Origin.Lat, in.Origin.Lon, dest.Lat, dest.Lon)
	route, err := s.app.router.SearchWalking(ctx,
		router.LatLon{Lat: in.Origin.Lat, Lon: in.Origin.Lon},
		router.LatLon{Lat: dest.Lat, Lon: dest.Lon},
	)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.GetSafeRouteResponse{
		Route: lo.Map(route.Path, func(p router.LatLon, _ int) *v1.LatLng {
			return &v1.LatLng{Lat: p.Lat, Lon: p.Lon}
		}),
		EdgeIds: lo.Map(route.Edges, func(id router.EdgeID, _ int) string {
			return string(id)
		}),
		Cost:        route.Cost,
		Destination: dest,
	}), nil
}

// ReportIncident classifies and stores the report, then queues the graph
// update. It answers before the update is applied.
func (s *SafeRouteServer) ReportIncident(
	ctx context.Context,
	req *connect.Request[v1.ReportIncidentRequest],
) (*connect.Response[v1.ReportIncidentResponse], error) {
	s.wait()
	in := req.Msg
	if err := checkLatLng("location", &v1.LatLng{Lat: in.Lat, Lon: in.Lon}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("missing transcript"))
	}

	category := classifier.ClassifyWithTimeout(ctx, s.app.classifier, in.Transcript, s.app.cfg.Classifier.Timeout)
	incidentsReportedTotal.WithLabelValues(category).Inc()

	report := &router.IncidentReport{
		ID:         uuid.NewString(),
		Transcript: in.Transcript,
		Category:   category,
		Lat:        in.Lat,
		Lon:        in.Lon,
		ReportedBy: in.ReportedBy,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.app.store.SaveIncidentReport(ctx, report); err != nil {
		return nil, toConnectError(err)
	}

	queued := true
	_, err := s.app.queue.Enqueue(router.IncidentJob{
		ReportID: report.ID,
		Category: category,
		Lat:      in.Lat,
		Lon:      in.Lon,
		Enqueued: time.Now(),
	})
	switch {
	case errors.Is(err, router.ErrQueueFull):
		log.Warnf("incident queue full, report %s stored without graph update", report.ID)
		queued = false
	case err != nil:
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}
	queueDepth.Set(float64(s.app.queue.Len()))
	log.Infof("incident %s classified as %s at (%v, %v)", report.ID, category, in.Lat, in.Lon)

	return connect.NewResponse(&v1.ReportIncidentResponse{
		ReportId: report.ID,
		Category: category,
		Queued:   queued,
	}), nil
}

func (s *SafeRouteServer) GetEdgeCosts(
	ctx context.Context,
	req *connect.Request[v1.GetEdgeCostsRequest],
) (*connect.Response[v1.GetEdgeCostsResponse], error) {
	out := &v1.GetEdgeCostsResponse{}
	for _, id := range req.Msg.Ids {
		cost, err := s.app.router.GetEdgeCost(router.EdgeID(id))
		if err != nil {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		c := &v1.EdgeCost{Id: id, Cost: cost}
		if f, ok := s.app.router.Store().Lookup(router.EdgeID(id)); ok {
			c.Found = true
			c.CrimeScore = f.CrimeScore
			c.FootTraffic = f.FootTraffic
			c.Lighting = f.Lighting
			c.InstitutionScore = f.InstitutionScore
			c.SafetyScore = f.SafetyScore()
		}
		out.Costs = append(out.Costs, c)
	}
	return connect.NewResponse(out), nil
}

func (s *SafeRouteServer) ListCrimes(
	ctx context.Context,
	req *connect.Request[v1.ListCrimesRequest],
) (*connect.Response[v1.ListCrimesResponse], error) {
	records, err := s.app.store.FetchAllCrimeRecords(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	total := len(records)
	if limit := int(req.Msg.Limit); limit > 0 && limit < total {
		records = records[:limit]
	}
	return connect.NewResponse(&v1.ListCrimesResponse{
		Crimes: lo.Map(records, func(r router.CrimeRecord, _ int) *v1.Crime {
			return &v1.Crime{Lat: r.Lat, Lon: r.Lon, Category: r.Category}
		}),
		Total: int32(total),
	}), nil
}

// ListIncidents returns reports newest first, optionally only those within
// RadiusKm of Near.
func (s *SafeRouteServer) ListIncidents(
	ctx context.Context,
	req *connect.Request[v1.ListIncidentsRequest],
) (*connect.Response[v1.ListIncidentsResponse], error) {
	in := req.Msg
	nearby := in.Near != nil && in.RadiusKm > 0
	if nearby {
		if err := checkLatLng("near", in.Near); err != nil {
			return nil, err
		}
	}
	limit := int(in.Limit)
	if nearby {
		limit = 0
	}
	reports, err := s.app.store.ListIncidentReports(ctx, limit)
	if err != nil {
		return nil, toConnectError(err)
	}
	if nearby {
		center := orb.Point{in.Near.Lon, in.Near.Lat}
		reports = lo.Filter(reports, func(r store.IncidentEntry, _ int) bool {
			return geo.Distance(center, orb.Point{r.Lon, r.Lat}) <= in.RadiusKm*1000
		})
		if limit := int(in.Limit); limit > 0 && limit < len(reports) {
			reports = reports[:limit]
		}
	}
	return connect.NewResponse(&v1.ListIncidentsResponse{
		Incidents: lo.Map(reports, func(r store.IncidentEntry, _ int) *v1.Incident {
			return &v1.Incident{
				Id:           r.ID,
				Transcript:   r.Transcript,
				Category:     r.Category,
				Lat:          r.Lat,
				Lon:          r.Lon,
				ReportedBy:   r.ReportedBy,
				Timestamp:    timestamppb.New(r.Timestamp),
				EdgesUpdated: int32(r.EdgesUpdated()),
			}
		}),
	}), nil
}

func (s *SafeRouteServer) Health(
	ctx context.Context,
	req *connect.Request[v1.HealthRequest],
) (*connect.Response[v1.HealthResponse], error) {
	s.cond.L.Lock()
	suspended := !s.ok
	s.cond.L.Unlock()
	status := "ok"
	if suspended {
		status = "suspended"
	}
	return connect.NewResponse(&v1.HealthResponse{
		Status:     status,
		Place:      s.app.router.Place(),
		Nodes:      int32(s.app.router.NodeCount()),
		Edges:      int32(s.app.router.Store().Len()),
		QueueDepth: int32(s.app.queue.Len()),
		Suspended:  suspended,
	}), nil
}

// Suspend makes new requests wait until Resume.
func (s *SafeRouteServer) Suspend() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.ok = false
}

func (s *SafeRouteServer) Resume() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.ok = true
	s.cond.Broadcast()
}

func (s *SafeRouteServer) Close() {
	s.app.Close()
}
