package router

import (
	"context"
	"math"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/safestride/routing/network"
	"github.com/safestride/routing/router/algo"
	"github.com/safestride/routing/router/geo"
)

const (
	lat0 = 37.80
	lon0 = -122.27
)

// testNetwork is a small street network, 4 lies north of 2:
//
//	   4
//	  / \
//	 /   \
//	1--2-->3
//
// 1-2, 1-4 and 4-3 are two-way, 2->3 is one-way and 5 is isolated.
func testNetwork() *network.Network {
	edge := func(u, v int64) network.Edge {
		return network.Edge{U: u, V: v, Length: 100}
	}
	return &network.Network{
		Place: "test",
		Nodes: []network.Node{
			{ID: 1, Lat: lat0, Lon: lon0},
			{ID: 2, Lat: lat0, Lon: lon0 + 0.001},
			{ID: 3, Lat: lat0, Lon: lon0 + 0.002},
			{ID: 4, Lat: lat0 + 0.001, Lon: lon0 + 0.001},
			{ID: 5, Lat: lat0 + 0.01, Lon: lon0 + 0.01},
		},
		Edges: []network.Edge{
			edge(1, 2), edge(2, 1),
			edge(2, 3),
			edge(1, 4), edge(4, 1),
			edge(4, 3), edge(3, 4),
		},
	}
}

// remove drops id from the store, leaving its graph edges without a record.
func (s *EdgeStore) remove(id EdgeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.edges, id)
	s.order = slices.DeleteFunc(s.order, func(o EdgeID) bool { return o == id })
}

func newTestRouter(t *testing.T, opts ...Option) *Router {
	t.Helper()
	r, err := New(testNetwork(), opts...)
	require.NoError(t, err)
	return r
}

// mercatorUnitsPerDegreeLat is the local northing scale of Web Mercator.
func mercatorUnitsPerDegreeLat(lat float64) float64 {
	return 6378137 * math.Pi / 180 / math.Cos(lat*math.Pi/180)
}

var uniformFeatures = Features{CrimeScore: 0, FootTraffic: 0.6, Lighting: 0.6, InstitutionScore: 0.6}

// setAll gives every edge the same features so that routes only depend on
// the edges changed by a test.
func setAll(r *Router, f Features) {
	for _, id := range r.store.IDs() {
		r.store.setFeatures(id, f)
	}
	r.reweight(nil)
}

func setCrime(t *testing.T, r *Router, id EdgeID, crime float64) {
	t.Helper()
	f, ok := r.store.Lookup(id)
	require.True(t, ok)
	f.CrimeScore = crime
	require.True(t, r.store.setFeatures(id, f))
	r.reweight([]EdgeID{id})
}

func assertCostsMatchStore(t *testing.T, r *Router) {
	t.Helper()
	for _, id := range r.store.IDs() {
		f, ok := r.store.Lookup(id)
		require.True(t, ok)
		cost, err := r.GetEdgeCost(id)
		require.NoError(t, err)
		assert.InDelta(t, 1-f.SafetyScore(), cost, 1e-12, "edge %s", id)
	}
}

func TestNewBuildsStoreAndGraph(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, 5, r.NodeCount())
	assert.Equal(t, 7, r.store.Len())
	assert.Equal(t, geo.WebMercator, r.store.CRS())
	assert.True(t, r.HasEdge("2_3_0"))
	assert.False(t, r.HasEdge("3_2_0"))

	for _, id := range r.store.IDs() {
		f, _ := r.store.Lookup(id)
		assert.Zero(t, f.CrimeScore)
		assert.GreaterOrEqual(t, f.FootTraffic, 0.2)
		assert.LessOrEqual(t, f.FootTraffic, 1.0)
		assert.GreaterOrEqual(t, f.Lighting, 0.3)
		assert.LessOrEqual(t, f.Lighting, 1.0)
		assert.GreaterOrEqual(t, f.InstitutionScore, 0.4)
		assert.LessOrEqual(t, f.InstitutionScore, 1.0)
	}
	assertCostsMatchStore(t, r)
}

func TestNewSkipsBrokenRecords(t *testing.T) {
	net := testNetwork()
	net.Nodes = append(net.Nodes,
		network.Node{ID: 1, Lat: 0, Lon: 0},
		network.Node{ID: 9, Lat: 91, Lon: 0},
	)
	net.Edges = append(net.Edges,
		network.Edge{U: 1, V: 2},  // duplicate
		network.Edge{U: 1, V: 42}, // unknown endpoint
		network.Edge{U: 1, V: 2, Key: 1},
	)
	r, err := New(net)
	require.NoError(t, err)
	assert.Equal(t, 5, r.NodeCount())
	assert.Equal(t, 8, r.store.Len())
	assert.True(t, r.HasEdge("1_2_1"))

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewRejectsGeographicCRS(t *testing.T) {
	_, err := New(testNetwork(), WithCRS(geo.WGS84))
	assert.ErrorIs(t, err, ErrInvalidInput)

	r, err := New(testNetwork(), WithCRS(geo.CRSUndefined))
	require.NoError(t, err)
	assert.Equal(t, geo.WebMercator, r.storeCRS())
}

func TestBounds(t *testing.T) {
	b := newTestRouter(t).Bounds()
	assert.Equal(t, orb.Point{lon0, lat0}, b.Min)
	assert.Equal(t, orb.Point{lon0 + 0.01, lat0 + 0.01}, b.Max)

	empty, err := New(&network.Network{})
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{}, empty.Bounds())
}

func TestSeededFeaturesAreDeterministic(t *testing.T) {
	a := newTestRouter(t)
	b := newTestRouter(t, WithSeed(DEFAULT_SEED))
	c := newTestRouter(t, WithSeed(7))
	differs := false
	for _, id := range a.store.IDs() {
		fa, _ := a.store.Lookup(id)
		fb, _ := b.store.Lookup(id)
		fc, _ := c.store.Lookup(id)
		assert.Equal(t, fa, fb)
		if fa != fc {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestSafetyScoreIsAffineAndDeterministic(t *testing.T) {
	f := Features{CrimeScore: 0.25, FootTraffic: 0.5, Lighting: 0.7, InstitutionScore: 0.9}
	want := 0.4*(1-0.25) + 0.2*0.5 + 0.2*0.7 + 0.2*0.9
	assert.InDelta(t, want, SafetyScore(f), 1e-12)
	assert.Equal(t, SafetyScore(f), SafetyScore(f))

	f.recompute()
	first := f.SafetyScore()
	f.recompute()
	assert.Equal(t, first, f.SafetyScore())
	assert.InDelta(t, want, first, 1e-12)
}

func TestEdgeCostWithoutRecord(t *testing.T) {
	assert.Equal(t, algo.UNKNOWN_EDGE_COST, EdgeCost(Features{}, false))
	f := uniformFeatures
	f.recompute()
	assert.InDelta(t, 0.24, EdgeCost(f, true), 1e-12)

	r := newTestRouter(t)
	r.store.remove("1_4_0")
	updated, failed := r.reweight(nil)
	assert.Equal(t, 7, updated)
	assert.Zero(t, failed)
	cost, err := r.GetEdgeCost("1_4_0")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
	assertCostsMatchStore(t, r)
}

func TestReweightFailureFallsBackToUnknownCost(t *testing.T) {
	r := newTestRouter(t)
	setAll(r, uniformFeatures)
	before, err := r.GetEdgeCost("2_3_0")
	require.NoError(t, err)
	require.InDelta(t, 0.24, before, 1e-12)

	f := uniformFeatures
	f.CrimeScore = math.NaN()
	require.True(t, r.store.setFeatures("2_3_0", f))
	updated, failed := r.reweight(nil)
	assert.Equal(t, 6, updated)
	assert.Equal(t, 1, failed)

	cost, err := r.GetEdgeCost("2_3_0")
	require.NoError(t, err)
	assert.Equal(t, algo.UNKNOWN_EDGE_COST, cost)
}

func TestGetEdgeCostUnknownEdge(t *testing.T) {
	r := newTestRouter(t)
	_, err := r.GetEdgeCost("8_9_0")
	assert.ErrorIs(t, err, algo.ErrEdgeNotFound)
}

func TestBuildCrimeScores(t *testing.T) {
	r := newTestRouter(t)
	stats := r.BuildCrimeScores([]CrimeRecord{
		// on 1-2, joins both directions
		{Lat: lat0, Lon: lon0 + 0.0005, Category: "ROBBERY"},
		// on 2->3
		{Lat: lat0, Lon: lon0 + 0.0015, Category: "petty theft"},
		// near nothing
		{Lat: lat0 + 0.005, Lon: lon0 + 0.005, Category: "HOMICIDE"},
		{Lat: math.NaN(), Lon: lon0, Category: "HOMICIDE"},
	})
	assert.Equal(t, CrimeScoreStats{Records: 4, Joined: 2, Skipped: 1, Edges: 3}, stats)

	crime := func(id EdgeID) float64 {
		f, ok := r.store.Lookup(id)
		require.True(t, ok)
		return f.CrimeScore
	}
	assert.InDelta(t, 1.0, crime("1_2_0"), 1e-12)
	assert.InDelta(t, 1.0, crime("2_1_0"), 1e-12)
	assert.InDelta(t, 0.3/0.85, crime("2_3_0"), 1e-12)
	for _, id := range []EdgeID{"1_4_0", "4_1_0", "4_3_0", "3_4_0"} {
		assert.Zero(t, crime(id), "edge %s", id)
	}
	assertCostsMatchStore(t, r)
}

func TestBuildCrimeScoresWithinBuffer(t *testing.T) {
	r := newTestRouter(t)
	// 20 and 30 projected units north of 2->3
	near := lat0 + 20/mercatorUnitsPerDegreeLat(lat0)
	far := lat0 + 30/mercatorUnitsPerDegreeLat(lat0)
	r.BuildCrimeScores([]CrimeRecord{
		{Lat: near, Lon: lon0 + 0.0015, Category: "ARSON"},
		{Lat: far, Lon: lon0 + 0.0015, Category: "ARSON"},
	})
	f, _ := r.store.Lookup("2_3_0")
	assert.InDelta(t, 1.0, f.CrimeScore, 1e-12)
	f, _ = r.store.Lookup("1_2_0")
	assert.Zero(t, f.CrimeScore)
}

func TestBuildCrimeScoresWithoutRecords(t *testing.T) {
	r := newTestRouter(t)
	r.BuildCrimeScores(nil)
	for _, id := range r.store.IDs() {
		f, _ := r.store.Lookup(id)
		assert.Zero(t, f.CrimeScore)
		want := 0.4 + 0.2*f.FootTraffic + 0.2*f.Lighting + 0.2*f.InstitutionScore
		assert.InDelta(t, want, f.SafetyScore(), 1e-12)
	}
	assertCostsMatchStore(t, r)
}

func TestMinMaxScale(t *testing.T) {
	scaled := minMaxScale(map[EdgeID]float64{"a": 0.4, "b": 0.4}, false)
	assert.Equal(t, map[EdgeID]float64{"a": 0, "b": 0}, scaled)

	scaled = minMaxScale(map[EdgeID]float64{"a": 0.4, "b": 0.4}, true)
	assert.Equal(t, map[EdgeID]float64{"a": 1, "b": 1}, scaled)

	scaled = minMaxScale(map[EdgeID]float64{"a": 0.2, "b": 0.6, "c": 1.0}, false)
	assert.InDelta(t, 0.0, scaled["a"], 1e-12)
	assert.InDelta(t, 0.5, scaled["b"], 1e-12)
	assert.InDelta(t, 1.0, scaled["c"], 1e-12)

	assert.Empty(t, minMaxScale(map[EdgeID]float64{}, true))
}

func TestApplyIncidentRobbery(t *testing.T) {
	r := newTestRouter(t)
	setCrime(t, r, "2_3_0", 0.3)
	before := make(map[EdgeID]Features)
	for _, id := range r.store.IDs() {
		before[id], _ = r.store.Lookup(id)
	}

	n, err := r.ApplyIncident("ROBBERY", lat0, lon0+0.0015)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, _ := r.store.Lookup("2_3_0")
	assert.InDelta(t, 0.47, f.CrimeScore, 1e-12)
	assert.InDelta(t, SafetyScore(f), f.SafetyScore(), 1e-12)
	for id, old := range before {
		if id == "2_3_0" {
			continue
		}
		now, _ := r.store.Lookup(id)
		assert.Equal(t, old, now, "edge %s", id)
	}
	assertCostsMatchStore(t, r)
}

func TestApplyIncidentIsMonotoneAndSaturates(t *testing.T) {
	r := newTestRouter(t)
	prev := 0.0
	for i := 0; i < 10; i++ {
		n, err := r.ApplyIncident("HOMICIDE", lat0, lon0+0.0015)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		f, _ := r.store.Lookup("2_3_0")
		assert.GreaterOrEqual(t, f.CrimeScore, prev)
		assert.LessOrEqual(t, f.CrimeScore, 1.0)
		prev = f.CrimeScore
	}
	assert.Equal(t, 1.0, prev)
	assertCostsMatchStore(t, r)
}

func TestApplyIncidentUnknownCategory(t *testing.T) {
	r := newTestRouter(t)
	for _, category := range []string{"", UNKNOWN_CATEGORY, "alien abduction"} {
		res, err := r.applyIncident(category, lat0, lon0+0.0015)
		require.NoError(t, err)
		assert.Equal(t, DEFAULT_SEVERITY, res.Severity)
		require.Len(t, res.Bumps, 1)
		assert.InDelta(t, LEARNING_RATE*DEFAULT_SEVERITY, res.Bumps[0].After-res.Bumps[0].Before, 1e-12)
	}
	res, err := r.applyIncident("", lat0, lon0+0.0015)
	require.NoError(t, err)
	assert.Equal(t, UNKNOWN_CATEGORY, res.Category)
}

func TestApplyIncidentNoNearbyEdge(t *testing.T) {
	r := newTestRouter(t)
	n, err := r.ApplyIncident("ROBBERY", lat0+0.005, lon0+0.005)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestApplyIncidentInvalidInput(t *testing.T) {
	r := newTestRouter(t)
	_, err := r.ApplyIncident("ROBBERY", math.NaN(), lon0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = r.ApplyIncident("ROBBERY", lat0, 200)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyIncidentAssignsMissingCRS(t *testing.T) {
	r := newTestRouter(t, WithCRS(geo.CRSUndefined))
	assert.False(t, r.store.CRS().Defined())

	n, err := r.ApplyIncident("ROBBERY", lat0, lon0+0.0015)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, geo.WebMercator, r.store.CRS())
}

func TestFindRoutePrefersSaferStreets(t *testing.T) {
	r := newTestRouter(t)
	setAll(r, uniformFeatures)
	ctx := context.Background()

	// equal costs, both two-edge routes tie; make 2->3 dangerous
	setCrime(t, r, "2_3_0", 1)
	path, err := r.FindRoute(ctx, lat0, lon0, lat0, lon0+0.002)
	require.NoError(t, err)
	assert.Equal(t, []LatLon{
		{Lat: lat0, Lon: lon0},
		{Lat: lat0 + 0.001, Lon: lon0 + 0.001},
		{Lat: lat0, Lon: lon0 + 0.002},
	}, path)

	// now the northern route is worse
	setCrime(t, r, "2_3_0", 0)
	setCrime(t, r, "1_4_0", 1)
	route, err := r.SearchWalking(ctx, LatLon{Lat: lat0, Lon: lon0}, LatLon{Lat: lat0, Lon: lon0 + 0.002})
	require.NoError(t, err)
	assert.Equal(t, []EdgeID{"1_2_0", "2_3_0"}, route.Edges)
	assert.InDelta(t, 0.48, route.Cost, 1e-12)
	assert.Len(t, route.Path, 3)
}

func TestFindRouteUsesEdgeGeometry(t *testing.T) {
	mid := orb.Point{lon0 + 0.0005, lat0 - 0.0002}
	net := &network.Network{
		Nodes: []network.Node{
			{ID: 1, Lat: lat0, Lon: lon0},
			{ID: 2, Lat: lat0, Lon: lon0 + 0.001},
		},
		Edges: []network.Edge{
			{U: 1, V: 2, Line: orb.LineString{{lon0, lat0}, mid, {lon0 + 0.001, lat0}}},
			// geometry listed against the direction of travel
			{U: 2, V: 1, Line: orb.LineString{{lon0, lat0}, mid, {lon0 + 0.001, lat0}}},
		},
	}
	r, err := New(net)
	require.NoError(t, err)
	ctx := context.Background()

	path, err := r.FindRoute(ctx, lat0, lon0, lat0, lon0+0.001)
	require.NoError(t, err)
	assert.Equal(t, []LatLon{
		{Lat: lat0, Lon: lon0},
		{Lat: mid[1], Lon: mid[0]},
		{Lat: lat0, Lon: lon0 + 0.001},
	}, path)

	path, err = r.FindRoute(ctx, lat0, lon0+0.001, lat0, lon0)
	require.NoError(t, err)
	assert.Equal(t, []LatLon{
		{Lat: lat0, Lon: lon0 + 0.001},
		{Lat: mid[1], Lon: mid[0]},
		{Lat: lat0, Lon: lon0},
	}, path)
}

func TestFindRouteSameNode(t *testing.T) {
	r := newTestRouter(t)
	path, err := r.FindRoute(context.Background(), lat0, lon0, lat0+0.00001, lon0+0.00001)
	require.NoError(t, err)
	assert.Equal(t, []LatLon{{Lat: lat0, Lon: lon0}}, path)
}

func TestFindRouteDisconnected(t *testing.T) {
	r := newTestRouter(t)
	features := make(map[EdgeID]Features)
	costs := make(map[EdgeID]float64)
	for _, id := range r.store.IDs() {
		features[id], _ = r.store.Lookup(id)
		costs[id], _ = r.GetEdgeCost(id)
	}

	_, err := r.FindRoute(context.Background(), lat0, lon0, lat0+0.01, lon0+0.01)
	assert.ErrorIs(t, err, ErrNoPathFound)
	_, err = r.FindRoute(context.Background(), lat0+0.01, lon0+0.01, lat0, lon0)
	assert.ErrorIs(t, err, ErrNoPathFound)
	// 3 reaches 2 around the one-way street
	route, err := r.SearchWalking(context.Background(), LatLon{Lat: lat0, Lon: lon0 + 0.002}, LatLon{Lat: lat0, Lon: lon0 + 0.001})
	require.NoError(t, err)
	assert.Equal(t, []EdgeID{"3_4_0", "4_1_0", "1_2_0"}, route.Edges)

	for id, cost := range costs {
		now, _ := r.GetEdgeCost(id)
		assert.Equal(t, cost, now)
		f, _ := r.store.Lookup(id)
		assert.Equal(t, features[id], f)
	}
}

func TestFindRouteErrors(t *testing.T) {
	r := newTestRouter(t)
	ctx := context.Background()
	_, err := r.FindRoute(ctx, math.NaN(), lon0, lat0, lon0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = r.FindRoute(ctx, lat0, lon0, 95, lon0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	empty, err := New(&network.Network{})
	require.NoError(t, err)
	_, err = empty.FindRoute(ctx, lat0, lon0, lat0, lon0)
	assert.ErrorIs(t, err, ErrNodeResolutionFailed)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.FindRoute(canceled, lat0, lon0, lat0, lon0+0.002)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentRoutingDuringIngestion(t *testing.T) {
	r := newTestRouter(t)
	q := NewIncidentQueue(r, 128)
	q.Start()

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				route, err := r.SearchWalking(context.Background(),
					LatLon{Lat: lat0, Lon: lon0}, LatLon{Lat: lat0, Lon: lon0 + 0.002})
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, LatLon{Lat: lat0, Lon: lon0}, route.Path[0])
				assert.Equal(t, LatLon{Lat: lat0, Lon: lon0 + 0.002}, route.Path[len(route.Path)-1])
				assert.Len(t, route.Edges, 2)
				assert.GreaterOrEqual(t, route.Cost, 0.0)
				assert.LessOrEqual(t, route.Cost, 2*algo.MAX_EDGE_COST)
			}
		}()
	}

	results := make([]<-chan IncidentJobResult, 0)
	for i := 0; i < 50; i++ {
		lon := lon0 + 0.0005
		if i%2 == 1 {
			lon = lon0 + 0.0015
		}
		ch, err := q.Enqueue(IncidentJob{Category: "ROBBERY", Lat: lat0, Lon: lon})
		require.NoError(t, err)
		results = append(results, ch)
	}
	for _, ch := range results {
		res := <-ch
		assert.NoError(t, res.Err)
	}
	close(done)
	wg.Wait()
	q.Close()

	for _, id := range []EdgeID{"1_2_0", "2_1_0", "2_3_0"} {
		f, _ := r.store.Lookup(id)
		assert.Equal(t, 1.0, f.CrimeScore)
	}
	assertCostsMatchStore(t, r)
}

func TestIncidentQueueOrder(t *testing.T) {
	r := newTestRouter(t)
	var mu sync.Mutex
	seen := make([]string, 0)
	q := NewIncidentQueue(r, 8, func(res IncidentJobResult) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, res.Job.ReportID)
	})

	// queued before the worker starts
	var last <-chan IncidentJobResult
	for _, id := range []string{"a", "b", "c"} {
		ch, err := q.Enqueue(IncidentJob{ReportID: id, Category: "NARCOTICS", Lat: lat0, Lon: lon0 + 0.0015})
		require.NoError(t, err)
		last = ch
	}
	assert.Equal(t, 3, q.Len())
	q.Start()
	q.Start()
	res := <-last
	require.NoError(t, res.Err)
	assert.Equal(t, "c", res.Job.ReportID)
	assert.Len(t, res.Result.Bumps, 1)
	assert.False(t, res.Job.Enqueued.IsZero())

	q.Close()
	mu.Lock()
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	mu.Unlock()

	_, err := q.Enqueue(IncidentJob{Category: "NARCOTICS"})
	assert.ErrorIs(t, err, ErrQueueClosed)
	q.Close()
}

func TestIncidentQueueFullAndDrain(t *testing.T) {
	r := newTestRouter(t)
	q := NewIncidentQueue(r, 1)
	ch, err := q.Enqueue(IncidentJob{Category: "ARSON", Lat: lat0, Lon: lon0 + 0.0015})
	require.NoError(t, err)
	_, err = q.Enqueue(IncidentJob{Category: "ARSON", Lat: lat0, Lon: lon0 + 0.0015})
	assert.ErrorIs(t, err, ErrQueueFull)

	// Close drains the queue even without a started worker
	q.Close()
	res := <-ch
	require.NoError(t, res.Err)
	f, _ := r.store.Lookup("2_3_0")
	assert.InDelta(t, LEARNING_RATE*0.8, f.CrimeScore, 1e-12)
}

func TestIncidentQueueReportsInvalidJob(t *testing.T) {
	r := newTestRouter(t)
	q := NewIncidentQueue(r, 4)
	q.Start()
	defer q.Close()
	ch, err := q.Enqueue(IncidentJob{Category: "ARSON", Lat: math.Inf(1), Lon: lon0})
	require.NoError(t, err)
	res := <-ch
	assert.ErrorIs(t, res.Err, ErrInvalidInput)
	assert.Nil(t, res.Result)
}

func TestSnapshotRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	r.BuildCrimeScores([]CrimeRecord{{Lat: lat0, Lon: lon0 + 0.0005, Category: "ROBBERY"}})
	_, err := r.ApplyIncident("HOMICIDE", lat0, lon0+0.0015)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "edges.bson")
	require.NoError(t, r.SaveSnapshot(path))

	restored := newTestRouter(t, WithSeed(1), WithCRS(geo.CRSUndefined))
	n, err := restored.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, geo.WebMercator, restored.store.CRS())
	for _, id := range r.store.IDs() {
		want, _ := r.store.Lookup(id)
		got, ok := restored.store.Lookup(id)
		require.True(t, ok)
		assert.Equal(t, want, got, "edge %s", id)
	}
	assertCostsMatchStore(t, restored)

	_, err = restored.LoadSnapshot(filepath.Join(t.TempDir(), "missing.bson"))
	assert.Error(t, err)
	_, err = restored.UnmarshalSnapshot([]byte("not bson"))
	assert.Error(t, err)
}

func TestSnapshotClampsAndSkipsInvalidRows(t *testing.T) {
	r := newTestRouter(t)
	data, err := bson.Marshal(storeSnapshot{
		Place: "test",
		CRS:   int(geo.WebMercator),
		Edges: []edgeSnapshot{
			{ID: "1_2_0", CrimeScore: -2, FootTraffic: 5, Lighting: 0, InstitutionScore: 0.5},
			{ID: "2_3_0", CrimeScore: math.NaN(), FootTraffic: 0.5, Lighting: 0.5, InstitutionScore: 0.5},
			{ID: "2_1_0", CrimeScore: 0.5, FootTraffic: math.Inf(1), Lighting: 0.5, InstitutionScore: 0.5},
			{ID: "8_9_0", CrimeScore: 0.5, FootTraffic: 0.5, Lighting: 0.5, InstitutionScore: 0.5},
		},
	})
	require.NoError(t, err)
	before, _ := r.store.Lookup("2_3_0")

	n, err := r.UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, ok := r.store.Lookup("1_2_0")
	require.True(t, ok)
	assert.Equal(t, 0.0, f.CrimeScore)
	assert.Equal(t, 1.0, f.FootTraffic)
	assert.Equal(t, 0.3, f.Lighting)
	assert.Equal(t, 0.5, f.InstitutionScore)
	after, _ := r.store.Lookup("2_3_0")
	assert.Equal(t, before, after)
	assertCostsMatchStore(t, r)

	data, err = bson.Marshal(storeSnapshot{CRS: int(geo.WGS84)})
	require.NoError(t, err)
	_, err = r.UnmarshalSnapshot(data)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, geo.WebMercator, r.store.CRS())
}
