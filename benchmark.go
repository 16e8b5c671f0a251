package main

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	v1 "github.com/safestride/routing/api/saferoute/v1"
	"github.com/safestride/routing/classifier"
)

var (
	benchmarkCount     int
	benchmarkSeed      int64
	benchmarkCPU       int
	benchmarkIncidents int
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run random routing requests, optionally interleaved with incident reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := NewApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		server := NewSafeRouteServer(app)
		defer server.Close()
		runBenchmark(server)
		return nil
	},
}

func init() {
	benchmarkCmd.Flags().IntVar(&benchmarkCount, "count", 1000, "the random routing count for benchmark")
	benchmarkCmd.Flags().Int64Var(&benchmarkSeed, "seed", 0, "the seed for benchmark")
	benchmarkCmd.Flags().IntVar(&benchmarkCPU, "cpu", 1, "the cpu count for benchmark")
	benchmarkCmd.Flags().IntVar(&benchmarkIncidents, "incidents", 0, "random incident reports sent while routing")
}

var benchmarkTranscripts = []string{
	"someone mugged a guy at the bus stop",
	"a man with a knife was following me",
	"my car window was smashed",
	"people dealing drugs on the corner",
	"a fight broke out outside the bar",
}

func randomLatLng(e *rand.Rand, minLat, maxLat, minLon, maxLon float64) *v1.LatLng {
	return &v1.LatLng{
		Lat: minLat + e.Float64()*(maxLat-minLat),
		Lon: minLon + e.Float64()*(maxLon-minLon),
	}
}

func runBenchmark(server *SafeRouteServer) {
	log.Logger.SetLevel(logrus.WarnLevel)
	e := rand.New(rand.NewSource(benchmarkSeed))
	// the benchmark must not depend on remote classifiers
	server.app.classifier = classifier.Keyword{}

	b := server.app.router.Bounds()
	minLon, minLat, maxLon, maxLat := b.Min[0], b.Min[1], b.Max[0], b.Max[1]
	reqs := make([]*connect.Request[v1.GetSafeRouteRequest], benchmarkCount)
	for i := range reqs {
		reqs[i] = connect.NewRequest(&v1.GetSafeRouteRequest{
			Origin:           randomLatLng(e, minLat, maxLat, minLon, maxLon),
			DestinationPoint: randomLatLng(e, minLat, maxLat, minLon, maxLon),
		})
	}
	incidents := make([]*connect.Request[v1.ReportIncidentRequest], benchmarkIncidents)
	for i := range incidents {
		p := randomLatLng(e, minLat, maxLat, minLon, maxLon)
		incidents[i] = connect.NewRequest(&v1.ReportIncidentRequest{
			Transcript: benchmarkTranscripts[e.Intn(len(benchmarkTranscripts))],
			Lat:        p.Lat,
			Lon:        p.Lon,
			ReportedBy: "benchmark",
		})
	}

	route := func(req *connect.Request[v1.GetSafeRouteRequest]) bool {
		res, err := server.GetSafeRoute(context.Background(), req)
		if err != nil {
			log.Debug("benchmark route failed, err:", err)
			return false
		}
		return len(res.Msg.Route) > 0
	}

	start := time.Now()
	var wg sync.WaitGroup
	var success, reported atomic.Int32

	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, req := range incidents {
			if _, err := server.ReportIncident(context.Background(), req); err != nil {
				log.Error("benchmark report failed, err:", err)
				continue
			}
			reported.Add(1)
		}
	}()

	if benchmarkCPU == 1 {
		for _, req := range reqs {
			if route(req) {
				success.Add(1)
			}
		}
	} else {
		runtime.GOMAXPROCS(benchmarkCPU)
		sem := make(chan struct{}, benchmarkCPU)
		wg.Add(len(reqs))
		for _, req := range reqs {
			sem <- struct{}{}
			go func(req *connect.Request[v1.GetSafeRouteRequest]) {
				defer func() {
					<-sem
					wg.Done()
				}()
				if route(req) {
					success.Add(1)
				}
			}(req)
		}
	}
	wg.Wait()
	timeCost := time.Since(start)
	log.Warn(
		"benchmark finished", "\n",
		"count:", benchmarkCount, "\n",
		"time:", timeCost, "\n",
		"avg:", timeCost/time.Duration(max(benchmarkCount, 1)), "\n",
		"success:", success.Load(), "\n",
		"incidents:", reported.Load(), "\n",
		"queued:", server.app.queue.Len(), "\n",
	)
}
