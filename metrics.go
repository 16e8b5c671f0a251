package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/safestride/routing/router"
)

var (
	routeRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "saferoute_route_requests_total",
		Help: "Total number of GetSafeRoute requests",
	})
	routeFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saferoute_route_failures_total",
		Help: "GetSafeRoute failures by connect code",
	}, []string{"code"})
	routeDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "saferoute_route_duration_ms",
		Help:    "GetSafeRoute duration in milliseconds, geocoding included",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000},
	})
	incidentsReportedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saferoute_incidents_reported_total",
		Help: "Incident reports by classified category",
	}, []string{"category"})
	incidentsAppliedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saferoute_incidents_applied_total",
		Help: "Incident jobs processed by the queue worker",
	}, []string{"status"})
	edgesBumpedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "saferoute_edges_bumped_total",
		Help: "Total edge crime score updates from incidents",
	})
	incidentLagMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "saferoute_incident_lag_ms",
		Help:    "Time from enqueue to applied in milliseconds",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	})
	queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "saferoute_incident_queue_depth",
		Help: "Incident jobs waiting to be applied",
	})
)

func init() {
	prometheus.MustRegister(routeRequestsTotal)
	prometheus.MustRegister(routeFailuresTotal)
	prometheus.MustRegister(routeDurationMs)
	prometheus.MustRegister(incidentsReportedTotal)
	prometheus.MustRegister(incidentsAppliedTotal)
	prometheus.MustRegister(edgesBumpedTotal)
	prometheus.MustRegister(incidentLagMs)
	prometheus.MustRegister(queueDepth)
}

// metricsHook records queue worker outcomes.
func metricsHook(q func() int) router.AppliedFunc {
	return func(res router.IncidentJobResult) {
		if res.Err != nil {
			incidentsAppliedTotal.WithLabelValues("error").Inc()
		} else {
			incidentsAppliedTotal.WithLabelValues("ok").Inc()
			if res.Result != nil {
				edgesBumpedTotal.Add(float64(len(res.Result.Bumps)))
			}
		}
		if !res.Job.Enqueued.IsZero() {
			incidentLagMs.Observe(float64(time.Since(res.Job.Enqueued).Microseconds()) / 1000)
		}
		if q != nil {
			queueDepth.Set(float64(q()))
		}
	}
}
