package main

import (
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// /debug/pprof/ for live profiling, /metrics for prometheus
func debugHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	mux.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func startHTTPDebugger(addr string) *http.Server {
	server := &http.Server{Addr: addr, Handler: debugHandler()}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warnf("debug server on %s stopped: %v", addr, err)
		}
	}()
	return server
}
