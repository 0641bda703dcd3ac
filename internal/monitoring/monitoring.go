// Package monitoring provides the sidecar HTTP handler serving
// Prometheus metrics and, optionally, pprof.
package monitoring

import (
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewMonitoringServer returns the handler for the monitoring port.
// Metrics are always exposed; pprof only when enablePprof is set, since
// the profiling endpoints are not safe to expose beyond the cluster.
func NewMonitoringServer(enablePprof bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if enablePprof {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return mux
}
