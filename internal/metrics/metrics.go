// Package metrics exposes Prometheus instrumentation for upstream lookups
// and an optional /metrics listener for long-running batch invocations.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Upstream label values.
const (
	UpstreamWhois   = "whois"
	UpstreamWayback = "wayback"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

//nolint: gochecknoglobals
var (
	lookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "domainage",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of upstream lookups.",
		Buckets:   DefaultBuckets,
	}, []string{"upstream"})

	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "domainage",
		Name:      "lookups_total",
		Help:      "Number of upstream lookups by outcome.",
	}, []string{"upstream", "outcome"})
)

// ObserveLookup records the duration and outcome of a single upstream lookup.
func ObserveLookup(upstream, outcome string, elapsed time.Duration) {
	lookupDuration.WithLabelValues(upstream).Observe(elapsed.Seconds())
	lookupsTotal.WithLabelValues(upstream, outcome).Inc()
}

// Serve starts an HTTP listener exposing the default registry on the given
// path. It returns the server so the caller can shut it down; serving errors
// after startup are reported through errCh.
func Serve(addr, path string, errCh chan<- error) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if errCh != nil {
				errCh <- err
			}
		}
	}()

	return server
}
