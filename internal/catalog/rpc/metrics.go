package rpc

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the request counter and latency histogram recorded for
// every route, grounded on r3e-network-service_layer's
// infrastructure/metrics package.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the catalog RPC collectors against registerer. Pass
// prometheus.DefaultRegisterer in production, a fresh prometheus.NewRegistry
// in tests that construct more than one router in the same process.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "udm_catalog_requests_total",
				Help: "Total number of catalog RPC requests.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "udm_catalog_request_duration_seconds",
				Help:    "Catalog RPC request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	registerer.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// statusRecorder captures the status code a handler wrote so middleware can
// label it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware wraps next, recording a request counter and latency histogram
// per route pattern. route should be a fixed pattern (NewRouter passes
// each entity's mount prefix, e.g. "/fluid-regulators"), not the matched
// path, to keep cardinality bounded.
func (m *Metrics) Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
