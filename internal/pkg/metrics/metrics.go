// Package metrics declares the prometheus collectors exported by the REST server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts handled requests by route, method and status code.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "biibii_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records request latency by route and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "biibii_http_request_duration_seconds",
		Help:    "Latency of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// LiveDataCacheLookups counts live data cache lookups by result (hit or miss).
var LiveDataCacheLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "biibii_live_data_cache_total",
		Help: "Live data snapshot cache lookups",
	},
	[]string{"result"},
)

// RecordsMutated counts writes by entity type and action.
var RecordsMutated = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "biibii_records_mutated_total",
		Help: "Records created, updated or deleted",
	},
	[]string{"entity", "action"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, LiveDataCacheLookups, RecordsMutated)
}
