// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vgsales_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vgsales_query_duration_seconds",
			Help:    "Duration of engine queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine", "shape"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vgsales_query_errors_total",
			Help: "Total number of failed engine queries",
		},
		[]string{"engine", "shape"},
	)

	SnapshotRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vgsales_snapshot_rows",
			Help: "Rows held in the in-memory snapshot per table",
		},
		[]string{"table"},
	)

	SnapshotLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vgsales_snapshot_load_failures_total",
			Help: "Tables that failed to load into the snapshot",
		},
		[]string{"table"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vgsales_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// ObserveQuery records the duration of one engine call and counts it as an
// error when err is non-nil.
func ObserveQuery(engine, shape string, start time.Time, err error) {
	QueryDuration.WithLabelValues(engine, shape).Observe(time.Since(start).Seconds())
	if err != nil {
		QueryErrors.WithLabelValues(engine, shape).Inc()
	}
}

// Middleware records request durations labelled by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
