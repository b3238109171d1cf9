// Package metrics provides Prometheus metrics collection for the rate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks shipping quotes by variant and outcome
	// (priced, no_rate, degraded, validation_error).
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_quotes_total",
			Help: "Total number of shipping quote calculations",
		},
		[]string{"variant", "outcome"},
	)

	// QuoteDuration tracks end-to-end quote pipeline duration.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipping_quote_duration_seconds",
			Help:    "Shipping quote calculation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
	)

	// TariffLookupsTotal tracks tariff lookups by outcome
	// (success, error, circuit_open, cache_hit).
	TariffLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tariff_lookups_total",
			Help: "Total number of carrier tariff lookups",
		},
		[]string{"outcome"},
	)

	// TariffLookupDuration tracks remote tariff call duration.
	TariffLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tariff_lookup_duration_seconds",
			Help:    "Carrier tariff lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	// CacheOperationsTotal tracks tariff cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tariff_cache_operations_total",
			Help: "Total number of tariff cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for one quote calculation.
func RecordQuote(variant string, duration time.Duration, outcome string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(variant, outcome).Inc()
}

// RecordTariffLookup records metrics for one tariff lookup.
func RecordTariffLookup(duration time.Duration, outcome string) {
	TariffLookupDuration.Observe(duration.Seconds())
	TariffLookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheOperation records metrics for a tariff cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
