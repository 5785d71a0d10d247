package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
)

const metricsNamespace = "pricecalc"

var (
	// httpRequestsTotal counts total HTTP requests
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration measures request latency
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// httpRequestsInFlight tracks concurrent requests
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// httpResponseSize measures response body size
	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(32, 4, 6),
		},
		[]string{"method", "path"},
	)
)

// Business metrics
var (
	// CalculationsTotal counts calculations by operation and outcome
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "business",
			Name:      "calculations_total",
			Help:      "Total number of calculations",
		},
		[]string{"operation", "outcome"},
	)

	// ConversionsTotal counts successful conversions by currency pair
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "business",
			Name:      "conversions_total",
			Help:      "Total number of successful currency conversions",
		},
		[]string{"from", "to"},
	)

	// RateLimitDecisionsTotal counts rate limiter decisions
	RateLimitDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "ratelimit",
			Name:      "decisions_total",
			Help:      "Rate limiter decisions",
		},
		[]string{"decision"}, // allowed, limited, error
	)
)

// Calculation outcomes
const (
	OutcomeSuccess         = "success"
	OutcomeInvalid         = "invalid"
	OutcomeRateUnavailable = "rate_unavailable"
	OutcomeError           = "error"
)

// Metrics returns Prometheus metrics middleware
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(c.Writer.Size()))
	}
}

// Outcome классифицирует результат расчёта.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case domainerrors.IsValidationError(err):
		return OutcomeInvalid
	case domainerrors.IsRateUnavailable(err):
		return OutcomeRateUnavailable
	default:
		return OutcomeError
	}
}

// RecordCalculation records a calculation metric
func RecordCalculation(operation string, err error) {
	CalculationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordConversion records a successful conversion between two currencies
func RecordConversion(from, to string) {
	ConversionsTotal.WithLabelValues(from, to).Inc()
}
