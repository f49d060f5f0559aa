package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agenthub/hub/internal/constants"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "pattern", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "pattern"},
	)

	authzDenialCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_authz_denials_total",
			Help: "Total number of denied authorization decisions by reason",
		},
		[]string{"reason"},
	)
)

// RegisterMetrics registers the middleware collectors on the given registry.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(requestCounter, requestDuration, authzDenialCounter)
}

// ObserveAuthzDenial counts a denied authorization decision.
func ObserveAuthzDenial(reason string) {
	authzDenialCounter.WithLabelValues(reason).Inc()
}

// MetricsMiddleware records request counts and durations per route pattern.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(lrw, r)

			pattern := strings.Replace(r.Pattern, constants.BasePath, "", 1)

			requestCounter.WithLabelValues(
				r.Method, pattern, strconv.Itoa(lrw.statusCode),
			).Inc()
			requestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
		})
	}
}
