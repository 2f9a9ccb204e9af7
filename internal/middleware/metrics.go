package middleware

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	uuidPattern    = regexp.MustCompile(`(?i)/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	numericPattern = regexp.MustCompile(`/\d+`)
)

// HTTPMetrics instruments requests with the counters and histograms exposed on
// /metrics.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	uptime          prometheus.GaugeFunc
}

// NewHTTPMetrics registers the HTTP metrics on the given registry.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	start := time.Now()
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route", "status_code"}),
		uptime: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Time in seconds since the application started",
		}, func() float64 {
			return time.Since(start).Seconds()
		}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.uptime)
	return m
}

// Middleware records every request against the registered metrics.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			// No matched route (404s etc): fall back to the normalized raw path
			// to keep label cardinality bounded.
			route = normalizeRoute(c.Request.URL.Path)
		}
		status := strconv.Itoa(c.Writer.Status())

		m.requestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}

// normalizeRoute replaces UUIDs and numeric IDs with ":id".
func normalizeRoute(path string) string {
	path = uuidPattern.ReplaceAllString(path, "/:id")
	return numericPattern.ReplaceAllString(path, "/:id")
}
