package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the HTTP collectors on reg. Each server gets its own
// registry so tests can build several engines in one process.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trivia_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trivia_http_request_duration_seconds",
				Help:    "Histogram of response latency (seconds) for HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Unmatched paths share one label to keep cardinality bounded.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
