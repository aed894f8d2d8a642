package router

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware stores the public base URL of the API in the context.
// Handlers build their links from it.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	base := url.String()

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), base)
		c.Next()
	}
}

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fundledger",
			Name:      "http_requests_total",
			Help:      "HTTP requests processed, partitioned by status code, method and route.",
		},
		[]string{"code", "method", "route"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fundledger",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds, partitioned by status code, method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "method", "route"},
	)
)

// collectors are all metrics exposed at /metrics.
var collectors = append([]prometheus.Collector{requestCount, requestDuration}, budget.Metrics...)

// registerMetrics registers all collectors with the default registry.
// On failure, the collectors registered so far are unregistered again.
func registerMetrics() error {
	for i, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("could not register %T with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterMetrics removes all collectors from the default registry.
func unregisterMetrics() {
	for _, c := range collectors {
		prometheus.Unregister(c)
	}
}

// MetricsMiddleware records count and latency of every request.
//
// The route template is used as label so that account and transaction IDs
// do not create new series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		code := strconv.Itoa(c.Writer.Status())
		requestDuration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
		requestCount.WithLabelValues(code, c.Request.Method, route).Inc()
	}
}
