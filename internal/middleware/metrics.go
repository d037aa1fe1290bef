// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dhi-workshop/internal/metrics"
)

// Routes polled by Prometheus and the orchestrator; counting them would
// drown the API traffic.
var unobservedRoutes = map[string]struct{}{
	"/metrics": {},
	"/live":    {},
	"/ready":   {},
}

// Metrics returns a Gin middleware that records request count, latency and
// in-flight requests per route template. Requests that match no route share
// the "unmatched" label so arbitrary paths cannot grow the label set.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if _, skip := unobservedRoutes[path]; skip {
			c.Next()
			return
		}
		if path == "" {
			path = "unmatched"
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
