// Package middleware provides Echo middleware for the ecycle API server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/ecycle/internal/metrics"
)

// Probe and scrape paths. They bypass the request histogram and counter.
var probePaths = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
	"/metrics": nil,
}

// Metrics returns Echo middleware that records request duration and status
// by route template. Probe paths only flip their up gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if gauge, probe := probePaths[path]; probe {
				err := next(c)
				if gauge != nil {
					gauge.Set(upValue(c.Response().Status))
				}
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// routePath prefers the matched route template so IDs don't explode label
// cardinality.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func upValue(status int) float64 {
	if status >= 200 && status < 300 {
		return 1
	}
	return 0
}
