// Package middleware provides Echo middleware for SecondSpark.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/TravisBoyd884/SecondSpark/internal/metrics"
)

// Metrics returns Echo middleware that records request duration and status
// per route. The route template (c.Path) is used as the path label so
// /api/v1/items/{id} stays one series regardless of how many items exist.
//
// Operational endpoints are handled specially: /healthz and /readyz flip
// their up/down gauges, and none of /metrics, /healthz, /readyz enter the
// histogram or counter, where scrape and probe traffic would dwarf listing
// traffic.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			switch path {
			case "/healthz":
				err := next(c)
				setProbeGauge(metrics.HealthzUp, c.Response().Status)
				return err
			case "/readyz":
				err := next(c)
				setProbeGauge(metrics.ReadyzUp, c.Response().Status)
				return err
			case "/metrics":
				return next(c)
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start).Seconds()

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed)
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()

			return err
		}
	}
}

func setProbeGauge(gauge prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
