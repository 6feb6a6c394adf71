// Package metrics defines Prometheus metrics for SecondSpark.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "secondspark"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Marketplace sync metrics.
var (
	MarketplaceAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_api_calls_total",
		Help:      "Total outbound marketplace API calls.",
	}, []string{"marketplace"})

	MarketplaceDailyLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_daily_limit_hits_total",
		Help:      "Times an outbound call was rejected by the daily quota.",
	}, []string{"marketplace"})

	SyncStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_sync_stage_total",
		Help:      "Sync stage outcomes per marketplace.",
	}, []string{"marketplace", "stage", "status"})
)

// Health gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe returned OK.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe returned OK.",
	})
)

// SyncStage label values.
const (
	StageInventory = "inventory"
	StageOffer     = "offer"
	StagePublish   = "publish"
	StageEnd       = "end_listing"
	StageDelete    = "delete"

	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)
