// Package metrics defines Prometheus metrics for ecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecycle"

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

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness probe last succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness probe last succeeded, 0 when the database was unreachable.",
	})
)

// Intake metrics.
var (
	IntakeRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_rows_total",
		Help:      "Bulk intake rows processed, by source format and outcome.",
	}, []string{"format", "status"})

	IntakeFileFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_file_failures_total",
		Help:      "Uploaded intake files that could not be read.",
	}, []string{"format"})

	BulkPickupsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bulk_pickups_submitted_total",
		Help:      "Total number of bulk pickups committed.",
	})

	PickupsScheduledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pickups_scheduled_total",
		Help:      "Total number of individual pickups committed.",
	})

	EcoPointsAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "eco_points_awarded_total",
		Help:      "Eco points credited to users.",
	})

	CarbonSavedKgTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carbon_saved_kg_total",
		Help:      "Kilograms of CO2e credited to users.",
	})
)

// Classification metrics.
var (
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classifications_total",
		Help:      "Image classifications, by the backend that answered.",
	}, []string{"source"})

	ClassificationFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classification_fallbacks_total",
		Help:      "Classifications answered by the offline heuristic, by reason.",
	}, []string{"reason"})

	ClassificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classification_duration_seconds",
		Help:      "Duration of image classification in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Certificate and reward metrics.
var (
	CertificatesIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "certificates_issued_total",
		Help:      "Total number of bulk disposal certificates issued.",
	})

	CertificateFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "certificate_failures_total",
		Help:      "Certificate issuance attempts that failed and were left for the backfill job.",
	})

	SchedulerNextBackfillTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_backfill_timestamp",
		Help:      "Unix timestamp of the next scheduled certificate backfill.",
	})

	RedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redemptions_total",
		Help:      "Reward redemption attempts, by outcome.",
	}, []string{"outcome"})
)

// Notification metrics.
var (
	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
